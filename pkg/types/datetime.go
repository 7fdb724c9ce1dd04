package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateTimeLayout формат даты и времени в API, без часового пояса
const DateTimeLayout = "2006-01-02T15:04:05"

// DateTime время в формате DateTimeLayout.
// Значения без пояса трактуются в локальном поясе процесса.
type DateTime struct {
	time.Time
}

// NewDateTime оборачивает time.Time, отбрасывая доли секунды
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t.Truncate(time.Second)}
}

// ParseDateTime разбирает строку в формате DateTimeLayout
func ParseDateTime(s string) (DateTime, error) {
	t, err := time.ParseInLocation(DateTimeLayout, s, time.Local)
	if err != nil {
		return DateTime{}, fmt.Errorf("invalid datetime %q, expected format %s", s, DateTimeLayout)
	}
	return DateTime{Time: t}, nil
}

// String возвращает время в формате DateTimeLayout
func (d DateTime) String() string {
	return d.In(time.Local).Format(DateTimeLayout)
}

// MarshalJSON сериализует время строкой
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON разбирает время из строки
func (d *DateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("datetime must be a string: %v", err)
	}
	parsed, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
