package types

import (
	"bytes"
	"encoding/json"
)

// Optional поле частичного обновления (PATCH).
// Set=false - поле не передано и не меняется.
// Set=true, Null=true - поле передано явно как null.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some создает заполненное значение
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Get возвращает значение и признак того, что его нужно применить
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set && !o.Null
}

// HasValue true, если передано непустое (не null) значение
func (o Optional[T]) HasValue() bool {
	return o.Set && !o.Null
}

// UnmarshalJSON вызывается только для присутствующих в JSON ключей
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON пишет null для незаданного значения
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.HasValue() {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
