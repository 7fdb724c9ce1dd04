package gateway

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/pkg/pagination"
	"github.com/m04kA/SMC-ShareItService/pkg/types"
)

const (
	msgInvalidBody        = "некорректное тело запроса"
	msgInvalidPathID      = "ID в пути должен быть положительным целым числом"
	msgInvalidUserHeader  = "отсутствует или некорректен заголовок X-Sharer-User-Id"
	msgNameRequired       = "имя не может быть пустым"
	msgEmailInvalid       = "email должен быть непустым и содержать @"
	msgItemNameRequired   = "название вещи не может быть пустым"
	msgDescriptionMissing = "описание не может быть пустым"
	msgAvailableRequired  = "поле available обязательно"
	msgCommentText        = "текст отзыва не может быть пустым или длиннее 512 символов"
	msgBookingFields      = "поля itemId, start и end обязательны"
	msgBookingDateFormat  = "даты ожидаются в формате YYYY-MM-DDTHH:MM:SS"
	msgBookingPeriod      = "окончание бронирования должно быть позже начала"
	msgBookingStartPast   = "начало бронирования не может быть в прошлом"
	msgInvalidPage        = "параметр from должен быть неотрицательным, size - положительным"
	msgUnknownState       = "Unknown state: "
)

// inbound данные запроса, доступные валидаторам
type inbound struct {
	Query url.Values
	Body  []byte
	Now   time.Time
}

type validator func(in *inbound) error

func decodeBody(in *inbound, v interface{}) error {
	if err := json.Unmarshal(in.Body, v); err != nil {
		return invalid(msgInvalidBody)
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func validEmail(email string) bool {
	return !blank(email) && strings.Contains(email, "@")
}

// validatePathIDs все path параметры маршрутов - положительные целые
func validatePathIDs(vars map[string]string) error {
	for _, raw := range vars {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return invalid(msgInvalidPathID)
		}
	}
	return nil
}

func validateCreateUser(in *inbound) error {
	var body struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := decodeBody(in, &body); err != nil {
		return err
	}

	if blank(body.Name) {
		return invalid(msgNameRequired)
	}
	if !validEmail(body.Email) {
		return invalid(msgEmailInvalid)
	}
	return nil
}

func validateUpdateUser(in *inbound) error {
	var body struct {
		Name  types.Optional[string] `json:"name"`
		Email types.Optional[string] `json:"email"`
	}
	if err := decodeBody(in, &body); err != nil {
		return err
	}

	if name, ok := body.Name.Get(); ok && blank(name) {
		return invalid(msgNameRequired)
	}
	if email, ok := body.Email.Get(); ok && !validEmail(email) {
		return invalid(msgEmailInvalid)
	}
	return nil
}

func validateCreateItem(in *inbound) error {
	var body struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
		Available   *bool   `json:"available"`
	}
	if err := decodeBody(in, &body); err != nil {
		return err
	}

	switch {
	case blank(body.Name):
		return invalid(msgItemNameRequired)
	case body.Description == nil || blank(*body.Description):
		return invalid(msgDescriptionMissing)
	case body.Available == nil:
		return invalid(msgAvailableRequired)
	}
	return nil
}

func validateAddComment(in *inbound) error {
	var body struct {
		Text string `json:"text"`
	}
	if err := decodeBody(in, &body); err != nil {
		return err
	}

	if blank(body.Text) || utf8.RuneCountInString(body.Text) > domain.MaxCommentLength {
		return invalid(msgCommentText)
	}
	return nil
}

func validateCreateBooking(in *inbound) error {
	var body struct {
		ItemID *int64  `json:"itemId"`
		Start  *string `json:"start"`
		End    *string `json:"end"`
	}
	if err := decodeBody(in, &body); err != nil {
		return err
	}

	if body.ItemID == nil || body.Start == nil || body.End == nil {
		return invalid(msgBookingFields)
	}

	start, err := types.ParseDateTime(*body.Start)
	if err != nil {
		return invalid(msgBookingDateFormat)
	}
	end, err := types.ParseDateTime(*body.End)
	if err != nil {
		return invalid(msgBookingDateFormat)
	}

	if !end.After(start.Time) {
		return invalid(msgBookingPeriod)
	}
	if start.Before(in.Now.Truncate(time.Second)) {
		return invalid(msgBookingStartPast)
	}
	return nil
}

func validateListBookings(in *inbound) error {
	state := in.Query.Get("state")
	if _, err := domain.ParseBookingState(state); err != nil {
		return invalid(msgUnknownState + state)
	}
	if _, err := pagination.Parse(in.Query.Get("from"), in.Query.Get("size")); err != nil {
		return invalid(msgInvalidPage)
	}
	return nil
}

func validateCreateRequest(in *inbound) error {
	var body struct {
		Description string `json:"description"`
	}
	if err := decodeBody(in, &body); err != nil {
		return err
	}

	if blank(body.Description) {
		return invalid(msgDescriptionMissing)
	}
	return nil
}
