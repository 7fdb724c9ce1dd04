package shareitserver

import (
	"net/http"
	"net/url"
)

// Request запрос, который шлюз пересылает на сервер
type Request struct {
	Method    string
	Path      string
	Query     url.Values
	Body      []byte
	UserID    string // значение X-Sharer-User-Id как пришло, пусто - заголовок не передается
	RequestID string
}

// Response ответ сервера без изменений
type Response struct {
	StatusCode  int
	ContentType string
	Header      http.Header
	Body        []byte
}
