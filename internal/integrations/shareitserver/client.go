package shareitserver

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	headerUserID    = "X-Sharer-User-Id"
	headerRequestID = "X-Request-ID"
)

// Client клиент основного сервера ShareIt
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервера
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Forward пересылает запрос на сервер и возвращает его ответ как есть.
// Любой HTTP статус сервера - не ошибка; ошибка только если ответа нет.
func (c *Client) Forward(ctx context.Context, in *Request) (*Response, error) {
	target := c.baseURL + in.Path
	if len(in.Query) > 0 {
		target += "?" + in.Query.Encode()
	}

	var body io.Reader
	if len(in.Body) > 0 {
		body = bytes.NewReader(in.Body)
	}

	req, err := http.NewRequestWithContext(ctx, in.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if in.UserID != "" {
		req.Header.Set(headerUserID, in.UserID)
	}
	if in.RequestID != "" {
		req.Header.Set(headerRequestID, in.RequestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Forward %s %s failed: %v", in.Method, in.Path, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrUnavailable, err)
	}

	c.log.Info("Forward %s %s -> %d", in.Method, in.Path, resp.StatusCode)
	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Header:      resp.Header.Clone(),
		Body:        respBody,
	}, nil
}
