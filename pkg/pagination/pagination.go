package pagination

import (
	"errors"
	"strconv"
)

// DefaultSize размер страницы, если передан только from
const DefaultSize = 10

var (
	// ErrInvalidFrom from должен быть неотрицательным целым
	ErrInvalidFrom = errors.New("pagination: from must be a non-negative integer")

	// ErrInvalidSize size должен быть положительным целым
	ErrInvalidSize = errors.New("pagination: size must be a positive integer")
)

// Page окно выборки: пропустить From элементов, вернуть не более Size
type Page struct {
	From int
	Size int
}

// Parse разбирает query параметры from/size.
// Если оба пусты - возвращает nil (без пагинации).
func Parse(fromStr, sizeStr string) (*Page, error) {
	if fromStr == "" && sizeStr == "" {
		return nil, nil
	}

	page := &Page{From: 0, Size: DefaultSize}

	if fromStr != "" {
		from, err := strconv.Atoi(fromStr)
		if err != nil || from < 0 {
			return nil, ErrInvalidFrom
		}
		page.From = from
	}

	if sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size <= 0 {
			return nil, ErrInvalidSize
		}
		page.Size = size
	}

	return page, nil
}

// Apply применяет окно к срезу. nil page - срез без изменений.
func Apply[T any](items []T, page *Page) []T {
	if page == nil {
		return items
	}
	if page.From >= len(items) {
		return items[:0]
	}
	end := page.From + page.Size
	if end > len(items) {
		end = len(items)
	}
	return items[page.From:end]
}
