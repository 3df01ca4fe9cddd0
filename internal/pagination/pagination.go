// Package pagination holds the limit/offset arithmetic shared by every list
// endpoint and the client that consumes them.
package pagination

import (
	"strconv"
	"strings"
)

const (
	DefaultLimit = 10
	MaxLimit     = 200
)

// Page describes one window of a list.
type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// NextOffset is offset+limit while that is still inside the list, else nil.
func (p Page) NextOffset() *int {
	if p.Offset+p.Limit < p.Total {
		n := p.Offset + p.Limit
		return &n
	}
	return nil
}

// PreviousOffset is offset-limit whenever offset > 0, else nil. The value is
// not clamped at zero.
func (p Page) PreviousOffset() *int {
	if p.Offset > 0 {
		n := p.Offset - p.Limit
		return &n
	}
	return nil
}

func (p Page) CurrentPage() int {
	if p.Limit <= 0 {
		return 1
	}
	return p.Offset/p.Limit + 1
}

func (p Page) TotalPages() int {
	if p.Limit <= 0 {
		return 0
	}
	return (p.Total + p.Limit - 1) / p.Limit
}

// Meta is the page object carried in list responses.
type Meta struct {
	Limit          int  `json:"limit"`
	Offset         int  `json:"offset"`
	Total          int  `json:"total"`
	NextOffset     *int `json:"nextOffset"`
	PreviousOffset *int `json:"previousOffset"`
}

func (p Page) Meta() Meta {
	return Meta{
		Limit:          p.Limit,
		Offset:         p.Offset,
		Total:          p.Total,
		NextOffset:     p.NextOffset(),
		PreviousOffset: p.PreviousOffset(),
	}
}

func (m Meta) Page() Page {
	return Page{Limit: m.Limit, Offset: m.Offset, Total: m.Total}
}

// List is the wire shape of every paginated endpoint.
type List[T any] struct {
	Data []T  `json:"data"`
	Page Meta `json:"page"`
}

func NewList[T any](data []T, p Page) List[T] {
	if data == nil {
		data = []T{}
	}
	return List[T]{Data: data, Page: p.Meta()}
}

// ParseLimitOffset reads raw query values, falling back to defLimit for a
// missing or out-of-range limit and to 0 for a missing or negative offset.
func ParseLimitOffset(rawLimit, rawOffset string, defLimit int) (limit, offset int) {
	limit = defLimit
	if v := strings.TrimSpace(rawLimit); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= MaxLimit {
			limit = n
		}
	}
	if v := strings.TrimSpace(rawOffset); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
