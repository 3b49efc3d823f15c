package pagination

import "strings"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// Params is a 1-indexed page request.
type Params struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder SortOrder
}

// Meta is returned next to every list payload.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// Normalize fills defaults and clamps the limit. defLimit <= 0 means DefaultLimit.
func (p Params) Normalize(defLimit int) Params {
	if defLimit <= 0 {
		defLimit = DefaultLimit
	}
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = defLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	p.SortBy = strings.TrimSpace(p.SortBy)
	p.SortOrder = ParseOrder(string(p.SortOrder))
	return p
}

func (p Params) Offset() int { return (p.Page - 1) * p.Limit }

// ParseOrder accepts "asc" in any case; everything else is Desc.
func ParseOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), string(Asc)) {
		return Asc
	}
	return Desc
}

// NewMeta derives page counts the same way for every list endpoint:
// hasNext = page < ceil(total/limit), hasPrev = page > 1.
func NewMeta(p Params, total int64) Meta {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return Meta{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
	}
}

// Page is the `{data, pagination}` envelope.
type Page[T any] struct {
	Data       []T  `json:"data"`
	Pagination Meta `json:"pagination"`
}

func NewPage[T any](items []T, p Params, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Data: items, Pagination: NewMeta(p, total)}
}
