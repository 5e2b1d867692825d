// Package paging holds the pagination plumbing shared by every list
// endpoint: input clamping, offset math, and the generic result wrapper.
package paging

// DefaultLimit applies when the caller sends no page size at all.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page is a sanitized pagination request.
type Page struct {
	Number int
	Limit  int
}

// Clamp normalizes raw pagination inputs. Page numbers below 1 become 1,
// limits outside [1, MaxLimit] fall back to DefaultLimit.
func Clamp(page, limit int) Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}
	return Page{Number: page, Limit: limit}
}

// Offset is the number of rows to skip for this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// TotalPages computes how many pages a result set of the given size spans.
// Zero rows means zero pages.
func TotalPages(total, limit int) int {
	if limit < 1 {
		return 0
	}
	return (total + limit - 1) / limit
}

// Result is the uniform shape list operations return.
type Result[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// NewResult wraps items with the bookkeeping fields derived from the page
// and the total row count.
func NewResult[T any](items []T, total int, p Page) Result[T] {
	return Result[T]{
		Items:      items,
		Total:      total,
		Page:       p.Number,
		Limit:      p.Limit,
		TotalPages: TotalPages(total, p.Limit),
	}
}
