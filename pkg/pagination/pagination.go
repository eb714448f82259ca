package pagination

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// MaxLimit caps a single response window.
const MaxLimit = 500

// Params holds windowing parameters extracted from a request. A zero Limit
// means "everything": the store contract returns unbounded result sets, and
// the window is applied in memory over the already-fetched rows.
type Params struct {
	Limit  int
	Offset int
}

// FromContext extracts windowing parameters from the echo context.
func FromContext(c echo.Context) Params {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 0 {
		limit = 0
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	if offset < 0 {
		offset = 0
	}

	return Params{Limit: limit, Offset: offset}
}

// Window returns the [lo, hi) slice bounds for a fetched set of n rows.
func (p Params) Window(n int) (int, int) {
	lo := p.Offset
	if lo > n {
		lo = n
	}
	hi := n
	if p.Limit > 0 && lo+p.Limit < n {
		hi = lo + p.Limit
	}
	return lo, hi
}

// HasNext reports whether rows remain after the current window.
func (p Params) HasNext(total int) bool {
	if p.Limit <= 0 {
		return false
	}
	return p.Offset+p.Limit < total
}

// Response wraps a windowed API response.
type Response struct {
	Data    interface{} `json:"data"`
	Total   int         `json:"total"`
	Limit   int         `json:"limit"`
	Offset  int         `json:"offset"`
	HasMore bool        `json:"has_more"`
}

func NewResponse(data interface{}, total int, p Params) *Response {
	return &Response{
		Data:    data,
		Total:   total,
		Limit:   p.Limit,
		Offset:  p.Offset,
		HasMore: p.HasNext(total),
	}
}
