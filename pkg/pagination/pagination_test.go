package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func params(t *testing.T, query string) Params {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return FromContext(e.NewContext(req, rec))
}

func TestFromContext_DefaultsToEverything(t *testing.T) {
	p := params(t, "")
	if p.Limit != 0 || p.Offset != 0 {
		t.Errorf("expected zero params, got %+v", p)
	}
	lo, hi := p.Window(42)
	if lo != 0 || hi != 42 {
		t.Errorf("default window = [%d,%d), want [0,42)", lo, hi)
	}
}

func TestFromContext_CapsLimit(t *testing.T) {
	p := params(t, "limit=9999&offset=-3")
	if p.Limit != MaxLimit {
		t.Errorf("limit = %d, want %d", p.Limit, MaxLimit)
	}
	if p.Offset != 0 {
		t.Errorf("negative offset should clamp to 0, got %d", p.Offset)
	}
}

func TestWindow(t *testing.T) {
	cases := []struct {
		p      Params
		n      int
		lo, hi int
	}{
		{Params{Limit: 10, Offset: 0}, 25, 0, 10},
		{Params{Limit: 10, Offset: 20}, 25, 20, 25},
		{Params{Limit: 10, Offset: 30}, 25, 25, 25},
		{Params{Limit: 0, Offset: 5}, 25, 5, 25},
	}
	for _, tc := range cases {
		lo, hi := tc.p.Window(tc.n)
		if lo != tc.lo || hi != tc.hi {
			t.Errorf("Window(%+v, %d) = [%d,%d), want [%d,%d)", tc.p, tc.n, lo, hi, tc.lo, tc.hi)
		}
	}
}

func TestNewResponse(t *testing.T) {
	resp := NewResponse([]int{1, 2}, 10, Params{Limit: 2, Offset: 0})
	if !resp.HasMore {
		t.Error("expected HasMore with 10 total and window of 2")
	}
	resp = NewResponse([]int{1, 2}, 2, Params{})
	if resp.HasMore {
		t.Error("unwindowed response cannot have more")
	}
}
