package hooks

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yanizio/singlecat/internal/routing"
)

func TestFilter_PriorityOrder(t *testing.T) {
	var f Filter[string, int]
	f.Add(20, func(_ context.Context, v string, _ int) (string, error) { return v + "c", nil })
	f.Add(5, func(_ context.Context, v string, _ int) (string, error) { return v + "a", nil })
	f.Add(DefaultPriority, func(_ context.Context, v string, _ int) (string, error) { return v + "b1", nil })
	f.Add(DefaultPriority, func(_ context.Context, v string, _ int) (string, error) { return v + "b2", nil })

	got, err := f.Apply(context.Background(), "", 0)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got != "ab1b2c" {
		t.Fatalf("Apply = %q, want ab1b2c", got)
	}
	if f.Len() != 4 {
		t.Fatalf("Len = %d, want 4", f.Len())
	}
}

func TestFilter_ErrorStopsChain(t *testing.T) {
	boom := errors.New("lookup failed")
	var f Filter[string, int64]
	f.Add(1, func(context.Context, string, int64) (string, error) { return "", boom })
	f.Add(2, func(context.Context, string, int64) (string, error) {
		t.Fatal("callback after error ran")
		return "", nil
	})

	got, err := f.Apply(context.Background(), "orig", 7)
	if err != boom {
		t.Fatalf("err = %v, want the callback error unchanged", err)
	}
	if got != "orig" {
		t.Fatalf("value = %q, want input on error", got)
	}
}

func TestFilter_EmptyIsIdentity(t *testing.T) {
	var f Filter[int, string]
	got, err := f.Apply(context.Background(), 302, "https://example.com/")
	if err != nil || got != 302 {
		t.Fatalf("Apply = %d, %v; want 302, nil", got, err)
	}
}

func TestTemplateRedirectMiddleware(t *testing.T) {
	h := New()
	h.TemplateRedirect.Add(DefaultPriority, func(w http.ResponseWriter, r *http.Request, q *routing.Query) bool {
		if q.Kind != routing.KindCategory {
			return false
		}
		http.Redirect(w, r, "/category/tech/", http.StatusFound)
		return true
	})

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	// Handled by the action.
	req := httptest.NewRequest(http.MethodGet, "/category/news/tech/", nil)
	req = req.WithContext(routing.WithQuery(req.Context(), &routing.Query{Kind: routing.KindCategory}))
	rr := httptest.NewRecorder()
	h.TemplateRedirectMiddleware(next).ServeHTTP(rr, req)
	if rr.Code != http.StatusFound || reached {
		t.Fatalf("status = %d, reached = %v; want 302 and not reached", rr.Code, reached)
	}

	// Falls through.
	req = httptest.NewRequest(http.MethodGet, "/hello/", nil)
	req = req.WithContext(routing.WithQuery(req.Context(), &routing.Query{Kind: routing.KindSingle}))
	rr = httptest.NewRecorder()
	h.TemplateRedirectMiddleware(next).ServeHTTP(rr, req)
	if rr.Code != http.StatusOK || !reached {
		t.Fatalf("status = %d, reached = %v; want 200 and reached", rr.Code, reached)
	}
}
