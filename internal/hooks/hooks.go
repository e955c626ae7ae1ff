// internal/hooks/hooks.go
//
// Typed filter and action chains.
//
// Context
// -------
// Plugins extend the host by attaching callbacks to named extension
// points instead of patching host code:
//
//   • Filter[V, A] ─ each callback receives the current value plus a fixed
//     argument and returns the (possibly) new value.  Used for post_link,
//     category_link, and the redirect status code.
//   • Action[A]    ─ each callback may write a response; the first one
//     that does ends the chain.  Used for template_redirect.
//
// Callbacks run in ascending priority; equal priorities keep registration
// order.  A filter error stops the chain and is returned unchanged so
// callers can errors.Is it against store sentinels.
//
// Notes
// -----
// • Registration normally happens once at boot, but both types are safe
//   for concurrent Add and Apply.
// • Oxford commas, two spaces after periods.

package hooks

import (
	"context"
	"net/http"
	"sort"
	"sync"

	"github.com/yanizio/singlecat/internal/routing"
	"github.com/yanizio/singlecat/internal/taxonomy"
)

// DefaultPriority mirrors the host convention for "no preference".
const DefaultPriority = 10

//
// Filter
//

// FilterFunc transforms value given arg.
type FilterFunc[V, A any] func(ctx context.Context, value V, arg A) (V, error)

type filterEntry[V, A any] struct {
	priority int
	seq      int
	fn       FilterFunc[V, A]
}

// Filter is an ordered list of FilterFuncs.  Zero value is ready to use.
type Filter[V, A any] struct {
	mu      sync.RWMutex
	entries []filterEntry[V, A]
	seq     int
}

// Add attaches fn at priority.
func (f *Filter[V, A]) Add(priority int, fn FilterFunc[V, A]) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++

	// Copy on write so a concurrent Apply keeps iterating its own slice.
	next := make([]filterEntry[V, A], 0, len(f.entries)+1)
	next = append(next, f.entries...)
	next = append(next, filterEntry[V, A]{priority: priority, seq: f.seq, fn: fn})
	sort.SliceStable(next, func(i, j int) bool {
		if next[i].priority != next[j].priority {
			return next[i].priority < next[j].priority
		}
		return next[i].seq < next[j].seq
	})
	f.entries = next
}

// Apply threads value through every callback.
func (f *Filter[V, A]) Apply(ctx context.Context, value V, arg A) (V, error) {
	f.mu.RLock()
	entries := f.entries
	f.mu.RUnlock()

	for _, e := range entries {
		v, err := e.fn(ctx, value, arg)
		if err != nil {
			return value, err
		}
		value = v
	}
	return value, nil
}

// Len reports how many callbacks are attached.
func (f *Filter[V, A]) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.entries)
}

//
// Action
//

// ActionFunc returns true when it wrote a response.
type ActionFunc[A any] func(w http.ResponseWriter, r *http.Request, arg A) bool

type actionEntry[A any] struct {
	priority int
	seq      int
	fn       ActionFunc[A]
}

// Action is an ordered list of ActionFuncs.  Zero value is ready to use.
type Action[A any] struct {
	mu      sync.RWMutex
	entries []actionEntry[A]
	seq     int
}

// Add attaches fn at priority.
func (a *Action[A]) Add(priority int, fn ActionFunc[A]) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.seq++

	// Copy on write so a concurrent Apply keeps iterating its own slice.
	next := make([]actionEntry[A], 0, len(a.entries)+1)
	next = append(next, a.entries...)
	next = append(next, actionEntry[A]{priority: priority, seq: a.seq, fn: fn})
	sort.SliceStable(next, func(i, j int) bool {
		if next[i].priority != next[j].priority {
			return next[i].priority < next[j].priority
		}
		return next[i].seq < next[j].seq
	})
	a.entries = next
}

// Do runs callbacks until one handles the request.
func (a *Action[A]) Do(w http.ResponseWriter, r *http.Request, arg A) bool {
	a.mu.RLock()
	entries := a.entries
	a.mu.RUnlock()

	for _, e := range entries {
		if e.fn(w, r, arg) {
			return true
		}
	}
	return false
}

//
// Extension points
//

// Hooks bundles every extension point the host exposes.
type Hooks struct {
	// PostLink receives the host-built post permalink and the post.
	PostLink Filter[string, taxonomy.Post]

	// CategoryLink receives the host-built archive link and the category ID.
	CategoryLink Filter[string, int64]

	// RedirectStatus receives the default status (302) and the target URL
	// of a single-category redirect.
	RedirectStatus Filter[int, string]

	// TemplateRedirect fires after routing and before rendering.
	TemplateRedirect Action[*routing.Query]
}

// New returns an empty set of hooks.
func New() *Hooks { return &Hooks{} }

// TemplateRedirectMiddleware runs the TemplateRedirect action for every
// request that passed routing.Middleware.  Requests handled by an action
// never reach next.
func (h *Hooks) TemplateRedirectMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := routing.FromContext(r.Context())
		if q != nil && h.TemplateRedirect.Do(w, r, q) {
			return
		}
		next.ServeHTTP(w, r)
	})
}
