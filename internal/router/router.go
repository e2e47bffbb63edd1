package router

import (
	"errors"
	"fmt"
	"sync"

	"github.com/nhdewitt/http-router/internal/request"
	"github.com/nhdewitt/http-router/internal/response"
)

var (
	ErrDuplicateRoute    = errors.New("route already registered")
	ErrUnsupportedMethod = errors.New("cannot register unsupported method")
	ErrNilHandler        = errors.New("nil handler")
)

// Router keeps one trie per method and falls back to a not-found handler
// whenever a request cannot be resolved. It is safe for concurrent use, and
// every Group derived from it writes into the same tries.
type Router struct {
	mu       sync.RWMutex
	trees    map[request.Method]*trie
	notFound Handler
}

func New(notFound Handler) *Router {
	if notFound == nil {
		notFound = NotFound
	}
	return &Router{
		trees:    make(map[request.Method]*trie),
		notFound: notFound,
	}
}

func (r *Router) Register(method request.Method, path string, h Handler) error {
	if method == request.MethodUnsupported {
		return fmt.Errorf("%w: %s", ErrUnsupportedMethod, path)
	}
	if f, ok := h.(HandlerFunc); h == nil || (ok && f == nil) {
		return fmt.Errorf("%w: %s %s", ErrNilHandler, method, path)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.trees[method]
	if !ok {
		t = newTrie()
		r.trees[method] = t
	}
	if !t.insert(path, h) {
		return fmt.Errorf("%w: %s %s", ErrDuplicateRoute, method, path)
	}
	return nil
}

func (r *Router) Get(path string, h HandlerFunc) error {
	return r.Register(request.MethodGet, path, h)
}

func (r *Router) Post(path string, h HandlerFunc) error {
	return r.Register(request.MethodPost, path, h)
}

func (r *Router) Lookup(method request.Method, path string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.trees[method]
	if !ok {
		return nil, false
	}
	return t.search(path)
}

// Dispatch runs the handler bound to the request's method and path, or the
// not-found handler when there is none. A handler returning nil is answered
// with a 500.
func (r *Router) Dispatch(req *request.Request) *response.Response {
	h, ok := r.Lookup(req.Method, req.Resource.Path())
	if !ok {
		h = r.notFound
	}

	resp := h.Handle(req)
	if resp == nil {
		return response.New(response.StatusInternalServerError, nil, "Internal Server Error")
	}
	return resp
}

func (r *Router) NotFound(req *request.Request) *response.Response {
	return r.notFound.Handle(req)
}

func (r *Router) Group(prefix string) *Group {
	return &Group{router: r, prefix: joinPrefix("", prefix)}
}
