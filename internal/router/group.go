package router

import (
	"strings"

	"github.com/nhdewitt/http-router/internal/request"
)

// Group registers routes under a fixed path prefix on a shared Router.
type Group struct {
	router *Router
	prefix string
}

func (g *Group) Register(method request.Method, path string, h Handler) error {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return g.router.Register(method, g.prefix+path, h)
}

func (g *Group) Get(path string, h HandlerFunc) error {
	return g.Register(request.MethodGet, path, h)
}

func (g *Group) Post(path string, h HandlerFunc) error {
	return g.Register(request.MethodPost, path, h)
}

// Group nests a child group; its prefix is the parent prefix, "/" and child.
func (g *Group) Group(child string) *Group {
	return &Group{router: g.router, prefix: joinPrefix(g.prefix, child)}
}

func (g *Group) Prefix() string {
	return g.prefix
}

func joinPrefix(parent, child string) string {
	return parent + "/" + strings.TrimPrefix(child, "/")
}
