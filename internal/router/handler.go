package router

import (
	"github.com/nhdewitt/http-router/internal/request"
	"github.com/nhdewitt/http-router/internal/response"
)

type Handler interface {
	Handle(req *request.Request) *response.Response
}

type HandlerFunc func(req *request.Request) *response.Response

func (f HandlerFunc) Handle(req *request.Request) *response.Response {
	return f(req)
}

// Registrar is implemented by Router and Group.
type Registrar interface {
	Register(method request.Method, path string, h Handler) error
}

// NotFound is the fallback used when a Router is built without one.
var NotFound = HandlerFunc(func(*request.Request) *response.Response {
	return response.New(response.StatusNotFound, nil, "Not Found")
})
