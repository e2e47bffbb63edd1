package server

import (
	"github.com/nhdewitt/http-router/internal/request"
	"github.com/nhdewitt/http-router/internal/response"
)

// Dispatcher turns a parsed request into the response to send back.
type Dispatcher interface {
	Dispatch(req *request.Request) *response.Response
}

func badRequest() *response.Response {
	return response.New(response.StatusBadRequest, nil, "Bad Request")
}

func internalError() *response.Response {
	return response.New(response.StatusInternalServerError, nil, "Internal Server Error")
}
