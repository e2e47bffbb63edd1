package handler

import (
	"github.com/nhdewitt/http-router/internal/request"
	"github.com/nhdewitt/http-router/internal/response"
)

func Echo(req *request.Request) *response.Response {
	return response.OK("text/plain", req.Body)
}
