package web

import (
	"github.com/oarkflow/frame"
	"github.com/oarkflow/frame/pkg/protocol/consts"
)

type Response struct {
	Additional any    `json:"additional,omitempty"`
	Data       any    `json:"data"`
	Message    string `json:"message,omitempty"`
	Code       int    `json:"code"`
	Success    bool   `json:"success"`
}

func getResponse(code int, message string, additional any) Response {
	return Response{
		Code:       code,
		Message:    message,
		Success:    false,
		Additional: additional,
	}
}

func Abort(ctx *frame.Context, code int, message string, additional any) {
	ctx.AbortWithJSON(consts.StatusOK, getResponse(code, message, additional))
}

func Failed(ctx *frame.Context, code int, message string, additional any) {
	ctx.JSON(consts.StatusOK, getResponse(code, message, additional))
}

func Success(ctx *frame.Context, code int, data any, message ...string) {
	response := Response{
		Code:    code,
		Data:    data,
		Success: true,
	}
	if len(message) > 0 {
		response.Message = message[0]
	}
	ctx.JSON(consts.StatusOK, response)
}
