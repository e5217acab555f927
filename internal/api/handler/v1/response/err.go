package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	StatusCode int    `json:"-"`
	Msg        string `json:"error"`

	err error
}

func (e *Err) Error() string {
	return e.Msg
}

func NewErr(statusCode int, err error) *Err {
	return &Err{
		StatusCode: statusCode,
		Msg:        err.Error(),
	}
}

func ErrBadRequest(err error) *Err {
	return NewErr(http.StatusBadRequest, err)
}

func ErrNotFound(what, key string, value interface{}) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Msg:        fmt.Sprintf("%v with %v (%v) is not found", what, key, value),
	}
}

func ErrConflict(err error) *Err {
	return NewErr(http.StatusConflict, err)
}

// ErrInternalServerError hides the underlying error from the caller.
// The details are logged in RenderErr instead.
func ErrInternalServerError(err error) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		Msg:        http.StatusText(http.StatusInternalServerError),
		err:        err,
	}
}

func RenderErr(ctx *gin.Context, err *Err) {
	if err.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("server error",
			zap.Int("status", err.StatusCode),
			zap.String("path", ctx.FullPath()),
			zap.Error(err.err),
		)
	}

	ctx.AbortWithStatusJSON(err.StatusCode, err)
}
