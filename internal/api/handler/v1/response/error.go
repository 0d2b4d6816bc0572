package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the uniform error envelope. The wrapped cause is logged
// server-side only; clients never see internal detail.
type Err struct {
	statusCode int
	cause      error

	Success bool   `json:"success"`
	Msg     string `json:"error"`
}

func newErr(statusCode int, msg string, cause error) *Err {
	return &Err{
		statusCode: statusCode,
		cause:      cause,
		Success:    false,
		Msg:        msg,
	}
}

func ErrBadRequest(err error) *Err {
	return newErr(http.StatusBadRequest, err.Error(), err)
}

func ErrWrongCredentials() *Err {
	return newErr(http.StatusUnauthorized, "Invalid email or password", nil)
}

func ErrTokenRequired() *Err {
	return newErr(http.StatusUnauthorized, "Access token required", nil)
}

func ErrInvalidToken() *Err {
	return newErr(http.StatusForbidden, "Invalid or expired token", nil)
}

func ErrPermissionDenied(err error) *Err {
	return newErr(http.StatusForbidden, "Access denied. "+err.Error(), err)
}

func ErrNotFound(err error) *Err {
	return newErr(http.StatusNotFound, err.Error(), err)
}

func ErrInternalServerError(err error) *Err {
	return newErr(http.StatusInternalServerError, "Something went wrong", err)
}

// RenderErr writes the envelope and logs the cause. Internal errors are
// logged at error level with full detail, everything else at info.
func RenderErr(ctx *gin.Context, err *Err) {
	fields := []zap.Field{
		zap.Int("status", err.statusCode),
		zap.String("path", ctx.FullPath()),
	}
	if err.cause != nil {
		fields = append(fields, zap.Error(err.cause))
	}

	if err.statusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed", fields...)
	} else {
		zap.L().Info("request rejected", fields...)
	}

	ctx.JSON(err.statusCode, err)
}
