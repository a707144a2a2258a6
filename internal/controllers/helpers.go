package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
)

const (
	DefaultRequestTimeout = 3 * time.Second
)

// isJSONRequest Определяет тип запроса (json или нет) по заголовку Content-Type.
func isJSONRequest(ctx *gin.Context) bool {
	return ctx.ContentType() == gin.MIMEJSON
}

// isFormRequest true для application/x-www-form-urlencoded и multipart/form-data.
func isFormRequest(ctx *gin.Context) bool {
	ct := ctx.ContentType()
	return ct == gin.MIMEPOSTForm || ct == gin.MIMEMultipartPOSTForm
}
