// Package response writes JSON bodies in the wardrobe backend's format:
// entities are returned bare and errors as {"detail": ...}.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 with data as the whole body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 with data as the whole body.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends 204 without a body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends status with {"detail": err}.
func Error(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, Detail{Detail: err.Error()})
}

// NotFound sends 404 naming the missing entity.
func NotFound(c *gin.Context, what string) {
	c.AbortWithStatusJSON(http.StatusNotFound, Detail{Detail: what + " not found"})
}

// Validation sends 422 with one entry per failing field.
func Validation(c *gin.Context, errs ...FieldError) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, Detail{Detail: errs})
}

// InternalError sends 500 without leaking err.
func InternalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, Detail{Detail: MessageInternal})
}

// Unauthorized sends 401 with a bearer challenge.
func Unauthorized(c *gin.Context, msg string) {
	if msg == "" {
		msg = MessageNotAuthenticated
	}
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, Detail{Detail: msg})
}
