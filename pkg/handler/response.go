package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"coinwagon/models"
)

type Error struct {
	Message string `json:"message"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	logrus.Error(message)
	c.AbortWithStatusJSON(statusCode, Error{Message: message})
}

func wrapOkJSON(c *gin.Context, response map[string]interface{}) {
	c.JSON(http.StatusOK, response)
}

// statusFor maps resolution errors onto HTTP statuses: invalid input is the
// caller's fault, provider exhaustion is an upstream problem.
func statusFor(err error) int {
	var invalid *models.InvalidQueryError
	if errors.As(err, &invalid) {
		return http.StatusBadRequest
	}
	var aggregate *models.AggregateFailure
	if errors.As(err, &aggregate) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
