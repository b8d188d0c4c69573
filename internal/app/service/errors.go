package service

import (
	"net/http"

	"github.com/ijalalfrz/flight-connection-service/internal/pkg/exception"
)

var ErrInvalidRequest = exception.ApplicationError{
	Message:    "invalid search request",
	StatusCode: http.StatusBadRequest,
}
