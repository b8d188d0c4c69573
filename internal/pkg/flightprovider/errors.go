package flightprovider

import (
	"net/http"

	"github.com/ijalalfrz/flight-connection-service/internal/pkg/exception"
)

var ErrBackendUnavailable = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "schedule backend unavailable",
}

var ErrRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "schedule backend rate limit exceeded",
}

var ErrRetryExceeded = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "retry exceeded",
}
