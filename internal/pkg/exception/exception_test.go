package exception

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = ApplicationError{
	Message:    "backend unavailable",
	StatusCode: http.StatusBadGateway,
}

func TestApplicationError_Is(t *testing.T) {
	isRequest := func(err error, target error, want bool) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, errors.Is(err, target))
		}
	}

	cause := errors.New("connection refused")

	t.Run("same_sentinel", isRequest(errSentinel, errSentinel, true))
	t.Run("with_cause_matches_sentinel", isRequest(errSentinel.WithCause(cause), errSentinel, true))
	t.Run("with_cause_matches_cause", isRequest(errSentinel.WithCause(cause), cause, true))
	t.Run("wrapped", isRequest(fmt.Errorf("fetch: %w", errSentinel.WithCause(cause)), errSentinel, true))
	t.Run("different_status", isRequest(errSentinel, ApplicationError{
		Message:    errSentinel.Message,
		StatusCode: http.StatusServiceUnavailable,
	}, false))
	t.Run("different_cause", isRequest(errSentinel.WithCause(cause),
		errSentinel.WithCause(errors.New("timeout")), false))
	t.Run("plain_error", isRequest(errors.New("backend unavailable"), errSentinel, false))
}

func TestApplicationError_Error(t *testing.T) {
	assert.Equal(t, "backend unavailable", errSentinel.Error())
	assert.Equal(t, "backend unavailable: timeout", errSentinel.WithCause(errors.New("timeout")).Error())
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadGateway, StatusCode(fmt.Errorf("wrap: %w", errSentinel)))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(ApplicationError{Message: "no status"}))
}
