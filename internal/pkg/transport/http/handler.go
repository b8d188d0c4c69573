package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/go-viper/mapstructure/v2"

	"github.com/ijalalfrz/flight-connection-service/internal/pkg/exception"
)

// MakeHandlerFunc wraps an endpoint into an http.HandlerFunc that reports failures
// through ErrorResponse.
func MakeHandlerFunc(
	e endpoint.Endpoint,
	dec kithttp.DecodeRequestFunc,
	enc kithttp.EncodeResponseFunc,
) http.HandlerFunc {
	return kithttp.NewServer(e, dec, enc,
		kithttp.ServerErrorEncoder(ErrorResponse),
	).ServeHTTP
}

// DecodeRequest decodes the request body into *T and runs its Bind hook. *T must
// implement render.Binder.
func DecodeRequest[T any](_ context.Context, r *http.Request) (interface{}, error) {
	req := new(T)

	binder, ok := any(req).(render.Binder)
	if !ok {
		return nil, fmt.Errorf("%T does not implement render.Binder", req)
	}

	if err := render.Bind(r, binder); err != nil {
		return nil, badRequest("invalid request body", err)
	}

	return req, nil
}

// DecodeQuery decodes the query string into *T using its json tag names and runs its
// Bind hook. Only the first value of a repeated parameter is used.
func DecodeQuery[T any](_ context.Context, r *http.Request) (interface{}, error) {
	req := new(T)

	binder, ok := any(req).(render.Binder)
	if !ok {
		return nil, fmt.Errorf("%T does not implement render.Binder", req)
	}

	params := make(map[string]interface{}, len(r.URL.Query()))
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           req,
	})
	if err != nil {
		return nil, fmt.Errorf("build query decoder: %w", err)
	}

	if err := decoder.Decode(params); err != nil {
		return nil, badRequest("invalid query parameters", err)
	}

	if err := binder.Bind(r); err != nil {
		return nil, badRequest("invalid query parameters", err)
	}

	return req, nil
}

// badRequest keeps application errors raised by Bind and turns anything else into a
// 400 carrying message.
func badRequest(message string, err error) error {
	var appErr exception.ApplicationError
	if errors.As(err, &appErr) {
		return err
	}

	return exception.ApplicationError{
		StatusCode: http.StatusBadRequest,
		Message:    message,
		Cause:      err,
	}
}
