package endpoints

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ijalalfrz/flight-connection-service/internal/app/dto"
)

func TestSearchEndpoint(t *testing.T) {
	criteria := dto.SearchCriteria{
		Departure:         "DUB",
		Arrival:           "STN",
		DepartureDateTime: "2024-06-20T07:00",
		ArrivalDateTime:   "2024-06-21T21:00",
	}

	t.Run("success", func(t *testing.T) {
		svc := NewMockSearchService(t)
		svc.On("Search", mock.Anything, criteria).Return(dto.SearchResponse{Message: "ok"}, nil)

		resp, err := MakeSearchEndpoint(svc).Search(context.Background(), &criteria)
		require.NoError(t, err)
		assert.Equal(t, dto.SearchResponse{Message: "ok"}, resp)
	})

	t.Run("service_error", func(t *testing.T) {
		errBackend := errors.New("backend down")
		svc := NewMockSearchService(t)
		svc.On("Search", mock.Anything, criteria).Return(dto.SearchResponse{}, errBackend)

		_, err := MakeSearchEndpoint(svc).Search(context.Background(), &criteria)
		assert.ErrorIs(t, err, errBackend)
	})

	t.Run("invalid_request_type", func(t *testing.T) {
		svc := NewMockSearchService(t)

		_, err := MakeSearchEndpoint(svc).Search(context.Background(), criteria)
		assert.EqualError(t, err, "invalid type")
	})
}
