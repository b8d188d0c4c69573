package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"

	"github.com/ijalalfrz/flight-connection-service/internal/app/dto"
)

type SearchService interface {
	Search(ctx context.Context, criteria dto.SearchCriteria) (dto.SearchResponse, error)
}

type SearchEndpoint struct {
	Search endpoint.Endpoint
}

func MakeSearchEndpoint(service SearchService) SearchEndpoint {
	return SearchEndpoint{
		Search: endpoint.Chain(LoggingMiddleware("search"))(makeSearchEndpoint(service)),
	}
}

func makeSearchEndpoint(service SearchService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchCriteria)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		result, err := service.Search(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("search service: %w", err)
		}

		return result, nil
	}
}
