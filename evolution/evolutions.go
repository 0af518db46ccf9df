package evolution

import (
	"context"

	"elementalsouls.app/evolution/model"
)

type ListEvolutionsResponse struct {
	Evolutions []*model.EvolutionRecord `json:"evolutions"`
}

//encore:api public path=/v1/assets/:id/evolutions method=GET
func (s *Service) ListEvolutions(ctx context.Context, id uint64) (*ListEvolutionsResponse, error) {
	records, err := s.evolutions.ListEvolutions(ctx, id)
	if err != nil {
		return nil, err
	}
	return newListEvolutionsResponse(records), nil
}

type ListIncidentsParams struct {
	Limit  int32 `query:"limit" validate:"min=0,max=100"`
	Offset int32 `query:"offset" validate:"min=0"`
}

func (p *ListIncidentsParams) Validate() error {
	if err := validate.Struct(p); err != nil {
		return validationError(err)
	}
	return nil
}

// ListIncidents lists partial failures and timed out evolutions for
// operators, newest first.
//
//encore:api private path=/v1/evolutions/incidents method=GET
func (s *Service) ListIncidents(ctx context.Context, params *ListIncidentsParams) (*ListEvolutionsResponse, error) {
	limit := params.Limit
	if limit == 0 {
		limit = 50
	}

	records, err := s.evolutions.ListIncidents(ctx, limit, params.Offset)
	if err != nil {
		return nil, err
	}
	return newListEvolutionsResponse(records), nil
}

func newListEvolutionsResponse(records []*model.EvolutionRecord) *ListEvolutionsResponse {
	if records == nil {
		records = []*model.EvolutionRecord{}
	}
	return &ListEvolutionsResponse{
		Evolutions: records,
	}
}
