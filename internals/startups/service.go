package startups

import (
	"context"
	"fmt"
	"math"
	"strings"

	"FounderX/internals/apperrors"
	"FounderX/internals/models"
)

type Store interface {
	Create(ctx context.Context, s models.Startup) (models.Startup, error)
	ByID(ctx context.Context, id int64) (models.Startup, error)
	ListByFounder(ctx context.Context, founderID int64) ([]models.Startup, error)
}

type CreateInput struct {
	Name      string
	Domain    string
	Stage     string
	Funding   float64
	FounderID int64
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create inserts a startup. The founder is not looked up first; the store
// decides whether FounderID exists.
func (s *Service) Create(ctx context.Context, in CreateInput) (models.Startup, error) {
	stage := strings.TrimSpace(in.Stage)
	if stage == "" {
		stage = models.DefaultStage
	}
	if in.Funding < 0 || math.IsNaN(in.Funding) || math.IsInf(in.Funding, 0) {
		return models.Startup{}, apperrors.ErrInvalidField("funding", "must be a non-negative amount")
	}

	created, err := s.store.Create(ctx, models.Startup{
		Name:      strings.TrimSpace(in.Name),
		Domain:    strings.TrimSpace(in.Domain),
		Stage:     stage,
		Funding:   in.Funding,
		FounderId: in.FounderID,
	})
	if err != nil {
		return models.Startup{}, fmt.Errorf("create startup: %w", err)
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, id int64) (models.Startup, error) {
	return s.store.ByID(ctx, id)
}

func (s *Service) ListByFounder(ctx context.Context, founderID int64) ([]models.Startup, error) {
	return s.store.ListByFounder(ctx, founderID)
}
