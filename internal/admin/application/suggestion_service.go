package application

import (
	"context"

	admindomain "github.com/dkellner85/poi-console-services/api/internal/admin/domain"
)

type suggestionService struct {
	repo SuggestionRepository
}

func NewSuggestionService(repo SuggestionRepository) SuggestionService {
	return &suggestionService{repo: repo}
}

func (s *suggestionService) List(ctx context.Context, paging Paging) ([]admindomain.Suggestion, error) {
	return s.repo.List(ctx, paging)
}

func (s *suggestionService) Dismiss(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
