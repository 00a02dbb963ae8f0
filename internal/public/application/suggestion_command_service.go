package application

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dkellner85/poi-console-services/api/internal/public/domain"
)

const maxSuggestionMessageRunes = 2000

// suggestionFields names the POI attributes a visitor may flag.
var suggestionFields = map[string]struct{}{
	"hours":    {},
	"address":  {},
	"contact":  {},
	"photos":   {},
	"closure":  {},
	"category": {},
	"other":    {},
}

type suggestionCommandService struct {
	pois        POIRepository
	suggestions SuggestionRepository
}

func NewSuggestionCommandService(pois POIRepository, suggestions SuggestionRepository) SuggestionCommandService {
	return &suggestionCommandService{pois: pois, suggestions: suggestions}
}

func (s *suggestionCommandService) Submit(ctx context.Context, cmd SubmitSuggestionCommand) (*domain.Suggestion, error) {
	message := strings.TrimSpace(cmd.Message)
	if message == "" {
		return nil, errors.New("suggestion message is required")
	}
	if utf8.RuneCountInString(message) > maxSuggestionMessageRunes {
		return nil, fmt.Errorf("suggestion message must be at most %d characters", maxSuggestionMessageRunes)
	}

	field := strings.ToLower(strings.TrimSpace(cmd.Field))
	if field == "" {
		field = "other"
	}
	if _, ok := suggestionFields[field]; !ok {
		return nil, fmt.Errorf("unknown suggestion field: %s", cmd.Field)
	}

	contact := strings.TrimSpace(cmd.ContactMail)
	if contact != "" {
		if _, err := mail.ParseAddress(contact); err != nil {
			return nil, fmt.Errorf("invalid contact email: %w", err)
		}
	}

	poi, err := s.pois.FindBySlug(ctx, cmd.POISlug)
	if err != nil {
		return nil, err
	}

	suggestion := &domain.Suggestion{
		POIID:       poi.ID,
		POIName:     poi.Name,
		POISlug:     poi.Slug,
		Field:       field,
		Message:     message,
		ContactMail: contact,
		ClientIP:    strings.TrimSpace(cmd.ClientIP),
		SubmittedAt: time.Now().UTC(),
	}

	return suggestion, s.suggestions.Insert(ctx, suggestion)
}
