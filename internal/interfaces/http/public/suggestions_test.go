package public

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	publicapp "github.com/dkellner85/poi-console-services/api/internal/public/application"
	"github.com/dkellner85/poi-console-services/api/internal/public/domain"
)

type fakeSuggestionCommands struct {
	submitted int
}

func (f *fakeSuggestionCommands) Submit(_ context.Context, cmd publicapp.SubmitSuggestionCommand) (*domain.Suggestion, error) {
	f.submitted++
	return &domain.Suggestion{
		ID:          "665f00000000000000000001",
		POISlug:     cmd.POISlug,
		Field:       cmd.Field,
		Message:     cmd.Message,
		SubmittedAt: time.Now().UTC(),
	}, nil
}

func postSuggestion(router chi.Router, remoteAddr string) *httptest.ResponseRecorder {
	body := `{"field":"hours","message":"They close at 16:00 on Sundays now."}`
	req := httptest.NewRequest(http.MethodPost, "/pois/corner-cafe/suggestions", strings.NewReader(body))
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSuggestionCreateThrottledPerIP(t *testing.T) {
	commands := &fakeSuggestionCommands{}
	handler := NewHandler(Config{
		Logger:              zap.NewNop().Sugar(),
		SuggestionCommands:  commands,
		SuggestionRateLimit: 3,
	})
	router := chi.NewRouter()
	handler.Register(router)

	for i := 0; i < 3; i++ {
		rec := postSuggestion(router, "203.0.113.7:4711")
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := postSuggestion(router, "203.0.113.7:4711")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, 3, commands.submitted, "a throttled request must not reach the service")

	// Another visitor is unaffected.
	rec = postSuggestion(router, "203.0.113.8:4711")
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSuggestionCreateResponseShape(t *testing.T) {
	handler := NewHandler(Config{
		Logger:             zap.NewNop().Sugar(),
		SuggestionCommands: &fakeSuggestionCommands{},
	})
	router := chi.NewRouter()
	handler.Register(router)

	rec := postSuggestion(router, "203.0.113.9:4711")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"corner-cafe"`)
	assert.Contains(t, rec.Body.String(), `"hours"`)
}
