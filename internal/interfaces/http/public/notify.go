package public

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/dkellner85/poi-console-services/api/internal/public/domain"
)

// notifySuggestionReceived pushes a new suggestion to the ops channel so
// editors hear about corrections without polling the inbox. Delivery is best
// effort; a failed send is recorded for later replay and never surfaces to
// the visitor.
func (h *Handler) notifySuggestionReceived(ctx context.Context, suggestion domain.Suggestion) {
	if strings.TrimSpace(h.webhookEndpoint) == "" {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	message := buildSuggestionMessage(h.adminConsoleBaseURL, suggestion)
	err := h.sendWebhookWithRetry(ctx, message, 3, 200*time.Millisecond)
	if err == nil {
		return
	}
	if h.logger != nil {
		h.logger.Warnw("suggestion webhook delivery failed", "suggestionId", suggestion.ID, "error", err)
	}
	h.persistNotificationFailure(ctx, suggestion, err, 3)
}

func buildSuggestionMessage(adminBaseURL string, suggestion domain.Suggestion) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("New suggestion for **%s** (%s)\n", suggestion.POIName, suggestion.Field))
	builder.WriteString("> " + strings.TrimSpace(suggestion.Message) + "\n")
	if mail := strings.TrimSpace(suggestion.ContactMail); mail != "" {
		builder.WriteString(fmt.Sprintf("Contact: %s\n", mail))
	}
	if suggestion.ID != "" && strings.TrimSpace(adminBaseURL) != "" {
		builder.WriteString(fmt.Sprintf("[Review in console](%s/suggestions/%s)\n", strings.TrimRight(adminBaseURL, "/"), suggestion.ID))
	}
	return builder.String()
}

func (h *Handler) sendWebhookWithRetry(ctx context.Context, text string, attempts int, delay time.Duration) error {
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		if err := h.sendWebhookMessage(ctx, text); err == nil {
			return nil
		} else {
			lastErr = err
		}
		if delay > 0 {
			time.Sleep(delay)
		}
	}
	return lastErr
}

func (h *Handler) sendWebhookMessage(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.New("message text is empty")
	}

	payload := map[string]any{"text": text}
	if channel := strings.TrimSpace(h.webhookChannel); channel != "" {
		payload["channel"] = channel
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("build webhook payload: %w", err)
	}

	timeout := h.httpClient.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	endpoint := strings.TrimRight(h.webhookEndpoint, "/") + "/messages"
	req, err := http.NewRequestWithContext(ctxWithTimeout, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := h.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send webhook request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		message, _ := io.ReadAll(io.LimitReader(res.Body, 1<<16))
		return fmt.Errorf("webhook returned status=%d body=%s", res.StatusCode, strings.TrimSpace(string(message)))
	}
	return nil
}

func (h *Handler) persistNotificationFailure(ctx context.Context, suggestion domain.Suggestion, cause error, attempts int) {
	if h.failedNotifications == nil || cause == nil {
		return
	}
	doc := bson.M{
		"target": "suggestion_webhook",
		"payload": bson.M{
			"suggestionId": suggestion.ID,
			"poiId":        suggestion.POIID,
			"poiName":      suggestion.POIName,
			"poiSlug":      suggestion.POISlug,
			"field":        suggestion.Field,
			"message":      suggestion.Message,
		},
		"error":       cause.Error(),
		"attempts":    attempts,
		"status":      "pending",
		"createdAt":   time.Now().UTC(),
		"lastTriedAt": time.Now().UTC(),
	}
	if _, err := h.failedNotifications.InsertOne(ctx, doc); err != nil && h.logger != nil {
		h.logger.Errorw("failed to record webhook failure", "suggestionId", suggestion.ID, "error", err)
	}
}
