package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

type Service struct {
	config Config
	client *http.Client

	logger *zap.Logger
}

// NewService creates a new email notification service.
func NewService(config Config, logger *zap.Logger) *Service {
	return &Service{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		logger: logger,
	}
}

// Send delivers a plaintext email with the configured subject to the
// configured recipients. Any non-2xx provider response is an error.
func (s *Service) Send(ctx context.Context, body string) error {
	if !s.config.Enabled {
		s.logger.Debug("email delivery disabled, skipping notification")
		return nil
	}

	recipients := ParseRecipients(s.config.Recipients)
	if len(recipients) == 0 {
		return ErrNoRecipients
	}

	payload := message{
		Personalizations: []personalization{{To: recipients}},
		From:             Address{Email: s.config.From},
		Subject:          s.config.Subject,
		Content:          []content{{Type: "text/plain", Value: body}},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.Endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("notification request failed", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		s.logger.Error("notification rejected by provider",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", detail))
		return fmt.Errorf("%w: provider returned status %d", ErrSendFailed, resp.StatusCode)
	}

	s.logger.Info("notification sent", zap.Int("recipients", len(recipients)))

	return nil
}
