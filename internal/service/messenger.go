package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/pageza/snapdish/backend/internal/model"
)

// minMessageLength rejects bodies too short to be a real transcript.
const minMessageLength = 10

// MessengerService delivers text messages through the WhatsApp Cloud API.
type MessengerService struct {
	token            string
	phoneID          string
	defaultRecipient string
	apiURL           string
	client           *http.Client
	logger           *zap.Logger
}

// NewMessengerService creates a new MessengerService instance. Missing
// credentials are tolerated at construction and rejected per-send, so the
// server can run with delivery unconfigured.
func NewMessengerService(token, phoneID, defaultRecipient, apiURL string, logger *zap.Logger) *MessengerService {
	return &MessengerService{
		token:            token,
		phoneID:          phoneID,
		defaultRecipient: defaultRecipient,
		apiURL:           strings.TrimRight(apiURL, "/"),
		client:           http.DefaultClient,
		logger:           logger,
	}
}

// textPayload is the outbound WhatsApp Cloud API message body. Link preview
// expansion is disabled so transcript URLs stay compact.
type textPayload struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             textBody `json:"text"`
}

type textBody struct {
	Body       string `json:"body"`
	PreviewURL bool   `json:"preview_url"`
}

type sendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

// Send delivers one text message. The recipient falls back to the configured
// default when the explicit one is blank; with neither, the request is
// rejected before any network call.
func (s *MessengerService) Send(ctx context.Context, message, recipient string) (*model.DeliveryOutcome, error) {
	if s.token == "" || s.phoneID == "" {
		return nil, NewConfigError("messaging credentials are not configured")
	}

	if len(strings.TrimSpace(message)) < minMessageLength {
		return nil, NewValidationError(fmt.Sprintf("message must be at least %d characters", minMessageLength))
	}

	to := strings.TrimSpace(recipient)
	if to == "" {
		to = s.defaultRecipient
	}
	if to == "" {
		return nil, NewValidationError("no recipient provided and no default recipient configured")
	}

	payload := textPayload{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             textBody{Body: message, PreviewURL: false},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", s.apiURL, s.phoneID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, NewUpstreamError("messaging request failed", 0, "", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewUpstreamError("failed to read messaging response", 0, "", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Error("messaging request rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("body", truncate(string(body), 512)))
		return nil, NewUpstreamError("messaging API rejected the request", resp.StatusCode, string(body), nil)
	}

	var sent sendResponse
	if err := json.Unmarshal(body, &sent); err != nil {
		// Provider accepted the message; an undecodable body only loses
		// the queued id.
		s.logger.Warn("could not decode messaging response", zap.Error(err))
		return &model.DeliveryOutcome{State: model.DeliverySent}, nil
	}

	outcome := &model.DeliveryOutcome{State: model.DeliverySent}
	if len(sent.Messages) > 0 {
		outcome.State = model.DeliveryQueued
		outcome.ID = sent.Messages[0].ID
	}

	s.logger.Info("message delivered",
		zap.String("state", string(outcome.State)),
		zap.Bool("has_id", outcome.ID != ""))

	return outcome, nil
}
