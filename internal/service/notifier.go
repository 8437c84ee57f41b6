package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"equipment-assignment-backend/internal/config"

	"github.com/go-playground/validator/v10"
)

// resendEndpoint is the Resend transactional email API
const resendEndpoint = "https://api.resend.com/emails"

// NotifierService sends notification emails through the Resend HTTP API.
// Ledger state never depends on the outcome of a notification.
type NotifierService struct {
	cfg        *config.Config
	httpClient *http.Client
	validator  *validator.Validate
}

// Ensure NotifierService implements NotifierServiceInterface
var _ NotifierServiceInterface = (*NotifierService)(nil)

// NewNotifierService creates a new notifier service
func NewNotifierService(cfg *config.Config, validator *validator.Validate) *NotifierService {
	return &NotifierService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		validator:  validator,
	}
}

// SendNotificationRequest represents the request to send a notification email
type SendNotificationRequest struct {
	Recipients []string `json:"recipients" validate:"required,min=1,dive,email"`
	Subject    string   `json:"subject" validate:"required,max=300"`
	Body       string   `json:"body" validate:"required"`
}

// SendNotificationResponse represents the outcome of a notification send
type SendNotificationResponse struct {
	ID string `json:"id"`
}

// resendPayload is the request body of the Resend emails endpoint
type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// resendResponse is the response body of the Resend emails endpoint
type resendResponse struct {
	ID string `json:"id"`
}

// SendNotification sends one email to all recipients. Body newlines become
// <br> tags since Resend expects HTML.
func (s *NotifierService) SendNotification(req *SendNotificationRequest) (*SendNotificationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if s.cfg.ResendAPIKey == "" {
		return nil, fmt.Errorf("resend api key is not configured")
	}

	payload := resendPayload{
		From:    s.cfg.ResendFrom,
		To:      req.Recipients,
		Subject: req.Subject,
		HTML:    strings.ReplaceAll(req.Body, "\n", "<br>"),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode email payload: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create email request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.cfg.ResendAPIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("email send failed: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	var result resendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode email response: %w", err)
	}

	return &SendNotificationResponse{ID: result.ID}, nil
}
