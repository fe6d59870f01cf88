package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"cleansync/config"
	"cleansync/utils"

	"go.uber.org/zap"
)

// Mailer sends transactional email.
type Mailer interface {
	Send(ctx context.Context, to, subject, text string) error
}

// HTTPMailer talks to the transactional email REST API: bearer-token auth,
// a sender/recipient/content JSON envelope, 2xx with no body on success.
type HTTPMailer struct {
	client *http.Client
	url    string
	token  string
	sender string
}

// NewHTTPMailer builds a mailer from the application configuration.
func NewHTTPMailer() *HTTPMailer {
	return &HTTPMailer{
		client: &http.Client{Timeout: 10 * time.Second},
		url:    config.AppConfig.MailURL,
		token:  config.AppConfig.MailToken,
		sender: config.AppConfig.MailSender,
	}
}

type emailAddress struct {
	Email string `json:"email"`
}

type emailContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type emailEnvelope struct {
	From    emailAddress   `json:"from"`
	To      []emailAddress `json:"to"`
	Subject string         `json:"subject"`
	Content []emailContent `json:"content"`
}

// Send posts one plain-text email. When no mail endpoint is configured the
// message is logged and dropped, keeping local development mail-free.
func (m *HTTPMailer) Send(ctx context.Context, to, subject, text string) error {
	if m.url == "" {
		utils.GetLogger().Info("mail endpoint not configured, skipping email",
			zap.String("to", to), zap.String("subject", subject))
		return nil
	}

	envelope := emailEnvelope{
		From:    emailAddress{Email: m.sender},
		To:      []emailAddress{{Email: to}},
		Subject: subject,
		Content: []emailContent{{Type: "text/plain", Value: text}},
	}
	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("mail: failed to marshal envelope: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("mail: failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("mail: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("mail: unexpected status %d", resp.StatusCode)
	}
	return nil
}
