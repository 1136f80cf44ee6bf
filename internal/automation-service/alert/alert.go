package alert

import (
	"VCS_Node_Automation/internal/automation-service/model"
	"VCS_Node_Automation/pkg/mail"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type InfoAlert struct {
	Title    string
	Message  string
	Chain    string
	Location string
}

// Channel delivers operator notifications. Delivery failures are logged by the channel and
// never returned, so they cannot mask the error being reported.
type Channel interface {
	SendInfo(ctx context.Context, alert InfoAlert) bool
	SendError(ctx context.Context, title, message string)
}

type WebhookFinder interface {
	GetWebhook(ctx context.Context, chain, location string) (model.Webhook, error)
}

const (
	colorInfo  = 0x3498db
	colorError = 0xe74c3c
)

type embed struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       int    `json:"color"`
	Timestamp   string `json:"timestamp"`
}

type webhookPayload struct {
	Embeds []embed `json:"embeds"`
}

type Config struct {
	InfoWebhookURL   string
	ErrorWebhookURL  string
	AdminMailAddress string
	RequestTimeout   time.Duration
}

type channel struct {
	webhooks         WebhookFinder
	mailSender       mail.Sender
	logger           *zap.Logger
	client           *http.Client
	infoWebhookURL   string
	errorWebhookURL  string
	adminMailAddress string
}

func (c *channel) SendInfo(ctx context.Context, alert InfoAlert) bool {
	webhookURL := c.infoWebhookURL
	if alert.Chain != "" && alert.Location != "" {
		webhook, err := c.webhooks.GetWebhook(ctx, alert.Chain, alert.Location)
		if err == nil {
			webhookURL = webhook.URL
		} else {
			c.logger.Debug("no webhook registered, using default info webhook",
				zap.String("chain", alert.Chain), zap.String("location", alert.Location), zap.Error(err))
		}
	}
	if webhookURL == "" {
		c.logger.Warn("info alert dropped, no webhook configured", zap.String("title", alert.Title))
		return false
	}
	if err := c.post(ctx, webhookURL, alert.Title, alert.Message, colorInfo); err != nil {
		c.logger.Error("failed to send info alert", zap.String("title", alert.Title), zap.Error(err))
		return false
	}
	return true
}

func (c *channel) SendError(ctx context.Context, title, message string) {
	if c.errorWebhookURL != "" {
		if err := c.post(ctx, c.errorWebhookURL, title, message, colorError); err != nil {
			c.logger.Error("failed to send error alert", zap.String("title", title), zap.Error(err))
		}
	}
	if c.mailSender != nil && c.adminMailAddress != "" {
		subject := fmt.Sprintf("[Automation Error] %s", title)
		if err := c.mailSender.SendMail([]string{c.adminMailAddress}, subject, "", message, nil); err != nil {
			c.logger.Error("failed to mail error alert", zap.String("title", title), zap.Error(err))
		}
	}
}

func (c *channel) post(ctx context.Context, webhookURL, title, message string, color int) error {
	b, err := json.Marshal(webhookPayload{
		Embeds: []embed{{
			Title:       title,
			Description: message,
			Color:       color,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		}},
	})
	if err != nil {
		return fmt.Errorf("AlertChannel.post: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("AlertChannel.post: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("AlertChannel.post: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("AlertChannel.post: webhook returned status %d", resp.StatusCode)
	}
	return nil
}

func NewChannel(cfg Config, webhooks WebhookFinder, mailSender mail.Sender, logger *zap.Logger) Channel {
	return &channel{
		webhooks:   webhooks,
		mailSender: mailSender,
		logger:     logger,
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		infoWebhookURL:   cfg.InfoWebhookURL,
		errorWebhookURL:  cfg.ErrorWebhookURL,
		adminMailAddress: cfg.AdminMailAddress,
	}
}
