package webhook

import (
	apperrors "VCS_Node_Automation/internal/automation-service/errors"
	"VCS_Node_Automation/internal/automation-service/model"
	"VCS_Node_Automation/internal/automation-service/repository"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Registrar provisions the outbound notification webhook used for a node's chain and location.
type Registrar interface {
	RegisterForNode(ctx context.Context, node model.Node) error
}

type Config struct {
	APIURL         string
	BotToken       string
	ChannelID      string
	RequestTimeout time.Duration
}

type discordWebhook struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	URL   string `json:"url"`
}

type discordRegistrar struct {
	webhookRepository repository.WebhookRepository
	client            *http.Client
	logger            *zap.Logger
	apiURL            string
	botToken          string
	channelID         string
}

func (d *discordRegistrar) RegisterForNode(ctx context.Context, node model.Node) error {
	chain := node.Chain.Name
	location := node.Host.Location.Name
	_, err := d.webhookRepository.GetWebhook(ctx, chain, location)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrWebhookNotFound) {
		return fmt.Errorf("WebhookRegistrar.RegisterForNode: %w", err)
	}

	url, err := d.createDiscordWebhook(ctx, fmt.Sprintf("%s-%s", chain, location))
	if err != nil {
		return fmt.Errorf("WebhookRegistrar.RegisterForNode: %w", err)
	}
	_, err = d.webhookRepository.CreateWebhook(ctx, model.Webhook{
		Chain:    chain,
		Location: location,
		URL:      url,
	})
	if err != nil {
		return fmt.Errorf("WebhookRegistrar.RegisterForNode: %w", err)
	}
	d.logger.Info("registered webhook for node",
		zap.String("node_id", node.ID), zap.String("chain", chain), zap.String("location", location))
	return nil
}

func (d *discordRegistrar) createDiscordWebhook(ctx context.Context, name string) (string, error) {
	b, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return "", err
	}
	endpoint := fmt.Sprintf("%s/channels/%s/webhooks", strings.TrimSuffix(d.apiURL, "/"), d.channelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bot "+d.botToken)
	resp, err := d.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("discord api returned %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	var created discordWebhook
	if err = json.Unmarshal(body, &created); err != nil {
		return "", fmt.Errorf("decoding discord webhook: %w", err)
	}
	if created.URL != "" {
		return created.URL, nil
	}
	return fmt.Sprintf("%s/webhooks/%s/%s", strings.TrimSuffix(d.apiURL, "/"), created.ID, created.Token), nil
}

func NewDiscordRegistrar(cfg Config, webhookRepository repository.WebhookRepository, logger *zap.Logger) Registrar {
	return &discordRegistrar{
		webhookRepository: webhookRepository,
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		logger:    logger,
		apiURL:    cfg.APIURL,
		botToken:  cfg.BotToken,
		channelID: cfg.ChannelID,
	}
}
