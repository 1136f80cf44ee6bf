package repository

import (
	apperrors "VCS_Node_Automation/internal/automation-service/errors"
	"VCS_Node_Automation/internal/automation-service/model"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type WebhookRepository interface {
	CreateWebhook(ctx context.Context, webhook model.Webhook) (model.Webhook, error)
	GetWebhook(ctx context.Context, chain, location string) (model.Webhook, error)
}

type webhookRepository struct {
	db *gorm.DB
}

func (w *webhookRepository) CreateWebhook(ctx context.Context, webhook model.Webhook) (model.Webhook, error) {
	err := w.db.WithContext(ctx).Create(&webhook).Error
	if err != nil {
		return webhook, fmt.Errorf("WebhookRepository.CreateWebhook: %w", err)
	}
	return webhook, nil
}

func (w *webhookRepository) GetWebhook(ctx context.Context, chain, location string) (model.Webhook, error) {
	var webhook model.Webhook
	result := w.db.WithContext(ctx).First(&webhook, "chain = ? AND location = ?", chain, location)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return webhook, fmt.Errorf("WebhookRepository.GetWebhook: %w", apperrors.ErrWebhookNotFound)
		}
		return webhook, fmt.Errorf("WebhookRepository.GetWebhook: %w", result.Error)
	}
	return webhook, nil
}

func NewWebhookRepository(db *gorm.DB) WebhookRepository {
	return &webhookRepository{
		db: db,
	}
}
