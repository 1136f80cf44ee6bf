package repository

import (
	apperrors "VCS_Node_Automation/internal/automation-service/errors"
	"VCS_Node_Automation/internal/automation-service/model"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type ChainRepository interface {
	CreateChain(ctx context.Context, chain model.Chain) (model.Chain, error)
	GetChainByID(ctx context.Context, id string) (model.Chain, error)
	GetChainByName(ctx context.Context, name string) (model.Chain, error)
	GetChains(ctx context.Context) ([]model.Chain, error)
	UpdateChainByID(ctx context.Context, id string, fields map[string]any) error
}

type chainRepository struct {
	db *gorm.DB
}

func (c *chainRepository) CreateChain(ctx context.Context, chain model.Chain) (model.Chain, error) {
	err := c.db.WithContext(ctx).Create(&chain).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return chain, fmt.Errorf("ChainRepository.CreateChain: %w", apperrors.ErrChainNameAlreadyExists)
		}
		return chain, fmt.Errorf("ChainRepository.CreateChain: %w", err)
	}
	return chain, nil
}

func (c *chainRepository) GetChainByID(ctx context.Context, id string) (model.Chain, error) {
	var chain model.Chain
	result := c.db.WithContext(ctx).First(&chain, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return chain, fmt.Errorf("ChainRepository.GetChainByID: %w", apperrors.ErrChainNotFound)
		}
		return chain, fmt.Errorf("ChainRepository.GetChainByID: %w", result.Error)
	}
	return chain, nil
}

func (c *chainRepository) GetChainByName(ctx context.Context, name string) (model.Chain, error) {
	var chain model.Chain
	result := c.db.WithContext(ctx).First(&chain, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return chain, fmt.Errorf("ChainRepository.GetChainByName: %w", apperrors.ErrChainNotFound)
		}
		return chain, fmt.Errorf("ChainRepository.GetChainByName: %w", result.Error)
	}
	return chain, nil
}

func (c *chainRepository) GetChains(ctx context.Context) ([]model.Chain, error) {
	var chains []model.Chain
	err := c.db.WithContext(ctx).Order("name asc").Find(&chains).Error
	if err != nil {
		return nil, fmt.Errorf("ChainRepository.GetChains: %w", err)
	}
	return chains, nil
}

// UpdateChainByID applies fields, keyed by column name, to the chain.
func (c *chainRepository) UpdateChainByID(ctx context.Context, id string, fields map[string]any) error {
	result := c.db.WithContext(ctx).Model(&model.Chain{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("ChainRepository.UpdateChainByID: %w", apperrors.ErrChainNameAlreadyExists)
		}
		return fmt.Errorf("ChainRepository.UpdateChainByID: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ChainRepository.UpdateChainByID: %w", apperrors.ErrChainNotFound)
	}
	return nil
}

func NewChainRepository(db *gorm.DB) ChainRepository {
	return &chainRepository{
		db: db,
	}
}
