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

type NodeRepository interface {
	CreateNode(ctx context.Context, node model.Node) (model.Node, error)
	// GetNodeByID returns the node with its chain, host location and load balancers loaded.
	GetNodeByID(ctx context.Context, id string) (model.Node, error)
	GetNodes(ctx context.Context) ([]model.Node, error)
	CountHTTPSNodesByHostID(ctx context.Context, hostID string) (int64, error)
	// UpdateNodeByID applies fields, keyed by column name, and replaces the node's load balancers
	// when loadBalancers is not nil. Both happen in one transaction.
	UpdateNodeByID(ctx context.Context, id string, fields map[string]any, loadBalancers *[]model.Host) error
	DeleteNodeByID(ctx context.Context, id string) error
}

type nodeRepository struct {
	db *gorm.DB
}

func (n *nodeRepository) CreateNode(ctx context.Context, node model.Node) (model.Node, error) {
	err := n.db.WithContext(ctx).Omit("Chain", "Host", "LoadBalancers.*").Create(&node).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return node, fmt.Errorf("NodeRepository.CreateNode: %w", apperrors.ErrNodeNameAlreadyExists)
		}
		return node, fmt.Errorf("NodeRepository.CreateNode: %w", err)
	}
	return node, nil
}

func (n *nodeRepository) hydrated(ctx context.Context) *gorm.DB {
	return n.db.WithContext(ctx).
		Preload("Chain").
		Preload("Host.Location").
		Preload("LoadBalancers")
}

func (n *nodeRepository) GetNodeByID(ctx context.Context, id string) (model.Node, error) {
	var node model.Node
	result := n.hydrated(ctx).First(&node, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return node, fmt.Errorf("NodeRepository.GetNodeByID: %w", apperrors.ErrNodeNotFound)
		}
		return node, fmt.Errorf("NodeRepository.GetNodeByID: %w", result.Error)
	}
	return node, nil
}

func (n *nodeRepository) GetNodes(ctx context.Context) ([]model.Node, error) {
	var nodes []model.Node
	err := n.hydrated(ctx).Order("name asc").Find(&nodes).Error
	if err != nil {
		return nil, fmt.Errorf("NodeRepository.GetNodes: %w", err)
	}
	return nodes, nil
}

func (n *nodeRepository) CountHTTPSNodesByHostID(ctx context.Context, hostID string) (int64, error) {
	var count int64
	err := n.db.WithContext(ctx).Model(&model.Node{}).Where("host_id = ? AND url LIKE ?", hostID, "https://%").Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("NodeRepository.CountHTTPSNodesByHostID: %w", err)
	}
	return count, nil
}

func (n *nodeRepository) UpdateNodeByID(ctx context.Context, id string, fields map[string]any, loadBalancers *[]model.Host) error {
	err := n.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			res := tx.Model(&model.Node{}).Where("id = ?", id).Updates(fields)
			if res.Error != nil {
				var pgErr *pgconn.PgError
				if errors.As(res.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
					return apperrors.ErrNodeNameAlreadyExists
				}
				return res.Error
			}
			if res.RowsAffected == 0 {
				return apperrors.ErrNodeNotFound
			}
		}
		if loadBalancers != nil {
			node := model.Node{ID: id}
			return tx.Model(&node).Omit("LoadBalancers.*").Association("LoadBalancers").Replace(loadBalancers)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("NodeRepository.UpdateNodeByID: %w", err)
	}
	return nil
}

func (n *nodeRepository) DeleteNodeByID(ctx context.Context, id string) error {
	err := n.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		node := model.Node{ID: id}
		if err := tx.Model(&node).Association("LoadBalancers").Clear(); err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.Node{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrNodeNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("NodeRepository.DeleteNodeByID: %w", err)
	}
	return nil
}

func NewNodeRepository(db *gorm.DB) NodeRepository {
	return &nodeRepository{
		db: db,
	}
}
