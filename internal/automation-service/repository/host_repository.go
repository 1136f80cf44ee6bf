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

type HostRepository interface {
	CreateHost(ctx context.Context, host model.Host) (model.Host, error)
	GetHostByID(ctx context.Context, id string) (model.Host, error)
	GetHostByName(ctx context.Context, name string) (model.Host, error)
	// GetHosts lists hosts with their location, filtered on the load balancer flag when loadBalancer is not nil.
	GetHosts(ctx context.Context, loadBalancer *bool) ([]model.Host, error)
	GetHostsByIDs(ctx context.Context, ids []string) ([]model.Host, error)
	GetHostsByNames(ctx context.Context, names []string) ([]model.Host, error)
	UpdateHostByID(ctx context.Context, id string, fields map[string]any) error
	DeleteHostByID(ctx context.Context, id string) error
}

type hostRepository struct {
	db *gorm.DB
}

func (h *hostRepository) CreateHost(ctx context.Context, host model.Host) (model.Host, error) {
	err := h.db.WithContext(ctx).Omit("Location").Create(&host).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return host, fmt.Errorf("HostRepository.CreateHost: %w", apperrors.ErrHostNameAlreadyExists)
		}
		return host, fmt.Errorf("HostRepository.CreateHost: %w", err)
	}
	return host, nil
}

func (h *hostRepository) GetHostByID(ctx context.Context, id string) (model.Host, error) {
	var host model.Host
	result := h.db.WithContext(ctx).Preload("Location").First(&host, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return host, fmt.Errorf("HostRepository.GetHostByID: %w", apperrors.ErrHostNotFound)
		}
		return host, fmt.Errorf("HostRepository.GetHostByID: %w", result.Error)
	}
	return host, nil
}

func (h *hostRepository) GetHostByName(ctx context.Context, name string) (model.Host, error) {
	var host model.Host
	result := h.db.WithContext(ctx).First(&host, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return host, fmt.Errorf("HostRepository.GetHostByName: %w", apperrors.ErrHostNotFound)
		}
		return host, fmt.Errorf("HostRepository.GetHostByName: %w", result.Error)
	}
	return host, nil
}

func (h *hostRepository) GetHosts(ctx context.Context, loadBalancer *bool) ([]model.Host, error) {
	query := h.db.WithContext(ctx).Preload("Location")
	if loadBalancer != nil {
		query = query.Where("load_balancer = ?", *loadBalancer)
	}
	var hosts []model.Host
	err := query.Order("name asc").Find(&hosts).Error
	if err != nil {
		return nil, fmt.Errorf("HostRepository.GetHosts: %w", err)
	}
	return hosts, nil
}

func (h *hostRepository) GetHostsByIDs(ctx context.Context, ids []string) ([]model.Host, error) {
	var hosts []model.Host
	err := h.db.WithContext(ctx).Where("id IN ?", ids).Find(&hosts).Error
	if err != nil {
		return nil, fmt.Errorf("HostRepository.GetHostsByIDs: %w", err)
	}
	return hosts, nil
}

func (h *hostRepository) GetHostsByNames(ctx context.Context, names []string) ([]model.Host, error) {
	var hosts []model.Host
	err := h.db.WithContext(ctx).Where("name IN ?", names).Find(&hosts).Error
	if err != nil {
		return nil, fmt.Errorf("HostRepository.GetHostsByNames: %w", err)
	}
	return hosts, nil
}

// UpdateHostByID applies fields, keyed by column name, to the host.
func (h *hostRepository) UpdateHostByID(ctx context.Context, id string, fields map[string]any) error {
	result := h.db.WithContext(ctx).Model(&model.Host{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("HostRepository.UpdateHostByID: %w", apperrors.ErrHostNameAlreadyExists)
		}
		return fmt.Errorf("HostRepository.UpdateHostByID: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("HostRepository.UpdateHostByID: %w", apperrors.ErrHostNotFound)
	}
	return nil
}

func (h *hostRepository) DeleteHostByID(ctx context.Context, id string) error {
	result := h.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Host{})
	if result.Error != nil {
		return fmt.Errorf("HostRepository.DeleteHostByID: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("HostRepository.DeleteHostByID: %w", apperrors.ErrHostNotFound)
	}
	return nil
}

func NewHostRepository(db *gorm.DB) HostRepository {
	return &hostRepository{
		db: db,
	}
}
