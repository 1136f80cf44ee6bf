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

type LocationRepository interface {
	CreateLocation(ctx context.Context, location model.Location) (model.Location, error)
	GetLocationByID(ctx context.Context, id string) (model.Location, error)
	GetLocationByName(ctx context.Context, name string) (model.Location, error)
	GetLocations(ctx context.Context) ([]model.Location, error)
	DeleteLocationByID(ctx context.Context, id string) error
}

type locationRepository struct {
	db *gorm.DB
}

func (l *locationRepository) CreateLocation(ctx context.Context, location model.Location) (model.Location, error) {
	err := l.db.WithContext(ctx).Create(&location).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return location, fmt.Errorf("LocationRepository.CreateLocation: %w", apperrors.ErrLocationNameAlreadyExists)
		}
		return location, fmt.Errorf("LocationRepository.CreateLocation: %w", err)
	}
	return location, nil
}

func (l *locationRepository) GetLocationByID(ctx context.Context, id string) (model.Location, error) {
	var location model.Location
	result := l.db.WithContext(ctx).First(&location, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return location, fmt.Errorf("LocationRepository.GetLocationByID: %w", apperrors.ErrLocationNotFound)
		}
		return location, fmt.Errorf("LocationRepository.GetLocationByID: %w", result.Error)
	}
	return location, nil
}

func (l *locationRepository) GetLocationByName(ctx context.Context, name string) (model.Location, error) {
	var location model.Location
	result := l.db.WithContext(ctx).First(&location, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return location, fmt.Errorf("LocationRepository.GetLocationByName: %w", apperrors.ErrLocationNotFound)
		}
		return location, fmt.Errorf("LocationRepository.GetLocationByName: %w", result.Error)
	}
	return location, nil
}

func (l *locationRepository) GetLocations(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	err := l.db.WithContext(ctx).Order("name asc").Find(&locations).Error
	if err != nil {
		return nil, fmt.Errorf("LocationRepository.GetLocations: %w", err)
	}
	return locations, nil
}

func (l *locationRepository) DeleteLocationByID(ctx context.Context, id string) error {
	result := l.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Location{})
	if result.Error != nil {
		return fmt.Errorf("LocationRepository.DeleteLocationByID: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("LocationRepository.DeleteLocationByID: %w", apperrors.ErrLocationNotFound)
	}
	return nil
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{
		db: db,
	}
}
