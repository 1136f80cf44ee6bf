package service

import (
	"VCS_Node_Automation/internal/automation-service/model"
	"VCS_Node_Automation/internal/automation-service/notifier"
	"VCS_Node_Automation/internal/automation-service/repository"
	"context"
	"fmt"
)

// TopologyService manages the reference data nodes and hosts point at.
type TopologyService interface {
	CreateLocation(ctx context.Context, name string) (model.Location, error)
	GetLocations(ctx context.Context) ([]model.Location, error)
	DeleteLocation(ctx context.Context, id string) error
	CreateChain(ctx context.Context, input model.ChainInput) (model.Chain, error)
	GetChains(ctx context.Context) ([]model.Chain, error)
	UpdateChain(ctx context.Context, update model.ChainUpdate) (model.Chain, error)
}

type topologyService struct {
	locationRepository repository.LocationRepository
	chainRepository    repository.ChainRepository
	notifier           notifier.Notifier
}

func (t *topologyService) CreateLocation(ctx context.Context, name string) (model.Location, error) {
	location, err := t.locationRepository.CreateLocation(ctx, model.Location{Name: name})
	if err != nil {
		return model.Location{}, fmt.Errorf("TopologyService.CreateLocation: %w", err)
	}
	return location, nil
}

func (t *topologyService) GetLocations(ctx context.Context) ([]model.Location, error) {
	locations, err := t.locationRepository.GetLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("TopologyService.GetLocations: %w", err)
	}
	return locations, nil
}

func (t *topologyService) DeleteLocation(ctx context.Context, id string) error {
	if err := t.locationRepository.DeleteLocationByID(ctx, id); err != nil {
		return fmt.Errorf("TopologyService.DeleteLocation: %w", err)
	}
	return nil
}

func (t *topologyService) CreateChain(ctx context.Context, input model.ChainInput) (model.Chain, error) {
	chain, err := t.chainRepository.CreateChain(ctx, model.Chain{
		Name:      input.Name,
		Type:      input.Type,
		ChainID:   input.ChainID,
		Allowance: input.Allowance,
	})
	if err != nil {
		return model.Chain{}, fmt.Errorf("TopologyService.CreateChain: %w", err)
	}
	return chain, nil
}

func (t *topologyService) GetChains(ctx context.Context) ([]model.Chain, error) {
	chains, err := t.chainRepository.GetChains(ctx)
	if err != nil {
		return nil, fmt.Errorf("TopologyService.GetChains: %w", err)
	}
	return chains, nil
}

// UpdateChain restarts the monitor since it reads chain allowances at startup.
func (t *topologyService) UpdateChain(ctx context.Context, update model.ChainUpdate) (model.Chain, error) {
	fields := make(map[string]any)
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Type != nil {
		fields["type"] = *update.Type
	}
	if update.ChainID != nil {
		fields["chain_id"] = *update.ChainID
	}
	if update.Allowance != nil {
		fields["allowance"] = *update.Allowance
	}
	if len(fields) > 0 {
		if err := t.chainRepository.UpdateChainByID(ctx, update.ID, fields); err != nil {
			return model.Chain{}, fmt.Errorf("TopologyService.UpdateChain: %w", err)
		}
	}
	chain, err := t.chainRepository.GetChainByID(ctx, update.ID)
	if err != nil {
		return model.Chain{}, fmt.Errorf("TopologyService.UpdateChain: %w", err)
	}
	if len(fields) > 0 {
		t.notifier.Restart()
	}
	return chain, nil
}

func NewTopologyService(locationRepository repository.LocationRepository, chainRepository repository.ChainRepository, notifier notifier.Notifier) TopologyService {
	return &topologyService{
		locationRepository: locationRepository,
		chainRepository:    chainRepository,
		notifier:           notifier,
	}
}
