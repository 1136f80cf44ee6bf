package rotation

import (
	"VCS_Node_Automation/internal/automation-service/alert"
	apperrors "VCS_Node_Automation/internal/automation-service/errors"
	"VCS_Node_Automation/internal/automation-service/loadbalancer"
	"VCS_Node_Automation/internal/automation-service/model"
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const statsPort = 8050

// Controller coordinates rotation changes for one backend/server pair across every load
// balancer replica of a RotationTarget. It holds no state between calls.
type Controller interface {
	// GetStatus reports online or offline when all replicas agree and error when they do not.
	GetStatus(ctx context.Context, target model.RotationTarget) (model.LoadBalancerStatus, error)
	// GetCount returns the number of online servers in the backend, or model.CountMismatch
	// when the replicas report different numbers.
	GetCount(ctx context.Context, target model.RotationTarget) (int, error)
	Enable(ctx context.Context, target model.RotationTarget) (bool, error)
	// Disable refuses to remove the last online server or an already offline one unless the
	// target is a manual override.
	Disable(ctx context.Context, target model.RotationTarget) (bool, error)
	GetStatusMessage(target model.RotationTarget) string
}

type controller struct {
	client              loadbalancer.Client
	alert               alert.Channel
	logger              *zap.Logger
	destinationOverride string
}

func (c *controller) destination(lb model.Host) string {
	if c.destinationOverride != "" {
		return c.destinationOverride
	}
	return lb.Address()
}

func (c *controller) GetStatus(ctx context.Context, target model.RotationTarget) (model.LoadBalancerStatus, error) {
	if len(target.LoadBalancers) == 0 {
		return "", fmt.Errorf("RotationController.GetStatus: %w", apperrors.ErrNoLoadBalancers)
	}
	online := 0
	for _, lb := range target.LoadBalancers {
		destination := c.destination(lb)
		ok, err := c.client.GetStatus(ctx, target.Backend, target.Server, destination)
		if err != nil {
			err = apperrors.NewExternalCallError("Get status", target.Backend, target.Server, destination, err)
			return "", fmt.Errorf("RotationController.GetStatus: %w", err)
		}
		if ok {
			online++
		}
	}
	switch online {
	case len(target.LoadBalancers):
		return model.LoadBalancerStatusOnline, nil
	case 0:
		return model.LoadBalancerStatusOffline, nil
	default:
		c.logger.Warn("load balancers disagree on server status",
			zap.String("backend", target.Backend), zap.String("server", target.Server),
			zap.Int("online", online), zap.Int("replicas", len(target.LoadBalancers)))
		return model.LoadBalancerStatusError, nil
	}
}

func (c *controller) GetCount(ctx context.Context, target model.RotationTarget) (int, error) {
	if len(target.LoadBalancers) == 0 {
		return 0, fmt.Errorf("RotationController.GetCount: %w", apperrors.ErrNoLoadBalancers)
	}
	counts := make([]int, 0, len(target.LoadBalancers))
	for _, lb := range target.LoadBalancers {
		destination := c.destination(lb)
		count, err := c.client.GetCount(ctx, target.Backend, destination)
		if err != nil {
			err = apperrors.NewExternalCallError("Get count", target.Backend, "", destination, err)
			return 0, fmt.Errorf("RotationController.GetCount: %w", err)
		}
		counts = append(counts, count)
	}
	for _, count := range counts[1:] {
		if count != counts[0] {
			c.logger.Warn("load balancers disagree on server count",
				zap.String("backend", target.Backend), zap.Ints("counts", counts))
			return model.CountMismatch, nil
		}
	}
	return counts[0], nil
}

func (c *controller) Enable(ctx context.Context, target model.RotationTarget) (bool, error) {
	if len(target.LoadBalancers) == 0 {
		return false, fmt.Errorf("RotationController.Enable: %w", apperrors.ErrNoLoadBalancers)
	}
	ok, err := c.fanOut(ctx, target, "Enable", c.client.Enable)
	if err != nil {
		c.alert.SendError(ctx, target.Backend, fmt.Sprintf("Could not add %s/%s to rotation. %v", target.Backend, target.Server, err))
		return false, fmt.Errorf("RotationController.Enable: %w", err)
	}
	c.logger.Info("enabled server", zap.String("backend", target.Backend), zap.String("server", target.Server), zap.Bool("success", ok))
	return ok, nil
}

func (c *controller) Disable(ctx context.Context, target model.RotationTarget) (bool, error) {
	if len(target.LoadBalancers) == 0 {
		return false, fmt.Errorf("RotationController.Disable: %w", apperrors.ErrNoLoadBalancers)
	}
	if !target.Manual {
		if err := c.checkDisable(ctx, target); err != nil {
			c.alert.SendError(ctx, target.Backend, fmt.Sprintf("Could not remove %s/%s from rotation. %v", target.Backend, target.Server, err))
			return false, fmt.Errorf("RotationController.Disable: %w", err)
		}
	}
	ok, err := c.fanOut(ctx, target, "Disable", c.client.Disable)
	if err != nil {
		c.alert.SendError(ctx, target.Backend, fmt.Sprintf("Could not remove %s/%s from rotation. %v", target.Backend, target.Server, err))
		return false, fmt.Errorf("RotationController.Disable: %w", err)
	}
	c.logger.Info("disabled server",
		zap.String("backend", target.Backend), zap.String("server", target.Server),
		zap.Bool("manual", target.Manual), zap.Bool("success", ok))
	return ok, nil
}

func (c *controller) checkDisable(ctx context.Context, target model.RotationTarget) error {
	count, err := c.GetCount(ctx, target)
	if err != nil {
		return err
	}
	switch {
	case count == model.CountMismatch:
		return fmt.Errorf("%w: load balancers disagree on the number of online servers. Manual intervention required", apperrors.ErrSafetyViolation)
	case count == 0:
		return fmt.Errorf("%w: no servers online. Manual intervention required", apperrors.ErrSafetyViolation)
	case count == 1:
		return fmt.Errorf("%w: only one server online. Manual intervention required", apperrors.ErrSafetyViolation)
	}

	status, err := c.GetStatus(ctx, target)
	if err != nil {
		return err
	}
	if status == model.LoadBalancerStatusOffline {
		return apperrors.ErrAlreadyOffline
	}
	return nil
}

type replicaCommand func(ctx context.Context, backend, server, destination string) (bool, error)

// fanOut runs command against every replica concurrently and waits for all of them. Replicas
// that already applied the change are not rolled back when a sibling fails.
func (c *controller) fanOut(ctx context.Context, target model.RotationTarget, op string, command replicaCommand) (bool, error) {
	var rejected atomic.Int32
	var g errgroup.Group
	for _, lb := range target.LoadBalancers {
		destination := c.destination(lb)
		g.Go(func() error {
			ok, err := command(ctx, target.Backend, target.Server, destination)
			if err != nil {
				c.logger.Error("load balancer call failed",
					zap.String("op", op), zap.String("backend", target.Backend),
					zap.String("server", target.Server), zap.String("destination", destination), zap.Error(err))
				return apperrors.NewExternalCallError(op, target.Backend, target.Server, destination, err)
			}
			if !ok {
				rejected.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}
	return rejected.Load() == 0, nil
}

func (c *controller) GetStatusMessage(target model.RotationTarget) string {
	var sb strings.Builder
	sb.WriteString("HAProxy Status\n")
	for _, lb := range target.LoadBalancers {
		fmt.Fprintf(&sb, "http://%s:%d/stats/;up?scope=%s\n", c.destination(lb), statsPort, target.Backend)
	}
	return sb.String()
}

// NewRotationController returns a Controller that sends every replica call to
// destinationOverride instead of the replica's own address when it is not empty.
func NewRotationController(client loadbalancer.Client, alert alert.Channel, logger *zap.Logger, destinationOverride string) Controller {
	return &controller{
		client:              client,
		alert:               alert,
		logger:              logger,
		destinationOverride: destinationOverride,
	}
}
