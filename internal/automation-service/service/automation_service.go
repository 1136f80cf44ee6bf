package service

import (
	"VCS_Node_Automation/internal/automation-service/alert"
	apperrors "VCS_Node_Automation/internal/automation-service/errors"
	"VCS_Node_Automation/internal/automation-service/model"
	"VCS_Node_Automation/internal/automation-service/notifier"
	"VCS_Node_Automation/internal/automation-service/repository"
	"VCS_Node_Automation/internal/automation-service/rotation"
	"VCS_Node_Automation/internal/automation-service/webhook"
	"VCS_Node_Automation/pkg/mail"
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AutomationService interface {
	CreateHost(ctx context.Context, input model.HostInput, restart bool) (model.Host, error)
	CreateHostsCSV(ctx context.Context, rows []model.HostCSVInput) ([]model.Host, error)
	UpdateHost(ctx context.Context, update model.HostUpdate, restart bool) (model.Host, error)
	DeleteHost(ctx context.Context, id string, restart bool) (model.Host, error)
	GetHosts(ctx context.Context, loadBalancer *bool) ([]model.Host, error)

	CreateNode(ctx context.Context, input model.NodeInput, restart bool) (model.Node, error)
	CreateNodesCSV(ctx context.Context, rows []model.NodeCSVInput) ([]model.Node, error)
	UpdateNode(ctx context.Context, update model.NodeUpdate, restart bool) (model.Node, error)
	DeleteNode(ctx context.Context, id string, restart bool) (model.Node, error)
	GetNode(ctx context.Context, id string) (model.Node, error)
	GetNodes(ctx context.Context) ([]model.Node, error)

	AddToRotation(ctx context.Context, id string) (bool, error)
	RemoveFromRotation(ctx context.Context, id string) (bool, error)
	GetHaProxyStatus(ctx context.Context, id string) (model.HaProxyStatus, error)
	GetServerCount(ctx context.Context, id string) (int, error)
	GetHaProxyMessage(ctx context.Context, id string) (string, error)
	CheckValidHaProxy(ctx context.Context, backend string, server string, loadBalancerIDs []string) (bool, error)
	GetRotationEvents(ctx context.Context, nodeID string, limit int) ([]model.RotationEvent, error)
	ReportRotationStatus(ctx context.Context, mail string) error

	MuteMonitor(ctx context.Context, id string) (model.Node, error)
	UnmuteMonitor(ctx context.Context, id string) (model.Node, error)
}

type automationService struct {
	nodeRepository          repository.NodeRepository
	hostRepository          repository.HostRepository
	chainRepository         repository.ChainRepository
	locationRepository      repository.LocationRepository
	rotationEventRepository repository.RotationEventRepository
	rotationController      rotation.Controller
	notifier                notifier.Notifier
	webhookRegistrar        webhook.Registrar
	alert                   alert.Channel
	mailSender              mail.Sender
	logger                  *zap.Logger
}

func (a *automationService) restart(restart bool) {
	if restart {
		a.notifier.Restart()
	}
}

func (a *automationService) CreateHost(ctx context.Context, input model.HostInput, restart bool) (model.Host, error) {
	if input.IP == "" && input.FQDN == "" {
		return model.Host{}, fmt.Errorf("AutomationService.CreateHost: %w", apperrors.ErrHostAddressEmpty)
	}
	created, err := a.hostRepository.CreateHost(ctx, model.Host{
		Name:         input.Name,
		LocationID:   input.LocationID,
		LoadBalancer: input.LoadBalancer,
		IP:           input.IP,
		FQDN:         input.FQDN,
	})
	if err != nil {
		return model.Host{}, fmt.Errorf("AutomationService.CreateHost: %w", err)
	}
	host, err := a.hostRepository.GetHostByID(ctx, created.ID)
	if err != nil {
		return model.Host{}, fmt.Errorf("AutomationService.CreateHost: %w", err)
	}
	a.restart(restart)
	return host, nil
}

func (a *automationService) CreateHostsCSV(ctx context.Context, rows []model.HostCSVInput) ([]model.Host, error) {
	hosts := make([]model.Host, 0, len(rows))
	// Rows already persisted change the topology even when a later row fails.
	defer func() {
		a.restart(len(hosts) > 0)
	}()
	for _, row := range rows {
		location, err := a.locationRepository.GetLocationByName(ctx, row.Location)
		if err != nil {
			return hosts, fmt.Errorf("AutomationService.CreateHostsCSV: %w", err)
		}
		host, err := a.CreateHost(ctx, model.HostInput{
			Name:         row.Name,
			LocationID:   location.ID,
			LoadBalancer: row.LoadBalancer,
			IP:           row.IP,
			FQDN:         row.FQDN,
		}, false)
		if err != nil {
			return hosts, fmt.Errorf("AutomationService.CreateHostsCSV: %w", err)
		}
		hosts = append(hosts, host)
	}
	return hosts, nil
}

// checkHostAddress refuses a patch that would leave the host without an address, or without
// the FQDN its https nodes are served from.
func (a *automationService) checkHostAddress(ctx context.Context, update model.HostUpdate) error {
	existing, err := a.hostRepository.GetHostByID(ctx, update.ID)
	if err != nil {
		return err
	}
	ip, fqdn := existing.IP, existing.FQDN
	if update.IP != nil {
		ip = *update.IP
	}
	if update.FQDN != nil {
		fqdn = *update.FQDN
	}
	if ip == "" && fqdn == "" {
		return apperrors.ErrHostAddressEmpty
	}
	if fqdn == "" && existing.FQDN != "" {
		count, err := a.nodeRepository.CountHTTPSNodesByHostID(ctx, update.ID)
		if err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrHTTPSRequiresFQDN
		}
	}
	return nil
}

func (a *automationService) UpdateHost(ctx context.Context, update model.HostUpdate, restart bool) (model.Host, error) {
	if update.IP != nil || update.FQDN != nil {
		if err := a.checkHostAddress(ctx, update); err != nil {
			return model.Host{}, fmt.Errorf("AutomationService.UpdateHost: %w", err)
		}
	}
	fields := make(map[string]any)
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.LocationID != nil {
		fields["location_id"] = *update.LocationID
	}
	if update.LoadBalancer != nil {
		fields["load_balancer"] = *update.LoadBalancer
	}
	if update.IP != nil {
		fields["ip"] = *update.IP
	}
	if update.FQDN != nil {
		fields["fqdn"] = *update.FQDN
	}
	if len(fields) > 0 {
		if err := a.hostRepository.UpdateHostByID(ctx, update.ID, fields); err != nil {
			return model.Host{}, fmt.Errorf("AutomationService.UpdateHost: %w", err)
		}
	}
	host, err := a.hostRepository.GetHostByID(ctx, update.ID)
	if err != nil {
		return model.Host{}, fmt.Errorf("AutomationService.UpdateHost: %w", err)
	}
	a.restart(restart)
	return host, nil
}

func (a *automationService) DeleteHost(ctx context.Context, id string, restart bool) (model.Host, error) {
	host, err := a.hostRepository.GetHostByID(ctx, id)
	if err != nil {
		return model.Host{}, fmt.Errorf("AutomationService.DeleteHost: %w", err)
	}
	if err = a.hostRepository.DeleteHostByID(ctx, id); err != nil {
		return model.Host{}, fmt.Errorf("AutomationService.DeleteHost: %w", err)
	}
	a.restart(restart)
	return host, nil
}

func (a *automationService) GetHosts(ctx context.Context, loadBalancer *bool) ([]model.Host, error) {
	hosts, err := a.hostRepository.GetHosts(ctx, loadBalancer)
	if err != nil {
		return nil, fmt.Errorf("AutomationService.GetHosts: %w", err)
	}
	return hosts, nil
}

func (a *automationService) resolveLoadBalancers(ctx context.Context, ids []string) ([]model.Host, error) {
	ids = uniqueStrings(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	hosts, err := a.hostRepository.GetHostsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(hosts) != len(ids) {
		return nil, apperrors.ErrHostNotFound
	}
	return hosts, nil
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	unique := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		unique = append(unique, v)
	}
	return unique
}

func nodeURL(https bool, host model.Host, port int) string {
	scheme := "http"
	if https {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, net.JoinHostPort(host.Address(), strconv.Itoa(port)))
}

func (a *automationService) CreateNode(ctx context.Context, input model.NodeInput, restart bool) (model.Node, error) {
	host, err := a.hostRepository.GetHostByID(ctx, input.HostID)
	if err != nil {
		return model.Node{}, fmt.Errorf("AutomationService.CreateNode: %w", err)
	}
	if input.HTTPS && host.FQDN == "" {
		return model.Node{}, fmt.Errorf("AutomationService.CreateNode: %w", apperrors.ErrHTTPSRequiresFQDN)
	}
	loadBalancers, err := a.resolveLoadBalancers(ctx, input.LoadBalancerIDs)
	if err != nil {
		return model.Node{}, fmt.Errorf("AutomationService.CreateNode: %w", err)
	}

	created, err := a.nodeRepository.CreateNode(ctx, model.Node{
		Name:          input.Name,
		ChainID:       input.ChainID,
		HostID:        input.HostID,
		Port:          input.Port,
		URL:           nodeURL(input.HTTPS, host, input.Port),
		Backend:       input.Backend,
		Server:        input.Server,
		Frontend:      input.Frontend,
		LoadBalancers: loadBalancers,
		HaProxy:       input.HaProxy,
		Automation:    input.Automation,
		BasicAuth:     input.BasicAuth,
	})
	if err != nil {
		return model.Node{}, fmt.Errorf("AutomationService.CreateNode: %w", err)
	}

	node, err := a.initializeNode(ctx, created.ID)
	if err != nil {
		a.rollbackNode(ctx, created.ID)
		return model.Node{}, fmt.Errorf("AutomationService.CreateNode: %w", err)
	}
	a.restart(restart)
	return node, nil
}

func (a *automationService) initializeNode(ctx context.Context, id string) (model.Node, error) {
	node, err := a.nodeRepository.GetNodeByID(ctx, id)
	if err != nil {
		return model.Node{}, err
	}
	if node.Frontend == "" {
		if err = a.webhookRegistrar.RegisterForNode(ctx, node); err != nil {
			return model.Node{}, err
		}
	}
	return node, nil
}

// rollbackNode deletes a partially created node. It must run even when the request was cancelled.
func (a *automationService) rollbackNode(ctx context.Context, id string) {
	if err := a.nodeRepository.DeleteNodeByID(context.WithoutCancel(ctx), id); err != nil {
		a.logger.Error("failed to roll back node creation", zap.String("node_id", id), zap.Error(err))
		return
	}
	a.logger.Warn("rolled back node creation", zap.String("node_id", id))
}

func (a *automationService) CreateNodesCSV(ctx context.Context, rows []model.NodeCSVInput) ([]model.Node, error) {
	nodes := make([]model.Node, 0, len(rows))
	defer func() {
		a.restart(len(nodes) > 0)
	}()
	for _, row := range rows {
		input, err := a.resolveNodeRow(ctx, row)
		if err != nil {
			return nodes, fmt.Errorf("AutomationService.CreateNodesCSV: %w", err)
		}
		node, err := a.CreateNode(ctx, input, false)
		if err != nil {
			return nodes, fmt.Errorf("AutomationService.CreateNodesCSV: %w", err)
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func (a *automationService) resolveNodeRow(ctx context.Context, row model.NodeCSVInput) (model.NodeInput, error) {
	chain, err := a.chainRepository.GetChainByName(ctx, row.Chain)
	if err != nil {
		return model.NodeInput{}, err
	}
	host, err := a.hostRepository.GetHostByName(ctx, row.Host)
	if err != nil {
		return model.NodeInput{}, err
	}
	var loadBalancerIDs []string
	if names := uniqueStrings(row.LoadBalancers); len(names) > 0 {
		loadBalancers, err := a.hostRepository.GetHostsByNames(ctx, names)
		if err != nil {
			return model.NodeInput{}, err
		}
		if len(loadBalancers) != len(names) {
			return model.NodeInput{}, apperrors.ErrHostNotFound
		}
		for _, lb := range loadBalancers {
			loadBalancerIDs = append(loadBalancerIDs, lb.ID)
		}
	}
	return model.NodeInput{
		HTTPS:           row.HTTPS,
		ChainID:         chain.ID,
		HostID:          host.ID,
		Name:            row.Name,
		Port:            row.Port,
		LoadBalancerIDs: loadBalancerIDs,
		Automation:      row.Automation,
		HaProxy:         row.HaProxy,
		Backend:         row.Backend,
		Frontend:        row.Frontend,
		Server:          row.Server,
	}, nil
}

// rewritePort replaces the port of rawURL. URLs whose port segment cannot be parsed fall back
// to replacing the first occurrence of the old port digits.
func (a *automationService) rewritePort(rawURL string, oldPort, newPort int) string {
	u, err := url.Parse(rawURL)
	if err == nil && u.Host != "" && u.Port() == strconv.Itoa(oldPort) {
		u.Host = net.JoinHostPort(u.Hostname(), strconv.Itoa(newPort))
		return u.String()
	}
	rewritten := strings.Replace(rawURL, strconv.Itoa(oldPort), strconv.Itoa(newPort), 1)
	a.logger.Warn("node url port does not match stored port, substituted port digits",
		zap.String("url", rawURL),
		zap.String("rewritten_url", rewritten),
		zap.Int("old_port", oldPort),
		zap.Int("new_port", newPort))
	return rewritten
}

func (a *automationService) UpdateNode(ctx context.Context, update model.NodeUpdate, restart bool) (model.Node, error) {
	existing, err := a.nodeRepository.GetNodeByID(ctx, update.ID)
	if err != nil {
		return model.Node{}, fmt.Errorf("AutomationService.UpdateNode: %w", err)
	}

	fields := make(map[string]any)
	setString := func(column string, v *string) {
		if v != nil {
			fields[column] = *v
		}
	}
	setBool := func(column string, v *bool) {
		if v != nil {
			fields[column] = *v
		}
	}
	setString("chain_id", update.ChainID)
	setString("host_id", update.HostID)
	setString("name", update.Name)
	setString("url", update.URL)
	setString("backend", update.Backend)
	setString("frontend", update.Frontend)
	setString("server", update.Server)
	setString("basic_auth", update.BasicAuth)
	setBool("automation", update.Automation)
	setBool("ha_proxy", update.HaProxy)
	if update.Port != nil {
		fields["port"] = *update.Port
		if update.URL == nil && *update.Port != existing.Port {
			fields["url"] = a.rewritePort(existing.URL, existing.Port, *update.Port)
		}
	}

	var loadBalancers *[]model.Host
	if update.LoadBalancerIDs != nil {
		hosts, err := a.resolveLoadBalancers(ctx, *update.LoadBalancerIDs)
		if err != nil {
			return model.Node{}, fmt.Errorf("AutomationService.UpdateNode: %w", err)
		}
		if hosts == nil {
			hosts = []model.Host{}
		}
		loadBalancers = &hosts
	}

	if len(fields) > 0 || loadBalancers != nil {
		if err = a.nodeRepository.UpdateNodeByID(ctx, update.ID, fields, loadBalancers); err != nil {
			return model.Node{}, fmt.Errorf("AutomationService.UpdateNode: %w", err)
		}
	}
	node, err := a.nodeRepository.GetNodeByID(ctx, update.ID)
	if err != nil {
		return model.Node{}, fmt.Errorf("AutomationService.UpdateNode: %w", err)
	}
	a.restart(restart)
	return node, nil
}

func (a *automationService) DeleteNode(ctx context.Context, id string, restart bool) (model.Node, error) {
	node, err := a.nodeRepository.GetNodeByID(ctx, id)
	if err != nil {
		return model.Node{}, fmt.Errorf("AutomationService.DeleteNode: %w", err)
	}
	if err = a.nodeRepository.DeleteNodeByID(ctx, id); err != nil {
		return model.Node{}, fmt.Errorf("AutomationService.DeleteNode: %w", err)
	}
	a.restart(restart)
	return node, nil
}

func (a *automationService) GetNode(ctx context.Context, id string) (model.Node, error) {
	node, err := a.nodeRepository.GetNodeByID(ctx, id)
	if err != nil {
		return model.Node{}, fmt.Errorf("AutomationService.GetNode: %w", err)
	}
	return node, nil
}

func (a *automationService) GetNodes(ctx context.Context) ([]model.Node, error) {
	nodes, err := a.nodeRepository.GetNodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("AutomationService.GetNodes: %w", err)
	}
	return nodes, nil
}

func (a *automationService) AddToRotation(ctx context.Context, id string) (bool, error) {
	node, err := a.nodeRepository.GetNodeByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("AutomationService.AddToRotation: %w", err)
	}
	ok, err := a.rotationController.Enable(ctx, node.RotationTarget(false))
	a.recordRotationEvent(ctx, node, model.RotationActionEnable, false, ok, err)
	if err != nil {
		return false, fmt.Errorf("AutomationService.AddToRotation: %w", err)
	}
	return a.alert.SendInfo(ctx, rotationAlert(node, "Added to", "added to", ok)), nil
}

func (a *automationService) RemoveFromRotation(ctx context.Context, id string) (bool, error) {
	node, err := a.nodeRepository.GetNodeByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("AutomationService.RemoveFromRotation: %w", err)
	}
	ok, err := a.rotationController.Disable(ctx, node.RotationTarget(true))
	a.recordRotationEvent(ctx, node, model.RotationActionDisable, true, ok, err)
	if err != nil {
		return false, fmt.Errorf("AutomationService.RemoveFromRotation: %w", err)
	}
	return a.alert.SendInfo(ctx, rotationAlert(node, "Removed from", "removed from", ok)), nil
}

func rotationAlert(node model.Node, titleAction, messageAction string, ok bool) alert.InfoAlert {
	outcome := "Success"
	if !ok {
		outcome = "Failed"
	}
	return alert.InfoAlert{
		Title:    fmt.Sprintf("[Manually %s Rotation] - %s", titleAction, outcome),
		Message:  fmt.Sprintf("%s/%s/%s %s %s.", node.Host.Name, node.Chain.Name, node.Server, messageAction, node.Backend),
		Chain:    node.Chain.Name,
		Location: node.Host.Location.Name,
	}
}

func (a *automationService) recordRotationEvent(ctx context.Context, node model.Node, action string, manual bool, ok bool, rotationErr error) {
	event := model.RotationEvent{
		ID:        uuid.NewString(),
		NodeID:    node.ID,
		NodeName:  node.Name,
		Backend:   node.Backend,
		Server:    node.Server,
		Action:    action,
		Manual:    manual,
		Success:   ok && rotationErr == nil,
		Timestamp: time.Now().UTC(),
	}
	if rotationErr != nil {
		event.Message = rotationErr.Error()
	}
	if err := a.rotationEventRepository.CreateRotationEvent(context.WithoutCancel(ctx), event); err != nil {
		a.logger.Error("failed to record rotation event", zap.String("node_id", node.ID), zap.Error(err))
	}
}

func (a *automationService) GetHaProxyStatus(ctx context.Context, id string) (model.HaProxyStatus, error) {
	node, err := a.nodeRepository.GetNodeByID(ctx, id)
	if err != nil {
		return model.HaProxyStatusNotManaged, fmt.Errorf("AutomationService.GetHaProxyStatus: %w", err)
	}
	if !node.HaProxy {
		return model.HaProxyStatusNotManaged, nil
	}
	status, err := a.rotationController.GetStatus(ctx, node.RotationTarget(false))
	if err != nil {
		return model.HaProxyStatusNotManaged, fmt.Errorf("AutomationService.GetHaProxyStatus: %w", err)
	}
	if status == model.LoadBalancerStatusOnline {
		return model.HaProxyStatusHealthy, nil
	}
	return model.HaProxyStatusUnhealthy, nil
}

func (a *automationService) GetServerCount(ctx context.Context, id string) (int, error) {
	node, err := a.nodeRepository.GetNodeByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("AutomationService.GetServerCount: %w", err)
	}
	count, err := a.rotationController.GetCount(ctx, node.RotationTarget(false))
	if err != nil {
		return 0, fmt.Errorf("AutomationService.GetServerCount: %w", err)
	}
	return count, nil
}

func (a *automationService) GetHaProxyMessage(ctx context.Context, id string) (string, error) {
	node, err := a.nodeRepository.GetNodeByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("AutomationService.GetHaProxyMessage: %w", err)
	}
	return a.rotationController.GetStatusMessage(node.RotationTarget(false)), nil
}

// CheckValidHaProxy reports whether every given load balancer knows the backend/server pair.
func (a *automationService) CheckValidHaProxy(ctx context.Context, backend string, server string, loadBalancerIDs []string) (bool, error) {
	loadBalancers, err := a.resolveLoadBalancers(ctx, loadBalancerIDs)
	if err != nil {
		return false, fmt.Errorf("AutomationService.CheckValidHaProxy: %w", err)
	}
	_, err = a.rotationController.GetStatus(ctx, model.RotationTarget{
		Backend:       backend,
		Server:        server,
		LoadBalancers: loadBalancers,
	})
	if err != nil {
		var callErr *apperrors.ExternalCallError
		if errors.As(err, &callErr) {
			a.logger.Info("load balancer rejected backend/server pair",
				zap.String("backend", backend), zap.String("server", server),
				zap.String("destination", callErr.Destination), zap.Error(err))
			return false, nil
		}
		return false, fmt.Errorf("AutomationService.CheckValidHaProxy: %w", err)
	}
	return true, nil
}

func (a *automationService) GetRotationEvents(ctx context.Context, nodeID string, limit int) ([]model.RotationEvent, error) {
	events, err := a.rotationEventRepository.GetRotationEvents(ctx, nodeID, limit)
	if err != nil {
		return nil, fmt.Errorf("AutomationService.GetRotationEvents: %w", err)
	}
	return events, nil
}

func (a *automationService) setMuted(ctx context.Context, id string, muted bool) (model.Node, error) {
	if err := a.nodeRepository.UpdateNodeByID(ctx, id, map[string]any{"muted": muted}, nil); err != nil {
		return model.Node{}, err
	}
	node, err := a.nodeRepository.GetNodeByID(ctx, id)
	if err != nil {
		return model.Node{}, err
	}
	a.restart(true)
	return node, nil
}

func (a *automationService) MuteMonitor(ctx context.Context, id string) (model.Node, error) {
	node, err := a.setMuted(ctx, id, true)
	if err != nil {
		return model.Node{}, fmt.Errorf("AutomationService.MuteMonitor: %w", err)
	}
	return node, nil
}

func (a *automationService) UnmuteMonitor(ctx context.Context, id string) (model.Node, error) {
	node, err := a.setMuted(ctx, id, false)
	if err != nil {
		return model.Node{}, fmt.Errorf("AutomationService.UnmuteMonitor: %w", err)
	}
	return node, nil
}

func NewAutomationService(
	nodeRepository repository.NodeRepository,
	hostRepository repository.HostRepository,
	chainRepository repository.ChainRepository,
	locationRepository repository.LocationRepository,
	rotationEventRepository repository.RotationEventRepository,
	rotationController rotation.Controller,
	notifier notifier.Notifier,
	webhookRegistrar webhook.Registrar,
	alert alert.Channel,
	mailSender mail.Sender,
	logger *zap.Logger,
) AutomationService {
	return &automationService{
		nodeRepository:          nodeRepository,
		hostRepository:          hostRepository,
		chainRepository:         chainRepository,
		locationRepository:      locationRepository,
		rotationEventRepository: rotationEventRepository,
		rotationController:      rotationController,
		notifier:                notifier,
		webhookRegistrar:        webhookRegistrar,
		alert:                   alert,
		mailSender:              mailSender,
		logger:                  logger,
	}
}
