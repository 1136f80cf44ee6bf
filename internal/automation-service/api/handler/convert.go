package handler

import (
	"VCS_Node_Automation/internal/automation-service/api/dto/response"
	"VCS_Node_Automation/internal/automation-service/model"
)

func toLocationResponse(l model.Location) response.LocationResponse {
	return response.LocationResponse{
		ID:   l.ID,
		Name: l.Name,
	}
}

func toChainResponse(c model.Chain) response.ChainResponse {
	return response.ChainResponse{
		ID:        c.ID,
		Name:      c.Name,
		Type:      c.Type,
		ChainID:   c.ChainID,
		Allowance: c.Allowance,
	}
}

func toHostResponse(h model.Host) response.HostResponse {
	return response.HostResponse{
		ID:           h.ID,
		Name:         h.Name,
		Location:     toLocationResponse(h.Location),
		LoadBalancer: h.LoadBalancer,
		IP:           h.IP,
		FQDN:         h.FQDN,
		CreatedAt:    h.CreatedAt,
		UpdatedAt:    h.UpdatedAt,
	}
}

func toNodeResponse(n model.Node) response.NodeResponse {
	loadBalancers := make([]response.HostResponse, 0, len(n.LoadBalancers))
	for _, lb := range n.LoadBalancers {
		loadBalancers = append(loadBalancers, toHostResponse(lb))
	}
	return response.NodeResponse{
		ID:            n.ID,
		Name:          n.Name,
		Chain:         toChainResponse(n.Chain),
		Host:          toHostResponse(n.Host),
		Port:          n.Port,
		URL:           n.URL,
		Backend:       n.Backend,
		Server:        n.Server,
		Frontend:      n.Frontend,
		LoadBalancers: loadBalancers,
		HaProxy:       n.HaProxy,
		Muted:         n.Muted,
		Automation:    n.Automation,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}
