package response

import "time"

type LocationResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ChainResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	ChainID   string `json:"chain_id"`
	Allowance int    `json:"allowance"`
}

type HostResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Location     LocationResponse `json:"location"`
	LoadBalancer bool             `json:"load_balancer"`
	IP           string           `json:"ip,omitempty"`
	FQDN         string           `json:"fqdn,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
