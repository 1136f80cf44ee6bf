package response

import "time"

type NodeResponse struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Chain         ChainResponse  `json:"chain"`
	Host          HostResponse   `json:"host"`
	Port          int            `json:"port"`
	URL           string         `json:"url"`
	Backend       string         `json:"backend"`
	Server        string         `json:"server"`
	Frontend      string         `json:"frontend"`
	LoadBalancers []HostResponse `json:"load_balancers"`
	HaProxy       bool           `json:"haproxy"`
	Muted         bool           `json:"muted"`
	Automation    bool           `json:"automation"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
