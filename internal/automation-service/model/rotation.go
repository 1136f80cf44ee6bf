package model

import "time"

type LoadBalancerStatus string

const (
	LoadBalancerStatusOnline  LoadBalancerStatus = "online"
	LoadBalancerStatusOffline LoadBalancerStatus = "offline"
	// LoadBalancerStatusError means the replicas disagree on the server state.
	LoadBalancerStatusError LoadBalancerStatus = "error"
)

// CountMismatch is returned instead of a server count when replicas report different counts.
const CountMismatch = -1

type HaProxyStatus int

const (
	HaProxyStatusNotManaged HaProxyStatus = -1
	HaProxyStatusHealthy    HaProxyStatus = 0
	HaProxyStatusUnhealthy  HaProxyStatus = 1
)

type RotationTarget struct {
	Backend       string
	Server        string
	LoadBalancers []Host
	Manual        bool
}

const (
	RotationActionEnable  = "enable"
	RotationActionDisable = "disable"
)

type RotationEvent struct {
	ID        string    `json:"id"`
	NodeID    string    `json:"node_id"`
	NodeName  string    `json:"node_name"`
	Backend   string    `json:"backend"`
	Server    string    `json:"server"`
	Action    string    `json:"action"`
	Manual    bool      `json:"manual"`
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
