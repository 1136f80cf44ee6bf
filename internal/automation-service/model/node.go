package model

import "time"

type Node struct {
	ID            string `gorm:"default:(-)"`
	Name          string
	ChainID       string
	Chain         Chain
	HostID        string
	Host          Host
	Port          int
	URL           string `gorm:"column:url"`
	Backend       string
	Server        string
	Frontend      string
	LoadBalancers []Host `gorm:"many2many:node_load_balancers;"`
	HaProxy       bool
	Muted         bool
	Automation    bool
	BasicAuth     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RotationTarget builds the rotation unit of work for the node's backend/server pair
// against its currently assigned load balancers.
func (n Node) RotationTarget(manual bool) RotationTarget {
	return RotationTarget{
		Backend:       n.Backend,
		Server:        n.Server,
		LoadBalancers: n.LoadBalancers,
		Manual:        manual,
	}
}
