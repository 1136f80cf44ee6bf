package model

import "time"

type Host struct {
	ID           string `gorm:"default:(-)"`
	Name         string
	LocationID   string
	Location     Location
	LoadBalancer bool
	IP           string
	FQDN         string `gorm:"column:fqdn"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Address returns the FQDN when the host has one, otherwise its IP.
func (h Host) Address() string {
	if h.FQDN != "" {
		return h.FQDN
	}
	return h.IP
}
