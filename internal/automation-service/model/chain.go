package model

import "time"

type Chain struct {
	ID        string `gorm:"default:(-)"`
	Name      string
	Type      string
	ChainID   string
	Allowance int
	CreatedAt time.Time
	UpdatedAt time.Time
}
