package model

import "time"

type Location struct {
	ID        string `gorm:"default:(-)"`
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
