package model

import "time"

type Webhook struct {
	ID        string `gorm:"default:(-)"`
	Chain     string
	Location  string
	URL       string `gorm:"column:url"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
