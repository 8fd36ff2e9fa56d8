package models

import "gorm.io/gorm"

// Plan represents a membership plan a student can subscribe to
type Plan struct {
	gorm.Model
	Name            string  `json:"name" gorm:"not null"`
	Description     string  `json:"description" gorm:"default:''"`
	Price           float64 `json:"price" gorm:"not null"`
	SessionsPerWeek int     `json:"sessions_per_week" gorm:"default:1"`
	IsDeleted       bool    `json:"is_deleted" gorm:"default:false"`
}
