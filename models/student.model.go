package models

import "gorm.io/gorm"

type Student struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null"`
	Email     string `json:"email" gorm:"unique;not null"`
	Mobile    string `json:"mobile" gorm:"default:''"`
	Cep       string `json:"cep" gorm:"default:''"`
	Street    string `json:"street" gorm:"default:''"`
	District  string `json:"district" gorm:"default:''"`
	City      string `json:"city" gorm:"default:''"`
	State     string `json:"state" gorm:"default:''"`
	PlanID    *uint  `json:"plan_id" gorm:"index"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	IsDeleted bool   `json:"is_deleted" gorm:"default:false"`
}
