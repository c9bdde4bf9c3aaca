package models

import (
	"gorm.io/gorm"
)

type Participant struct {
	gorm.Model
	ActivityName string `json:"activity_name" gorm:"uniqueIndex:idx_activity_email"`
	Email        string `json:"email" gorm:"uniqueIndex:idx_activity_email"`
}
