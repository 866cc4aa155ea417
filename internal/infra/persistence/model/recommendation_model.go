package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RecommendationModel mirrors the 'recommendations' table. Weather and outfit
// are stored as JSONB snapshots so history survives catalog changes.
type RecommendationModel struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID      `gorm:"type:uuid;not null;index"`
	City             string         `gorm:"type:varchar(100);not null"`
	Gender           string         `gorm:"type:varchar(10);not null"`
	Weather          datatypes.JSON `gorm:"not null"`
	Outfit           datatypes.JSON `gorm:"not null"`
	AIRecommendation *string        `gorm:"type:text"`
	IsActive         bool           `gorm:"not null;default:true"`
	CreatedAt        time.Time      `gorm:"index"`
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecommendationModel) TableName() string {
	return "recommendations"
}
