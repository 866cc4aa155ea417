package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProductModel mirrors the 'products' table populated by the catalog importer.
type ProductModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Brand         *string   `gorm:"type:varchar(100)"`
	Category      string    `gorm:"type:varchar(50);not null;index"`
	Subcategory   *string   `gorm:"type:varchar(50)"`
	Price         float64   `gorm:"type:decimal(10,2);not null"`
	OriginalPrice *float64  `gorm:"type:decimal(10,2)"`
	Currency      string    `gorm:"type:varchar(3);not null;default:BRL"`
	ImageURL      *string   `gorm:"type:text"`
	ProductURL    string    `gorm:"type:text;not null"`
	Description   *string   `gorm:"type:text"`
	Sizes         datatypes.JSON
	Colors        datatypes.JSON
	IsLuxury      bool    `gorm:"not null;default:false"`
	IsEconomic    bool    `gorm:"not null;default:false"`
	IsAvailable   bool    `gorm:"not null;default:true;index"`
	Source        string  `gorm:"type:varchar(50);not null"`
	Gender        string  `gorm:"type:varchar(10);not null;index"`
	Season        *string `gorm:"type:varchar(20)"`
	Weather       datatypes.JSON
	ScrapedAt     time.Time `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
