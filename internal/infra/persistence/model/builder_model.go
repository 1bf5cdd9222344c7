// Package model contains the GORM persistence models.
package model

import (
	"time"

	"gorm.io/datatypes"
)

// BuilderModel mirrors the 'builder_profiles' table. Searchable fields are
// promoted to scalar columns; the full profile document lives in a JSONB
// column so the aggregate round-trips without a table per nested type.
// Email is stored lowercased to make the unique index case-insensitive.
type BuilderModel struct {
	ID          string `gorm:"type:varchar(64);primaryKey"`
	CompanyName string `gorm:"type:varchar(255);not null"`
	Slug        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email       string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Country     string `gorm:"type:varchar(100);index"`
	City        string `gorm:"type:varchar(100)"`
	Description string `gorm:"type:text"`

	Verified      bool `gorm:"index"`
	PremiumMember bool
	Rating        float64
	ReviewCount   int

	Profile datatypes.JSON `gorm:"type:jsonb;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (BuilderModel) TableName() string {
	return "builder_profiles"
}
