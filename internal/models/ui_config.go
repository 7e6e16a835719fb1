package models

import (
	"time"

	"gorm.io/datatypes"
)

// UIConfig is a keyed JSON document served to clients so form choices
// (statuses, roles, page size) stay in one place.
type UIConfig struct {
	Key       string         `gorm:"size:100;primaryKey" json:"key"`
	Value     datatypes.JSON `gorm:"not null" json:"value"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (UIConfig) TableName() string {
	return "ui_configs"
}
