package commerce

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LevelReason string

const (
	ReasonInitial LevelReason = "initial"
	ReasonRestock LevelReason = "restock"
	ReasonOrder   LevelReason = "order"
	ReasonAdmin   LevelReason = "admin"
)

// InventoryItem tracks stock for one SKU. For form option inventory the SKU
// is the option id.
type InventoryItem struct {
	SKU       string `json:"sku" gorm:"primaryKey"`
	StoreID   string `json:"store_id" gorm:"type:uuid;index"`
	ProjectID uint   `json:"project_id" gorm:"index"`

	Levels []InventoryLevel `json:"levels" gorm:"foreignKey:SKU;references:SKU"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InventoryLevel is one stock adjustment. Availability is derived from the
// level history by a counting strategy, not stored.
type InventoryLevel struct {
	ID        string      `json:"id" gorm:"type:uuid;primaryKey"`
	SKU       string      `json:"sku" gorm:"index"`
	Diff      int         `json:"diff"`
	Reason    LevelReason `json:"reason"`
	CreatedAt time.Time   `json:"created_at"`
}

func (l *InventoryLevel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
