package customer

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is the per-project identity a response is attributed to.
// It is keyed either by a caller-provided UUID (hidden field) or by a
// fingerprint visitor id; both are unique within a project.
type Customer struct {
	UID       string  `json:"uid" gorm:"type:uuid;primaryKey"`
	ProjectID uint    `json:"project_id" gorm:"uniqueIndex:idx_customer_project_uuid;uniqueIndex:idx_customer_project_fp"`
	UUID      *string `json:"uuid" gorm:"type:uuid;uniqueIndex:idx_customer_project_uuid"`

	FingerprintVisitorID *string `json:"fingerprint_visitor_id" gorm:"uniqueIndex:idx_customer_project_fp"`
	Email                *string `json:"email"`

	LastSeenAt time.Time `json:"last_seen_at"`
	CreatedAt  time.Time `json:"created_at"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.UID == "" {
		c.UID = uuid.NewString()
	}
	return nil
}
