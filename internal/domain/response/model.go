package response

import (
	"time"

	"github.com/featherform/featherform/internal/domain/form"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PlatformPoweredBy string

const (
	PoweredByAPI       PlatformPoweredBy = "api"
	PoweredByWebClient PlatformPoweredBy = "web_client"
)

// Response is one accepted submission: the raw payload plus request metadata.
type Response struct {
	ID         string  `json:"id" gorm:"type:uuid;primaryKey"`
	FormID     string  `json:"form_id" gorm:"type:uuid;index"`
	CustomerID *string `json:"customer_id" gorm:"type:uuid;index"`

	Raw datatypes.JSON `json:"raw"`

	IP                string            `json:"ip"`
	XUserAgent        string            `json:"x_useragent"`
	XReferer          string            `json:"x_referer"`
	Browser           string            `json:"browser"`
	PlatformPoweredBy PlatformPoweredBy `json:"platform_powered_by" gorm:"default:'web_client'"`

	Fields []ResponseField `json:"fields" gorm:"foreignKey:ResponseID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Response) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// ResponseField captures one field's submitted value. When the submitted
// value referenced a declared option, Value holds the option's underlying
// value and FormFieldOptionID records the reference.
type ResponseField struct {
	ID          string         `json:"id" gorm:"type:uuid;primaryKey"`
	ResponseID  string         `json:"response_id" gorm:"type:uuid;index"`
	FormID      string         `json:"form_id" gorm:"type:uuid;index"`
	FormFieldID string         `json:"form_field_id" gorm:"type:uuid"`
	Type        form.FieldType `json:"type"`

	Value             string  `json:"value"`
	FormFieldOptionID *string `json:"form_field_option_id" gorm:"type:uuid"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (f *ResponseField) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
