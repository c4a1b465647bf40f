package form

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UnknownFieldStrategy decides what happens to submitted keys that do not
// match any declared field name.
type UnknownFieldStrategy string

const (
	UnknownFieldAccept UnknownFieldStrategy = "accept"
	UnknownFieldIgnore UnknownFieldStrategy = "ignore"
	UnknownFieldReject UnknownFieldStrategy = "reject"
)

type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeNumber   FieldType = "number"
	FieldTypeEmail    FieldType = "email"
	FieldTypeTel      FieldType = "tel"
	FieldTypeURL      FieldType = "url"
	FieldTypeDate     FieldType = "date"
	FieldTypeSelect   FieldType = "select"
	FieldTypeRadio    FieldType = "radio"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeHidden   FieldType = "hidden"
	FieldTypePassword FieldType = "password"
	FieldTypeColor    FieldType = "color"
	FieldTypeFile     FieldType = "file"
)

type BlockType string

const (
	BlockTypeSection BlockType = "section"
	BlockTypeField   BlockType = "field"
	BlockTypeImage   BlockType = "image"
	BlockTypeVideo   BlockType = "video"
	BlockTypeHTML    BlockType = "html"
	BlockTypeDivider BlockType = "divider"
	BlockTypeHeader  BlockType = "header"
	BlockTypeGroup   BlockType = "group"
)

type Form struct {
	ID          string `json:"id" gorm:"type:uuid;primaryKey"`
	ProjectID   uint   `json:"project_id" gorm:"index"`
	Title       string `json:"title"`
	Description string `json:"description"`

	UnknownFieldHandlingStrategy UnknownFieldStrategy `json:"unknown_field_handling_strategy" gorm:"default:'accept'"`

	IsMaxFormResponsesInTotalEnabled    bool `json:"is_max_form_responses_in_total_enabled"`
	MaxFormResponsesInTotal             *int `json:"max_form_responses_in_total"`
	IsMaxFormResponsesByCustomerEnabled bool `json:"is_max_form_responses_by_customer_enabled"`
	MaxFormResponsesByCustomer          *int `json:"max_form_responses_by_customer"`

	IsForceClosed bool `json:"is_force_closed"`

	IsEndingPageEnabled  bool    `json:"is_ending_page_enabled"`
	EndingPageTemplateID *string `json:"ending_page_template_id"`

	IsRedirectAfterResponseURIEnabled bool    `json:"is_redirect_after_response_uri_enabled"`
	RedirectAfterResponseURI          *string `json:"redirect_after_response_uri"`

	Fields          []Field          `json:"fields" gorm:"foreignKey:FormID"`
	StoreConnection *StoreConnection `json:"store_connection" gorm:"foreignKey:FormID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (f *Form) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

type Field struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	FormID      string    `json:"form_id" gorm:"type:uuid;index"`
	Name        string    `json:"name" gorm:"index"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type" gorm:"default:'text'"`
	Required    bool      `json:"required"`
	Placeholder string    `json:"placeholder"`
	HelpText    string    `json:"help_text"`
	Pattern     *string   `json:"pattern"`
	Index       int       `json:"index"`

	Options []FieldOption `json:"options" gorm:"foreignKey:FormFieldID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Field) TableName() string { return "form_fields" }

func (f *Field) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// Option lookup by id. Submitted values that are UUIDv4 strings are matched
// against option ids to resolve the stored value.
func (f *Field) OptionByID(id string) *FieldOption {
	for i := range f.Options {
		if f.Options[i].ID == id {
			return &f.Options[i]
		}
	}
	return nil
}

type FieldOption struct {
	ID          string `json:"id" gorm:"type:uuid;primaryKey"`
	FormFieldID string `json:"form_field_id" gorm:"type:uuid;index"`
	Label       string `json:"label"`
	Value       string `json:"value"`
	Index       int    `json:"index"`
	Disabled    bool   `json:"disabled"`

	CreatedAt time.Time `json:"created_at"`
}

func (FieldOption) TableName() string { return "form_field_options" }

func (o *FieldOption) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// Block is one node of the flat, ordered layout tree of a form.
// ParentID references another block (a section or group) or is null for
// root-level blocks. LocalIndex is the position in the flat order and is
// reassigned globally on every structural change.
type Block struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	FormID      string    `json:"form_id" gorm:"type:uuid;index"`
	Type        BlockType `json:"type"`
	ParentID    *string   `json:"parent_id" gorm:"type:uuid"`
	LocalIndex  int       `json:"local_index"`
	FormFieldID *string   `json:"form_field_id" gorm:"type:uuid"`

	TitleHTML       string         `json:"title_html"`
	DescriptionHTML string         `json:"description_html"`
	BodyHTML        string         `json:"body_html"`
	Src             string         `json:"src"`
	Data            datatypes.JSON `json:"data"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Block) TableName() string { return "form_blocks" }

func (b *Block) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// StoreConnection links a form to a commerce store. Present only for
// commerce-linked forms; its presence gates inventory validation on submit.
type StoreConnection struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	FormID    string    `json:"form_id" gorm:"type:uuid;uniqueIndex"`
	ProjectID uint      `json:"project_id"`
	StoreID   string    `json:"store_id" gorm:"type:uuid"`
	CreatedAt time.Time `json:"created_at"`
}

func (StoreConnection) TableName() string { return "connection_commerce_stores" }

func (s *StoreConnection) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
