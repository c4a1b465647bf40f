package repository

import (
	"github.com/featherform/featherform/internal/domain/form"
	"gorm.io/gorm"
)

type FormRepo interface {
	// GetFormReference loads a form with its fields, their options and the
	// optional store connection in one round-trip. This is the read the
	// submission pipeline starts from.
	GetFormReference(id string) (*form.Form, error)
	GetFormByID(id string) (*form.Form, error)
	CreateForm(f *form.Form) error
	UpdateForm(f *form.Form) error
	DeleteForm(id string) error

	ListFieldsByForm(formID string) ([]form.Field, error)
	CreateFields(fields []*form.Field) error
	SaveField(f *form.Field) error
	ReplaceFieldOptions(fieldID string, options []form.FieldOption) error
	DeleteField(id string) error

	WithTx(tx *gorm.DB) FormRepo
}

type DBFormRepo struct {
	db *gorm.DB
}

func NewFormRepo(db *gorm.DB) *DBFormRepo {
	return &DBFormRepo{
		db: db,
	}
}

func (r *DBFormRepo) WithTx(tx *gorm.DB) FormRepo {
	return &DBFormRepo{db: tx}
}

func (r *DBFormRepo) GetFormReference(id string) (*form.Form, error) {
	var f form.Form
	err := r.db.
		Preload("Fields", func(db *gorm.DB) *gorm.DB { return db.Order("form_fields.index asc") }).
		Preload("Fields.Options", func(db *gorm.DB) *gorm.DB { return db.Order("form_field_options.index asc") }).
		Preload("StoreConnection").
		First(&f, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *DBFormRepo) GetFormByID(id string) (*form.Form, error) {
	var f form.Form
	err := r.db.First(&f, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *DBFormRepo) CreateForm(f *form.Form) error {
	return r.db.Create(f).Error
}

func (r *DBFormRepo) UpdateForm(f *form.Form) error {
	return r.db.Save(f).Error
}

func (r *DBFormRepo) DeleteForm(id string) error {
	return r.db.Delete(&form.Form{}, "id = ?", id).Error
}

func (r *DBFormRepo) ListFieldsByForm(formID string) ([]form.Field, error) {
	var fields []form.Field
	err := r.db.
		Preload("Options").
		Where("form_id = ?", formID).
		Order("index asc").
		Find(&fields).Error
	return fields, err
}

func (r *DBFormRepo) CreateFields(fields []*form.Field) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Create(fields).Error
}

func (r *DBFormRepo) SaveField(f *form.Field) error {
	return r.db.Omit("Options").Save(f).Error
}

// ReplaceFieldOptions swaps a field's options wholesale. An empty slice
// clears them. Callers compose this with SaveField or DeleteField inside
// one transaction.
func (r *DBFormRepo) ReplaceFieldOptions(fieldID string, options []form.FieldOption) error {
	if err := r.db.Where("form_field_id = ?", fieldID).Delete(&form.FieldOption{}).Error; err != nil {
		return err
	}
	if len(options) == 0 {
		return nil
	}
	for i := range options {
		options[i].FormFieldID = fieldID
	}
	return r.db.Create(&options).Error
}

func (r *DBFormRepo) DeleteField(id string) error {
	return r.db.Delete(&form.Field{}, "id = ?", id).Error
}
