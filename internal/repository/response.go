package repository

import (
	"github.com/featherform/featherform/internal/domain/response"
	"gorm.io/gorm"
)

type ResponseRepo interface {
	CreateResponse(r *response.Response) error
	CreateResponseFields(fields []response.ResponseField) error
	GetResponseWithFields(id string) (*response.Response, error)
	ListResponsesByForm(formID string, limit, offset int) ([]response.Response, error)
	CountByForm(formID string) (int64, error)
	CountByFormAndCustomer(formID, customerUID string) (int64, error)
	DeleteResponse(id string) error
	WithTx(tx *gorm.DB) ResponseRepo
}

type DBResponseRepo struct {
	db *gorm.DB
}

func NewResponseRepo(db *gorm.DB) *DBResponseRepo {
	return &DBResponseRepo{
		db: db,
	}
}

func (r *DBResponseRepo) WithTx(tx *gorm.DB) ResponseRepo {
	return &DBResponseRepo{db: tx}
}

func (r *DBResponseRepo) CreateResponse(res *response.Response) error {
	return r.db.Create(res).Error
}

func (r *DBResponseRepo) CreateResponseFields(fields []response.ResponseField) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Create(&fields).Error
}

func (r *DBResponseRepo) GetResponseWithFields(id string) (*response.Response, error) {
	var res response.Response
	err := r.db.Preload("Fields").First(&res, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *DBResponseRepo) ListResponsesByForm(formID string, limit, offset int) ([]response.Response, error) {
	var out []response.Response
	q := r.db.Preload("Fields").Where("form_id = ?", formID).Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *DBResponseRepo) CountByForm(formID string) (int64, error) {
	var n int64
	err := r.db.Model(&response.Response{}).Where("form_id = ?", formID).Count(&n).Error
	return n, err
}

func (r *DBResponseRepo) CountByFormAndCustomer(formID, customerUID string) (int64, error) {
	var n int64
	err := r.db.Model(&response.Response{}).
		Where("form_id = ? AND customer_id = ?", formID, customerUID).
		Count(&n).Error
	return n, err
}

func (r *DBResponseRepo) DeleteResponse(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("response_id = ?", id).Delete(&response.ResponseField{}).Error; err != nil {
			return err
		}
		return tx.Delete(&response.Response{}, "id = ?", id).Error
	})
}
