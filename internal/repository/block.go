package repository

import (
	"github.com/featherform/featherform/internal/domain/form"
	"gorm.io/gorm"
)

type BlockRepo interface {
	ListBlocksByForm(formID string) ([]form.Block, error)
	CreateBlock(b *form.Block) error
	UpdateBlock(b *form.Block) error
	DeleteBlock(id string) error
	WithTx(tx *gorm.DB) BlockRepo
}

type DBBlockRepo struct {
	db *gorm.DB
}

func NewBlockRepo(db *gorm.DB) *DBBlockRepo {
	return &DBBlockRepo{
		db: db,
	}
}

func (r *DBBlockRepo) WithTx(tx *gorm.DB) BlockRepo {
	return &DBBlockRepo{db: tx}
}

func (r *DBBlockRepo) ListBlocksByForm(formID string) ([]form.Block, error) {
	var blocks []form.Block
	err := r.db.Where("form_id = ?", formID).Order("local_index asc").Find(&blocks).Error
	return blocks, err
}

func (r *DBBlockRepo) CreateBlock(b *form.Block) error {
	return r.db.Create(b).Error
}

func (r *DBBlockRepo) UpdateBlock(b *form.Block) error {
	return r.db.Save(b).Error
}

func (r *DBBlockRepo) DeleteBlock(id string) error {
	return r.db.Delete(&form.Block{}, "id = ?", id).Error
}
