package repository

import (
	"github.com/featherform/featherform/internal/domain/commerce"
	"gorm.io/gorm"
)

type InventoryRepo interface {
	// ListItemsByStore loads every inventory item of a store with its full
	// level history.
	ListItemsByStore(projectID uint, storeID string) ([]commerce.InventoryItem, error)
	// AddLevel records a stock adjustment for a SKU, creating the item row
	// on first touch.
	AddLevel(projectID uint, storeID, sku string, diff int, reason commerce.LevelReason) error
	WithTx(tx *gorm.DB) InventoryRepo
}

type DBInventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) *DBInventoryRepo {
	return &DBInventoryRepo{
		db: db,
	}
}

func (r *DBInventoryRepo) WithTx(tx *gorm.DB) InventoryRepo {
	return &DBInventoryRepo{db: tx}
}

func (r *DBInventoryRepo) ListItemsByStore(projectID uint, storeID string) ([]commerce.InventoryItem, error) {
	var items []commerce.InventoryItem
	err := r.db.
		Preload("Levels", func(db *gorm.DB) *gorm.DB { return db.Order("created_at asc") }).
		Where("project_id = ? AND store_id = ?", projectID, storeID).
		Find(&items).Error
	return items, err
}

func (r *DBInventoryRepo) AddLevel(projectID uint, storeID, sku string, diff int, reason commerce.LevelReason) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		item := commerce.InventoryItem{SKU: sku, StoreID: storeID, ProjectID: projectID}
		if err := tx.Where("sku = ?", sku).FirstOrCreate(&item).Error; err != nil {
			return err
		}
		level := commerce.InventoryLevel{SKU: sku, Diff: diff, Reason: reason}
		return tx.Create(&level).Error
	})
}
