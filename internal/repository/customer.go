package repository

import (
	"github.com/featherform/featherform/internal/domain/customer"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepo interface {
	// UpsertOnUUID inserts or updates keyed by (project_id, uuid).
	UpsertOnUUID(c *customer.Customer) (*customer.Customer, error)
	// UpsertOnFingerprint inserts or updates keyed by
	// (project_id, fingerprint_visitor_id).
	UpsertOnFingerprint(c *customer.Customer) (*customer.Customer, error)
	GetByUID(uid string) (*customer.Customer, error)
	WithTx(tx *gorm.DB) CustomerRepo
}

type DBCustomerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) *DBCustomerRepo {
	return &DBCustomerRepo{
		db: db,
	}
}

func (r *DBCustomerRepo) WithTx(tx *gorm.DB) CustomerRepo {
	return &DBCustomerRepo{db: tx}
}

func (r *DBCustomerRepo) UpsertOnUUID(c *customer.Customer) (*customer.Customer, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "project_id"}, {Name: "uuid"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"fingerprint_visitor_id", "email", "last_seen_at",
		}),
	}).Create(c).Error
	if err != nil {
		return nil, err
	}
	return r.reload(c)
}

func (r *DBCustomerRepo) UpsertOnFingerprint(c *customer.Customer) (*customer.Customer, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "project_id"}, {Name: "fingerprint_visitor_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"uuid", "email", "last_seen_at",
		}),
	}).Create(c).Error
	if err != nil {
		return nil, err
	}
	return r.reload(c)
}

// reload fetches the row the upsert landed on, since ON CONFLICT DO UPDATE
// may have merged into an existing customer with a different uid.
func (r *DBCustomerRepo) reload(c *customer.Customer) (*customer.Customer, error) {
	var out customer.Customer
	q := r.db.Where("project_id = ?", c.ProjectID)
	if c.UUID != nil {
		q = q.Where("uuid = ?", *c.UUID)
	} else if c.FingerprintVisitorID != nil {
		q = q.Where("fingerprint_visitor_id = ?", *c.FingerprintVisitorID)
	} else {
		q = q.Where("uid = ?", c.UID)
	}
	if err := q.First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *DBCustomerRepo) GetByUID(uid string) (*customer.Customer, error) {
	var c customer.Customer
	if err := r.db.First(&c, "uid = ?", uid).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
