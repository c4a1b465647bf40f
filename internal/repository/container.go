package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Form      FormRepo
	Block     BlockRepo
	Customer  CustomerRepo
	Response  ResponseRepo
	Inventory InventoryRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Form:      NewFormRepo(db),
		Block:     NewBlockRepo(db),
		Customer:  NewCustomerRepo(db),
		Response:  NewResponseRepo(db),
		Inventory: NewInventoryRepo(db),
		db:        db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Form:      r.Form.WithTx(tx),
		Block:     r.Block.WithTx(tx),
		Customer:  r.Customer.WithTx(tx),
		Response:  r.Response.WithTx(tx),
		Inventory: r.Inventory.WithTx(tx),
		db:        tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
