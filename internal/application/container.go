package application

import (
	"github.com/featherform/featherform/internal/repository"
)

type Services struct {
	Form       *FormService
	Customer   *CustomerService
	Access     *AccessService
	Inventory  *InventoryService
	Submission *SubmissionService
	Media      *MediaService
}

func New(repos *repository.Repos) *Services {
	customers := NewCustomerService(repos)
	access := NewAccessService(repos)
	inventory := NewInventoryService(repos)

	return &Services{
		Form:       NewFormService(repos),
		Customer:   customers,
		Access:     access,
		Inventory:  inventory,
		Submission: NewSubmissionService(repos, customers, access, inventory),
		Media:      NewMediaService(),
	}
}
