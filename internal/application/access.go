package application

import (
	"github.com/featherform/featherform/internal/repository"
)

// MaxAccessParams carries a form's response-limit flags for quota
// validation.
type MaxAccessParams struct {
	FormID      string
	CustomerUID string

	IsMaxFormResponsesByCustomerEnabled bool
	MaxFormResponsesByCustomer          *int
	IsMaxFormResponsesInTotalEnabled    bool
	MaxFormResponsesInTotal             *int
}

type AccessService struct {
	repos *repository.Repos
}

func NewAccessService(repos *repository.Repos) *AccessService {
	return &AccessService{repos: repos}
}

// ValidateMaxAccess checks the per-customer cap and then the total cap.
// A non-nil *AccessError means the submission must not be accepted; the
// second return carries infrastructure failures only.
func (s *AccessService) ValidateMaxAccess(p MaxAccessParams) (*AccessError, error) {
	if p.IsMaxFormResponsesByCustomerEnabled && p.MaxFormResponsesByCustomer != nil && p.CustomerUID != "" {
		n, err := s.repos.Response.CountByFormAndCustomer(p.FormID, p.CustomerUID)
		if err != nil {
			return nil, err
		}
		if n >= int64(*p.MaxFormResponsesByCustomer) {
			return &AccessError{
				Code:    CodeResponseLimitByCustomer,
				Message: "customer has reached the response limit for this form",
			}, nil
		}
	}

	if p.IsMaxFormResponsesInTotalEnabled && p.MaxFormResponsesInTotal != nil {
		n, err := s.repos.Response.CountByForm(p.FormID)
		if err != nil {
			return nil, err
		}
		if n >= int64(*p.MaxFormResponsesInTotal) {
			return &AccessError{
				Code:    CodeResponseLimitReached,
				Message: "form has reached its total response limit",
			}, nil
		}
	}

	return nil, nil
}
