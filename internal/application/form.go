package application

import (
	"github.com/featherform/featherform/internal/domain/form"
	"github.com/featherform/featherform/internal/domain/response"
	"github.com/featherform/featherform/internal/repository"
)

type FormService struct {
	repos *repository.Repos
}

func NewFormService(repos *repository.Repos) *FormService {
	return &FormService{repos: repos}
}

func (s *FormService) CreateForm(input form.CreateFormDTO) (*form.Form, error) {
	f := &form.Form{
		ProjectID:                    input.ProjectID,
		Title:                        input.Title,
		Description:                  input.Description,
		UnknownFieldHandlingStrategy: form.UnknownFieldAccept,
	}
	return f, s.repos.Form.CreateForm(f)
}

func (s *FormService) GetForm(id string) (*form.Form, error) {
	return s.repos.Form.GetFormReference(id)
}

func (s *FormService) UpdateSettings(id string, input form.UpdateFormSettingsDTO) (*form.Form, error) {
	f, err := s.repos.Form.GetFormByID(id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		f.Title = *input.Title
	}
	if input.Description != nil {
		f.Description = *input.Description
	}
	if input.UnknownFieldHandlingStrategy != nil {
		f.UnknownFieldHandlingStrategy = *input.UnknownFieldHandlingStrategy
	}
	if input.IsMaxFormResponsesInTotalEnabled != nil {
		f.IsMaxFormResponsesInTotalEnabled = *input.IsMaxFormResponsesInTotalEnabled
	}
	if input.MaxFormResponsesInTotal != nil {
		f.MaxFormResponsesInTotal = input.MaxFormResponsesInTotal
	}
	if input.IsMaxFormResponsesByCustomerEnabled != nil {
		f.IsMaxFormResponsesByCustomerEnabled = *input.IsMaxFormResponsesByCustomerEnabled
	}
	if input.MaxFormResponsesByCustomer != nil {
		f.MaxFormResponsesByCustomer = input.MaxFormResponsesByCustomer
	}
	if input.IsForceClosed != nil {
		f.IsForceClosed = *input.IsForceClosed
	}
	if input.IsEndingPageEnabled != nil {
		f.IsEndingPageEnabled = *input.IsEndingPageEnabled
	}
	if input.EndingPageTemplateID != nil {
		f.EndingPageTemplateID = input.EndingPageTemplateID
	}
	if input.IsRedirectAfterResponseURIEnabled != nil {
		f.IsRedirectAfterResponseURIEnabled = *input.IsRedirectAfterResponseURIEnabled
	}
	if input.RedirectAfterResponseURI != nil {
		f.RedirectAfterResponseURI = input.RedirectAfterResponseURI
	}

	return f, s.repos.Form.UpdateForm(f)
}

func (s *FormService) SaveField(formID string, input form.SaveFieldDTO) (*form.Field, error) {
	f := &form.Field{
		ID:          input.ID,
		FormID:      formID,
		Name:        input.Name,
		Label:       input.Label,
		Type:        input.Type,
		Required:    input.Required,
		Placeholder: input.Placeholder,
		HelpText:    input.HelpText,
		Pattern:     input.Pattern,
	}
	for _, o := range input.Options {
		f.Options = append(f.Options, form.FieldOption{
			ID:       o.ID,
			Label:    o.Label,
			Value:    o.Value,
			Index:    o.Index,
			Disabled: o.Disabled,
		})
	}

	// the field row and its replaced options land atomically
	err := s.repos.ExecTx(func(txRepos *repository.Repos) error {
		if err := txRepos.Form.SaveField(f); err != nil {
			return err
		}
		return txRepos.Form.ReplaceFieldOptions(f.ID, f.Options)
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FormService) DeleteField(id string) error {
	return s.repos.ExecTx(func(txRepos *repository.Repos) error {
		if err := txRepos.Form.ReplaceFieldOptions(id, nil); err != nil {
			return err
		}
		return txRepos.Form.DeleteField(id)
	})
}

func (s *FormService) ListResponses(formID string, limit, offset int) ([]response.Response, error) {
	return s.repos.Response.ListResponsesByForm(formID, limit, offset)
}

func (s *FormService) DeleteResponse(id string) error {
	return s.repos.Response.DeleteResponse(id)
}
