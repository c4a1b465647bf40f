package application

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/featherform/featherform/internal/domain/form"
	"github.com/featherform/featherform/internal/domain/response"
	"github.com/featherform/featherform/internal/repository"
	"github.com/featherform/featherform/pkg/formlink"
	"github.com/featherform/featherform/pkg/httputil"
	pkgresponse "github.com/featherform/featherform/pkg/response"
	"github.com/featherform/featherform/pkg/uuidutil"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// System keys are reserved input names carrying identity hints. They are
// stripped before field matching.
const (
	SystemKeyPrefix        = "__ff_"
	SystemKeyCustomerUUID  = "__ff_customer_uuid"
	SystemKeyFingerprintID = "__ff_fp_visitorid"
)

// ResultKind tags the outcome of a submission.
type ResultKind int

const (
	// ResultJSON carries a SubmissionResponse body.
	ResultJSON ResultKind = iota
	// ResultRedirect carries an outcome page to 301 to.
	ResultRedirect
	// ResultRedirectURI carries a caller-configured absolute URI.
	ResultRedirectURI
	// ResultError carries a structural 4xx JSON error.
	ResultError
)

// SubmissionResult is the single navigable outcome of a submission: a JSON
// body, a redirect, or a typed 4xx.
type SubmissionResult struct {
	Kind ResultKind

	Body *pkgresponse.SubmissionResponse

	Outcome       formlink.Outcome
	OutcomeParams map[string]string

	RedirectURI string

	Status    int
	ErrorBody *pkgresponse.ErrorResponse
}

func redirectResult(outcome formlink.Outcome, params map[string]string) *SubmissionResult {
	return &SubmissionResult{Kind: ResultRedirect, Outcome: outcome, OutcomeParams: params}
}

func errorResult(status int, body pkgresponse.ErrorResponse) *SubmissionResult {
	return &SubmissionResult{Kind: ResultError, Status: status, ErrorBody: &body}
}

type SubmissionService struct {
	repos     *repository.Repos
	customers *CustomerService
	access    *AccessService
	inventory *InventoryService
}

func NewSubmissionService(repos *repository.Repos, customers *CustomerService, access *AccessService, inventory *InventoryService) *SubmissionService {
	return &SubmissionService{
		repos:     repos,
		customers: customers,
		access:    access,
		inventory: inventory,
	}
}

// Submit validates one inbound submission against the form's configuration
// and persists it. Every closing/limit/inventory policy is enforced before
// any data lands in storage; policy failures produce outcome-page redirects
// so embedded browser forms always have somewhere to navigate.
func (s *SubmissionService) Submit(formID string, entries url.Values, meta httputil.ClientMeta) (*SubmissionResult, error) {
	ref, err := s.repos.Form.GetFormReference(formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResult(http.StatusNotFound, pkgresponse.ErrorResponse{Error: "Form not found"}), nil
		}
		return nil, err
	}

	_, userKeys := partitionKeys(entries)

	// customer handling
	customerUUID := entries.Get(SystemKeyCustomerUUID)
	fingerprint := entries.Get(SystemKeyFingerprintID)

	cust, err := s.customers.UpsertWith(ref.ProjectID, customerUUID, CustomerHints{
		FingerprintVisitorID: fingerprint,
	})
	if err != nil {
		return nil, err
	}

	// every hidden+required field must arrive with a non-empty value
	var missing []string
	for _, f := range ref.Fields {
		if f.Type == form.FieldTypeHidden && f.Required && entries.Get(f.Name) == "" {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		log.Error().Str("form_id", formID).Strs("fields", missing).
			Msg("submission missing required hidden fields")
		// redirects even on the API path, for embed compatibility
		return redirectResult(formlink.OutcomeBadRequest, map[string]string{
			"error": CodeMissingRequiredHiddenFields,
		}), nil
	}

	accessErr, err := s.access.ValidateMaxAccess(MaxAccessParams{
		FormID:                              formID,
		CustomerUID:                         cust.UID,
		IsMaxFormResponsesByCustomerEnabled: ref.IsMaxFormResponsesByCustomerEnabled,
		MaxFormResponsesByCustomer:          ref.MaxFormResponsesByCustomer,
		IsMaxFormResponsesInTotalEnabled:    ref.IsMaxFormResponsesInTotalEnabled,
		MaxFormResponsesInTotal:             ref.MaxFormResponsesInTotal,
	})
	if err != nil {
		return nil, err
	}
	if accessErr != nil {
		switch accessErr.Code {
		case CodeResponseLimitByCustomer:
			return redirectResult(formlink.OutcomeAlreadyResponded, nil), nil
		case CodeResponseLimitReached:
			return redirectResult(formlink.OutcomeFormClosed, map[string]string{
				"oops": CodeFormClosedWhileResponding,
			}), nil
		default:
			return errorResult(http.StatusBadRequest, pkgresponse.ErrorResponse{Error: accessErr.Code}), nil
		}
	}

	if ref.IsForceClosed {
		return redirectResult(formlink.OutcomeFormClosed, map[string]string{
			"oops": CodeFormClosedWhileResponding,
		}), nil
	}

	// inventory validation, only for commerce-linked forms
	if ref.StoreConnection != nil {
		result, err := s.checkInventory(ref, entries)
		if err != nil {
			return nil, err
		}
		if result != nil {
			return result, nil
		}
	}

	// partition submitted user keys into known and unknown field names
	fields := make([]form.Field, len(ref.Fields))
	copy(fields, ref.Fields)

	var knownNames, unknownNames []string
	for _, key := range userKeys {
		if fieldByName(fields, key) != nil {
			knownNames = append(knownNames, key)
		} else {
			unknownNames = append(unknownNames, key)
		}
	}

	var ignoredNames, createdNames []string
	switch {
	case ref.UnknownFieldHandlingStrategy == form.UnknownFieldIgnore && len(unknownNames) > 0:
		ignoredNames = unknownNames
	case ref.UnknownFieldHandlingStrategy == form.UnknownFieldReject && len(unknownNames) > 0:
		return errorResult(http.StatusBadRequest, pkgresponse.ErrorResponse{
			Error: "Unknown fields are not allowed",
			Info: map[string]any{
				"code":    CodeUnknownFieldsRejected,
				"message": "To allow unknown fields, set 'unknown_field_handling_strategy' to 'ignore' or 'accept' in the form settings.",
				"data":    map[string]any{"keys": unknownNames},
			},
		}), nil
	case ref.UnknownFieldHandlingStrategy == form.UnknownFieldAccept && len(unknownNames) > 0:
		createdNames = unknownNames
	}

	if len(createdNames) > 0 {
		newFields := make([]*form.Field, 0, len(createdNames))
		for _, name := range createdNames {
			newFields = append(newFields, &form.Field{
				FormID:   formID,
				Name:     name,
				Type:     form.FieldTypeText,
				HelpText: "Automatically created",
			})
		}
		if err := s.repos.Form.CreateFields(newFields); err != nil {
			return nil, err
		}
		for _, f := range newFields {
			fields = append(fields, *f)
		}
	}

	// persist the response row with the raw payload and request metadata
	raw := make(map[string]string, len(entries))
	for key, vals := range entries {
		if len(vals) == 0 {
			continue
		}
		// a repeated key keeps its last value in the raw payload
		raw[key] = vals[len(vals)-1]
	}
	rawJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}

	res := response.Response{
		FormID:            formID,
		CustomerID:        &cust.UID,
		Raw:               rawJSON,
		IP:                meta.IP,
		XUserAgent:        meta.UserAgent,
		XReferer:          meta.Referer,
		Browser:           meta.Browser,
		PlatformPoweredBy: response.PoweredByWebClient,
	}

	// the response row and its field rows land atomically
	err = s.repos.ExecTx(func(txRepos *repository.Repos) error {
		if err := txRepos.Response.CreateResponse(&res); err != nil {
			return err
		}

		responseFields := make([]response.ResponseField, 0, len(fields))
		for _, f := range fields {
			valueOrReference := entries.Get(f.Name)

			// a UUIDv4 value matching one of the field's option ids is a
			// reference; store the option's underlying value instead
			var optionID *string
			value := valueOrReference
			if uuidutil.IsUUIDv4(valueOrReference) {
				if opt := f.OptionByID(valueOrReference); opt != nil {
					value = opt.Value
					optionID = &opt.ID
				}
			}

			encoded, err := json.Marshal(value)
			if err != nil {
				return err
			}
			responseFields = append(responseFields, response.ResponseField{
				ResponseID:        res.ID,
				FormID:            formID,
				FormFieldID:       f.ID,
				Type:              f.Type,
				Value:             string(encoded),
				FormFieldOptionID: optionID,
			})
		}
		return txRepos.Response.CreateResponseFields(responseFields)
	})
	if err != nil {
		return nil, err
	}

	persisted, err := s.repos.Response.GetResponseWithFields(res.ID)
	if err != nil {
		return nil, err
	}

	var info map[string]any
	if len(createdNames) > 0 {
		info = map[string]any{
			"new_keys": map[string]any{
				"message": "There were new unknown fields in the request and the definitions are created automatically. To disable them, set 'unknown_field_handling_strategy' to 'ignore' or 'reject' in the form settings.",
				"data":    map[string]any{"keys": createdNames},
			},
		}
	}

	var warning map[string]any
	if len(ignoredNames) > 0 {
		warning = map[string]any{
			"ignored_keys": map[string]any{
				"message": "There were unknown fields in the request. To allow them, set 'unknown_field_handling_strategy' to 'accept' in the form settings.",
				"data":    map[string]any{"keys": ignoredNames},
			},
		}
	}

	if ref.IsEndingPageEnabled && ref.EndingPageTemplateID != nil {
		return redirectResult(formlink.OutcomeComplete, map[string]string{
			"rid": persisted.ID,
		}), nil
	}

	if ref.IsRedirectAfterResponseURIEnabled && ref.RedirectAfterResponseURI != nil {
		return &SubmissionResult{Kind: ResultRedirectURI, RedirectURI: *ref.RedirectAfterResponseURI}, nil
	}

	return &SubmissionResult{
		Kind: ResultJSON,
		Body: &pkgresponse.SubmissionResponse{
			Data:    persisted,
			Raw:     json.RawMessage(persisted.Raw),
			Warning: warning,
			Info:    info,
			Error:   nil,
		},
	}, nil
}

// checkInventory validates the submission's (at most one) inventory-linked
// option selection and decrements stock for it. A nil result means the
// submission may proceed.
func (s *SubmissionService) checkInventory(ref *form.Form, entries url.Values) (*SubmissionResult, error) {
	conn := ref.StoreConnection

	inv, err := s.inventory.OptionsInventory(ref.ProjectID, conn.StoreID)
	if err != nil {
		return nil, err
	}

	var options []form.FieldOption
	for _, f := range ref.Fields {
		options = append(options, f.Options...)
	}

	// submitted values of option-bearing fields that match an inventory key
	var selections []string
	for _, f := range ref.Fields {
		if len(f.Options) == 0 {
			continue
		}
		value := entries.Get(f.Name)
		if value == "" {
			continue
		}
		if _, ok := inv[value]; ok {
			selections = append(selections, value)
		}
	}

	if len(selections) > 1 {
		return errorResult(http.StatusBadRequest, pkgresponse.ErrorResponse{
			Error: "Multiple inventory option selections are not supported",
			Info: map[string]any{
				"code": CodeMultipleInventorySelections,
				"data": map[string]any{"selections": selections},
			},
		}), nil
	}

	var selection *string
	if len(selections) == 1 {
		selection = &selections[0]
	}

	if invErr := ValidateOptionsInventory(inv, options, selection, CountSumPositive); invErr != nil {
		log.Error().Str("form_id", ref.ID).Str("code", invErr.Code).Msg("inventory validation failed")
		switch invErr.Code {
		case CodeFormSoldOut:
			return redirectResult(formlink.OutcomeFormSoldOut, nil), nil
		case CodeFormOptionUnavailable:
			return redirectResult(formlink.OutcomeOptionSoldOut, nil), nil
		}
	}

	if selection != nil {
		// decrement is not rolled back if a later step fails
		if err := s.inventory.DecrementForOrder(ref.ProjectID, conn.StoreID, *selection); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

// partitionKeys splits submitted keys into reserved system keys and user
// keys.
func partitionKeys(entries url.Values) (system, user []string) {
	for key := range entries {
		if len(key) >= len(SystemKeyPrefix) && key[:len(SystemKeyPrefix)] == SystemKeyPrefix {
			system = append(system, key)
		} else {
			user = append(user, key)
		}
	}
	return system, user
}

func fieldByName(fields []form.Field, name string) *form.Field {
	for i := range fields {
		if fields[i].Name == name {
			return &fields[i]
		}
	}
	return nil
}
