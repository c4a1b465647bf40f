package application

// Error codes surfaced by the submission pipeline. Policy failures map to
// outcome-page redirects, the rest to JSON error bodies.
const (
	CodeMissingRequiredHiddenFields = "MISSING_REQUIRED_HIDDEN_FIELDS"
	CodeFormClosedWhileResponding   = "FORM_CLOSED_WHILE_RESPONDING"
	CodeResponseLimitReached        = "FORM_RESPONSE_LIMIT_REACHED"
	CodeResponseLimitByCustomer     = "FORM_RESPONSE_LIMIT_BY_CUSTOMER_REACHED"
	CodeFormSoldOut                 = "FORM_SOLD_OUT"
	CodeFormOptionUnavailable       = "FORM_OPTION_UNAVAILABLE"
	CodeMultipleInventorySelections = "MULTIPLE_INVENTORY_SELECTIONS"
	CodeUnknownFieldsRejected       = "UNKNOWN_FIELDS_NOT_ALLOWED"
)

// AccessError is a typed quota-validation failure.
type AccessError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AccessError) Error() string { return e.Code + ": " + e.Message }

// InventoryError is a typed inventory-validation failure.
type InventoryError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *InventoryError) Error() string { return e.Code + ": " + e.Message }
