package form

type CreateFormDTO struct {
	ProjectID   uint   `json:"project_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type UpdateFormSettingsDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`

	UnknownFieldHandlingStrategy *UnknownFieldStrategy `json:"unknown_field_handling_strategy"`

	IsMaxFormResponsesInTotalEnabled    *bool `json:"is_max_form_responses_in_total_enabled"`
	MaxFormResponsesInTotal             *int  `json:"max_form_responses_in_total"`
	IsMaxFormResponsesByCustomerEnabled *bool `json:"is_max_form_responses_by_customer_enabled"`
	MaxFormResponsesByCustomer          *int  `json:"max_form_responses_by_customer"`

	IsForceClosed *bool `json:"is_force_closed"`

	IsEndingPageEnabled  *bool   `json:"is_ending_page_enabled"`
	EndingPageTemplateID *string `json:"ending_page_template_id"`

	IsRedirectAfterResponseURIEnabled *bool   `json:"is_redirect_after_response_uri_enabled"`
	RedirectAfterResponseURI          *string `json:"redirect_after_response_uri"`
}

type SaveFieldDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name" binding:"required"`
	Label       string          `json:"label"`
	Type        FieldType       `json:"type" binding:"required"`
	Required    bool            `json:"required"`
	Placeholder string          `json:"placeholder"`
	HelpText    string          `json:"help_text"`
	Pattern     *string         `json:"pattern"`
	Options     []SaveOptionDTO `json:"options"`
}

type SaveOptionDTO struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Value    string `json:"value" binding:"required"`
	Index    int    `json:"index"`
	Disabled bool   `json:"disabled"`
}
