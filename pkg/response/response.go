package response

type ErrorResponse struct {
	Error string `json:"error"`
	Info  any    `json:"info,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SuccessResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// SubmissionResponse is the JSON body returned when a submission does not
// end in a redirect.
type SubmissionResponse struct {
	Data    any    `json:"data"`
	Raw     any    `json:"raw"`
	Warning any    `json:"warning"`
	Info    any    `json:"info"`
	Error   any    `json:"error"`
}
