// Package formlink builds the outcome-page URLs a submission can redirect to.
package formlink

import (
	"net/url"
	"strings"
)

// Outcome is one of the navigable result pages of a form.
type Outcome string

const (
	OutcomeComplete         Outcome = "complete"
	OutcomeBadRequest       Outcome = "badrequest"
	OutcomeAlreadyResponded Outcome = "alreadyresponded"
	OutcomeFormClosed       Outcome = "formclosed"
	OutcomeFormSoldOut      Outcome = "formsoldout"
	OutcomeOptionSoldOut    Outcome = "formoptionsoldout"
)

// Build returns "<host>/d/e/<formID>/<outcome>" with the given query params.
func Build(host, formID string, outcome Outcome, params map[string]string) string {
	var b strings.Builder
	b.WriteString(strings.TrimSuffix(host, "/"))
	b.WriteString("/d/e/")
	b.WriteString(formID)
	b.WriteString("/")
	b.WriteString(string(outcome))
	if len(params) > 0 {
		q := url.Values{}
		for k, v := range params {
			q.Set(k, v)
		}
		b.WriteString("?")
		b.WriteString(q.Encode())
	}
	return b.String()
}
