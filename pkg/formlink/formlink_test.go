package formlink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild_NoParams(t *testing.T) {
	got := Build("https://forms.example.com", "form-1", OutcomeAlreadyResponded, nil)
	assert.Equal(t, "https://forms.example.com/d/e/form-1/alreadyresponded", got)
}

func TestBuild_WithParams(t *testing.T) {
	got := Build("https://forms.example.com", "form-1", OutcomeComplete, map[string]string{"rid": "resp-1"})
	assert.Equal(t, "https://forms.example.com/d/e/form-1/complete?rid=resp-1", got)
}

func TestBuild_TrimsTrailingSlash(t *testing.T) {
	got := Build("https://forms.example.com/", "form-1", OutcomeFormClosed, nil)
	assert.Equal(t, "https://forms.example.com/d/e/form-1/formclosed", got)
}

func TestBuild_EncodesParams(t *testing.T) {
	got := Build("https://forms.example.com", "form-1", OutcomeBadRequest, map[string]string{
		"error": "MISSING_REQUIRED_HIDDEN_FIELDS",
	})
	assert.Equal(t, "https://forms.example.com/d/e/form-1/badrequest?error=MISSING_REQUIRED_HIDDEN_FIELDS", got)
}
