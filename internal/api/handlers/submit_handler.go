package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/featherform/featherform/config"
	"github.com/featherform/featherform/internal/application"
	"github.com/featherform/featherform/pkg/formlink"
	"github.com/featherform/featherform/pkg/httputil"
	"github.com/featherform/featherform/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type SubmitHandler struct {
	svc *application.SubmissionService
}

func NewSubmitHandler(svc *application.SubmissionService) *SubmitHandler {
	return &SubmitHandler{svc: svc}
}

// SubmitGET decodes query parameters as field values.
func (h *SubmitHandler) SubmitGET(c *gin.Context) {
	formID := c.Param("id")
	entries := url.Values(c.Request.URL.Query())

	hasUserKey := false
	for key := range entries {
		if !strings.HasPrefix(key, application.SystemKeyPrefix) {
			hasUserKey = true
			break
		}
	}
	if !hasUserKey {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "You must submit form with query params"})
		return
	}

	h.submit(c, formID, entries)
}

// SubmitPOST decodes a multipart or url-encoded form body.
func (h *SubmitHandler) SubmitPOST(c *gin.Context) {
	formID := c.Param("id")

	contentType := c.ContentType()
	var err error
	if strings.HasPrefix(contentType, "multipart/form-data") {
		err = c.Request.ParseMultipartForm(32 << 20)
	} else {
		err = c.Request.ParseForm()
	}
	if err != nil {
		log.Error().Err(err).Str("form_id", formID).Msg("failed to parse submission body")
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "You must submit form with formdata attached"})
		return
	}

	h.submit(c, formID, url.Values(c.Request.PostForm))
}

func (h *SubmitHandler) submit(c *gin.Context, formID string, entries url.Values) {
	meta := httputil.MetaFromRequest(c.Request)

	result, err := h.svc.Submit(formID, entries, meta)
	if err != nil {
		log.Error().Err(err).Str("form_id", formID).Msg("submission failed")
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	switch result.Kind {
	case application.ResultRedirect:
		c.Redirect(http.StatusMovedPermanently, formlink.Build(config.Host, formID, result.Outcome, result.OutcomeParams))
	case application.ResultRedirectURI:
		c.Redirect(http.StatusMovedPermanently, result.RedirectURI)
	case application.ResultError:
		c.JSON(result.Status, *result.ErrorBody)
	default:
		c.JSON(http.StatusOK, *result.Body)
	}
}
