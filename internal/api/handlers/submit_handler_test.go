package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/featherform/featherform/config"
	"github.com/featherform/featherform/internal/application"
	"github.com/featherform/featherform/internal/domain/customer"
	"github.com/featherform/featherform/internal/domain/form"
	"github.com/featherform/featherform/internal/repository"
	"github.com/featherform/featherform/internal/repository/mock"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type submitRepoMocks struct {
	form     *mock.MockFormRepo
	customer *mock.MockCustomerRepo
	response *mock.MockResponseRepo
}

func setupSubmitRouter(t *testing.T) (*gin.Engine, submitRepoMocks) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := submitRepoMocks{
		form:     mock.NewMockFormRepo(ctrl),
		customer: mock.NewMockCustomerRepo(ctrl),
		response: mock.NewMockResponseRepo(ctrl),
	}
	repos := &repository.Repos{
		Form:      m.form,
		Customer:  m.customer,
		Response:  m.response,
		Inventory: mock.NewMockInventoryRepo(ctrl),
	}
	svc := application.NewSubmissionService(
		repos,
		application.NewCustomerService(repos),
		application.NewAccessService(repos),
		application.NewInventoryService(repos),
	)
	h := NewSubmitHandler(svc)

	router := gin.New()
	router.GET("/v1/submit/:id", h.SubmitGET)
	router.POST("/v1/submit/:id", h.SubmitPOST)
	return router, m
}

func TestSubmitGET_WithoutUserKeys_BadRequest(t *testing.T) {
	router, _ := setupSubmitRouter(t)

	for _, target := range []string{
		"/v1/submit/form-1",
		"/v1/submit/form-1?" + application.SystemKeyFingerprintID + "=fp-1",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, target, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Contains(t, w.Body.String(), "query params")
	}
}

func TestSubmitGET_UnknownForm_NotFound(t *testing.T) {
	router, m := setupSubmitRouter(t)

	m.form.EXPECT().GetFormReference("nope").Return(nil, gorm.ErrRecordNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/submit/nope?email=a%40b.c", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitPOST_PolicyFailure_RedirectsToOutcomePage(t *testing.T) {
	router, m := setupSubmitRouter(t)
	config.Host = "https://forms.example.com"

	ref := &form.Form{ID: "form-1", ProjectID: 7, IsForceClosed: true}
	m.form.EXPECT().GetFormReference("form-1").Return(ref, nil)
	m.customer.EXPECT().UpsertOnFingerprint(gomock.Any()).
		Return(&customer.Customer{UID: "cust-1"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/submit/form-1",
		strings.NewReader("email=a%40b.c"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusMovedPermanently, w.Code)
	location := w.Header().Get("Location")
	assert.True(t, strings.HasPrefix(location, "https://forms.example.com/d/e/form-1/formclosed"), location)
}
