package application

import (
	"errors"
	"testing"

	"github.com/featherform/featherform/internal/domain/customer"
	"github.com/featherform/featherform/internal/repository"
	"github.com/featherform/featherform/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCustomerServiceMocks(t *testing.T) (*CustomerService, *mock.MockCustomerRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockCustomer := mock.NewMockCustomerRepo(ctrl)
	repos := &repository.Repos{
		Customer: mockCustomer,
	}
	svc := NewCustomerService(repos)
	return svc, mockCustomer
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
}

const validUUID = "f6cf5cd7-6a24-4f4b-9aab-9a3d18a5b4de"

func TestUpsertWith_NoUUIDHint_KeysOnFingerprint(t *testing.T) {
	svc, mockCustomer := setupCustomerServiceMocks(t)

	mockCustomer.EXPECT().UpsertOnFingerprint(gomock.Any()).
		DoAndReturn(func(c *customer.Customer) (*customer.Customer, error) {
			assert.Nil(t, c.UUID)
			require.NotNil(t, c.FingerprintVisitorID)
			assert.Equal(t, "fp-1", *c.FingerprintVisitorID)
			return &customer.Customer{UID: "cust-1"}, nil
		})

	c, err := svc.UpsertWith(7, "", CustomerHints{FingerprintVisitorID: "fp-1"})
	require.NoError(t, err)
	assert.Equal(t, "cust-1", c.UID)
}

func TestUpsertWith_MalformedUUIDHint_KeysOnFingerprint(t *testing.T) {
	svc, mockCustomer := setupCustomerServiceMocks(t)

	mockCustomer.EXPECT().UpsertOnFingerprint(gomock.Any()).
		DoAndReturn(func(c *customer.Customer) (*customer.Customer, error) {
			assert.Nil(t, c.UUID)
			return &customer.Customer{UID: "cust-1"}, nil
		})

	_, err := svc.UpsertWith(7, "not-a-uuid", CustomerHints{FingerprintVisitorID: "fp-1"})
	require.NoError(t, err)
}

func TestUpsertWith_UUIDHint_KeysOnUUID(t *testing.T) {
	svc, mockCustomer := setupCustomerServiceMocks(t)

	mockCustomer.EXPECT().UpsertOnUUID(gomock.Any()).
		DoAndReturn(func(c *customer.Customer) (*customer.Customer, error) {
			require.NotNil(t, c.UUID)
			assert.Equal(t, validUUID, *c.UUID)
			return &customer.Customer{UID: "cust-1"}, nil
		})

	_, err := svc.UpsertWith(7, validUUID, CustomerHints{FingerprintVisitorID: "fp-1"})
	require.NoError(t, err)
}

func TestUpsertWith_UUIDConflict_FallsBackToFingerprint(t *testing.T) {
	svc, mockCustomer := setupCustomerServiceMocks(t)

	mockCustomer.EXPECT().UpsertOnUUID(gomock.Any()).Return(nil, uniqueViolation())
	mockCustomer.EXPECT().UpsertOnFingerprint(gomock.Any()).
		Return(&customer.Customer{UID: "cust-merged"}, nil)

	c, err := svc.UpsertWith(7, validUUID, CustomerHints{FingerprintVisitorID: "fp-1"})
	require.NoError(t, err)
	assert.Equal(t, "cust-merged", c.UID)
}

func TestUpsertWith_DoubleConflict_DropsFingerprint(t *testing.T) {
	svc, mockCustomer := setupCustomerServiceMocks(t)

	mockCustomer.EXPECT().UpsertOnUUID(gomock.Any()).Return(nil, uniqueViolation())
	mockCustomer.EXPECT().UpsertOnFingerprint(gomock.Any()).Return(nil, uniqueViolation())
	mockCustomer.EXPECT().UpsertOnUUID(gomock.Any()).
		DoAndReturn(func(c *customer.Customer) (*customer.Customer, error) {
			assert.Nil(t, c.FingerprintVisitorID)
			require.NotNil(t, c.UUID)
			return &customer.Customer{UID: "cust-1"}, nil
		})

	_, err := svc.UpsertWith(7, validUUID, CustomerHints{FingerprintVisitorID: "fp-1"})
	require.NoError(t, err)
}

func TestUpsertWith_NonUniqueViolation_Propagates(t *testing.T) {
	svc, mockCustomer := setupCustomerServiceMocks(t)

	boom := errors.New("connection refused")
	mockCustomer.EXPECT().UpsertOnUUID(gomock.Any()).Return(nil, boom)

	_, err := svc.UpsertWith(7, validUUID, CustomerHints{})
	assert.ErrorIs(t, err, boom)
}
