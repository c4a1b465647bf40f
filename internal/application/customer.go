package application

import (
	"errors"
	"time"

	"github.com/featherform/featherform/internal/domain/customer"
	"github.com/featherform/featherform/internal/repository"
	"github.com/featherform/featherform/pkg/uuidutil"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
)

// CustomerHints are the identity hints carried by system keys.
type CustomerHints struct {
	Email                string
	FingerprintVisitorID string
}

type CustomerService struct {
	repos *repository.Repos
}

func NewCustomerService(repos *repository.Repos) *CustomerService {
	return &CustomerService{repos: repos}
}

// UpsertWith resolves-or-creates a customer for a submission. When a
// well-formed UUIDv4 hint is present the upsert is keyed on
// (project_id, uuid); conflicts are reconciled best-effort through an
// ordered list of narrowing merge strategies:
//
//  1. upsert on (project_id, uuid)
//  2. on unique violation, upsert on (project_id, fingerprint), merging an
//     existing fingerprint-only customer
//  3. on a second violation, drop the fingerprint and upsert on
//     (project_id, uuid) alone
//
// If every strategy fails the last error propagates and the submission
// aborts.
func (s *CustomerService) UpsertWith(projectID uint, uuidHint string, hints CustomerHints) (*customer.Customer, error) {
	payload := customer.Customer{
		ProjectID:  projectID,
		LastSeenAt: time.Now().UTC(),
	}
	if hints.Email != "" {
		payload.Email = ptr(hints.Email)
	}
	if hints.FingerprintVisitorID != "" {
		payload.FingerprintVisitorID = ptr(hints.FingerprintVisitorID)
	}

	if uuidHint == "" || !uuidutil.IsUUIDv4(uuidHint) {
		return s.repos.Customer.UpsertOnFingerprint(&payload)
	}

	payload.UUID = ptr(uuidHint)

	c, err := s.repos.Customer.UpsertOnUUID(&payload)
	if err == nil {
		return c, nil
	}
	if !isUniqueViolation(err) {
		return nil, err
	}
	log.Warn().Uint("project_id", projectID).Err(err).
		Msg("customer upsert conflict on uuid, retrying on fingerprint")

	c, err = s.repos.Customer.UpsertOnFingerprint(&payload)
	if err == nil {
		return c, nil
	}
	if !isUniqueViolation(err) {
		return nil, err
	}
	log.Warn().Uint("project_id", projectID).Err(err).
		Msg("customer upsert conflict on fingerprint, retrying on uuid without fingerprint")

	payload.FingerprintVisitorID = nil
	return s.repos.Customer.UpsertOnUUID(&payload)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func ptr[T any](v T) *T { return &v }
