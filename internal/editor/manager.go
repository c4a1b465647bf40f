package editor

import (
	"sync"

	"github.com/featherform/featherform/internal/repository"
)

// Manager hands out one Session per form, seeding it from storage on first
// access.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	repos    *repository.Repos
}

func NewManager(repos *repository.Repos) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		repos:    repos,
	}
}

func (m *Manager) Get(formID string) (*Session, error) {
	m.mu.Lock()
	if s, ok := m.sessions[formID]; ok {
		m.mu.Unlock()
		return s, nil
	}
	m.mu.Unlock()

	// seed outside the lock; concurrent first access may race, first
	// stored session wins
	fields, err := m.repos.Form.ListFieldsByForm(formID)
	if err != nil {
		return nil, err
	}
	blocks, err := m.repos.Block.ListBlocksByForm(formID)
	if err != nil {
		return nil, err
	}
	session := NewSession(formID, m.repos.Block, fields, blocks)

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[formID]; ok {
		return s, nil
	}
	m.sessions[formID] = session
	return session, nil
}
