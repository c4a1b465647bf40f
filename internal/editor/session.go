package editor

import (
	"sync"
	"time"

	"github.com/featherform/featherform/internal/domain/form"
	"github.com/featherform/featherform/internal/repository"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type EventKind string

const (
	EventBlockResolved    EventKind = "block.resolved"
	EventBlockCreateError EventKind = "block.create_error"
	EventBlockSynced      EventKind = "block.synced"
	EventBlockSyncError   EventKind = "block.sync_error"
	EventBlockDeleted     EventKind = "block.deleted"
	EventBlockDeleteError EventKind = "block.delete_error"
)

// SyncEvent describes one reconciliation between editor state and storage.
type SyncEvent struct {
	Kind    EventKind `json:"kind"`
	FormID  string    `json:"form_id"`
	DraftID string    `json:"draft_id,omitempty"`
	BlockID string    `json:"block_id,omitempty"`
	Error   string    `json:"error,omitempty"`
	At      time.Time `json:"at"`
}

// Session owns one form's editor state. Dispatch applies actions through
// the pure reducer and reconciles the resulting structural diff with
// storage through independent, unordered asynchronous writes.
type Session struct {
	mu     sync.Mutex
	formID string
	state  State

	repo     repository.BlockRepo
	drafts   DraftAllocator
	inflight map[string]bool

	subs   map[chan SyncEvent]struct{}
	logger zerolog.Logger
}

func NewSession(formID string, repo repository.BlockRepo, fields []form.Field, blocks []form.Block) *Session {
	state := State{FormID: formID}

	bound := make(map[string]bool)
	for _, b := range blocks {
		state.Blocks = append(state.Blocks, fromModel(b))
		if b.FormFieldID != nil {
			bound[*b.FormFieldID] = true
		}
	}
	for _, f := range fields {
		def := FieldDef{
			ID:       f.ID,
			Name:     f.Name,
			Label:    f.Label,
			Type:     f.Type,
			Required: f.Required,
		}
		for _, o := range f.Options {
			def.Options = append(def.Options, form.SaveOptionDTO{
				ID: o.ID, Label: o.Label, Value: o.Value, Index: o.Index, Disabled: o.Disabled,
			})
		}
		state.Fields = append(state.Fields, def)
		if !bound[f.ID] {
			state.AvailableFieldIDs = append(state.AvailableFieldIDs, f.ID)
		}
	}

	return &Session{
		formID:   formID,
		state:    state,
		repo:     repo,
		inflight: make(map[string]bool),
		subs:     make(map[chan SyncEvent]struct{}),
		logger:   log.With().Str("form_id", formID).Logger(),
	}
}

// State returns a snapshot safe for concurrent readers.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// CreateBlock allocates a draft id and dispatches the creation.
func (s *Session) CreateBlock(t form.BlockType) string {
	id := s.drafts.Next()
	s.Dispatch(CreateBlock{DraftID: id, Type: t})
	return id
}

// Dispatch applies an action and kicks off any persistence the transition
// calls for. Writes for different blocks are independent and unordered;
// last write wins at the storage layer.
func (s *Session) Dispatch(action Action) State {
	return s.dispatch(action, "")
}

// dispatch additionally clears a finished draft's inflight mark inside the
// same critical section as the state transition, so a concurrent dispatch
// cannot observe the draft as both unresolved and not inflight and persist
// it a second time.
func (s *Session) dispatch(action Action, doneDraftID string) State {
	s.mu.Lock()
	if doneDraftID != "" {
		delete(s.inflight, doneDraftID)
	}
	prev := s.state
	next := Reduce(prev, action)
	s.state = next

	pending := s.pendingDraftsLocked(next)
	updates := diffPersisted(prev, next)
	removed := removedPersisted(prev, next)
	snapshot := next.clone()
	s.mu.Unlock()

	for _, b := range pending {
		go s.persistDraft(b)
	}
	for _, b := range updates {
		go s.syncUpdate(b)
	}
	for _, id := range removed {
		go s.syncDelete(id)
	}

	return snapshot
}

// Subscribe returns a channel of sync events and a cancel func.
func (s *Session) Subscribe() (<-chan SyncEvent, func()) {
	ch := make(chan SyncEvent, 16)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		delete(s.subs, ch)
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *Session) emit(ev SyncEvent) {
	ev.FormID = s.formID
	ev.At = time.Now().UTC()
	s.mu.Lock()
	for ch := range s.subs {
		select {
		case ch <- ev:
		default: // slow subscriber, drop
		}
	}
	s.mu.Unlock()
}

// pendingDraftsLocked picks the draft blocks not yet being persisted and
// marks them in flight. Caller holds the lock.
func (s *Session) pendingDraftsLocked(next State) []Block {
	var out []Block
	for i := range next.Blocks {
		b := next.Blocks[i]
		if b.Stage != StageDraft || s.inflight[b.ID] {
			continue
		}
		s.inflight[b.ID] = true
		// a parent reference to another draft cannot be stored yet; it is
		// rewritten on that draft's resolve and synced as a later diff
		if b.ParentID != nil {
			if p := next.blockByID(*b.ParentID); p != nil && p.Stage == StageDraft {
				b.ParentID = nil
			}
		}
		out = append(out, b)
	}
	return out
}

func (s *Session) persistDraft(b Block) {
	model := toModel(b)
	model.ID = "" // storage assigns the permanent id
	err := s.repo.CreateBlock(&model)

	if err != nil {
		s.logger.Error().Err(err).Str("draft_id", b.ID).Msg("failed to create block, rolling back")
		s.dispatch(DeleteBlock{BlockID: b.ID}, b.ID)
		s.emit(SyncEvent{Kind: EventBlockCreateError, DraftID: b.ID, Error: err.Error()})
		return
	}

	resolved := fromModel(model)
	s.dispatch(ResolveBlock{DraftID: b.ID, Block: resolved}, b.ID)
	s.emit(SyncEvent{Kind: EventBlockResolved, DraftID: b.ID, BlockID: model.ID})
}

func (s *Session) syncUpdate(b Block) {
	model := toModel(b)
	if err := s.repo.UpdateBlock(&model); err != nil {
		// accepted inconsistency until the next edit; no in-memory revert
		s.logger.Error().Err(err).Str("block_id", b.ID).Msg("failed to sync block update")
		s.emit(SyncEvent{Kind: EventBlockSyncError, BlockID: b.ID, Error: err.Error()})
		return
	}
	s.emit(SyncEvent{Kind: EventBlockSynced, BlockID: b.ID})
}

func (s *Session) syncDelete(id string) {
	if err := s.repo.DeleteBlock(id); err != nil {
		s.logger.Error().Err(err).Str("block_id", id).Msg("failed to delete block")
		s.emit(SyncEvent{Kind: EventBlockDeleteError, BlockID: id, Error: err.Error()})
		return
	}
	s.emit(SyncEvent{Kind: EventBlockDeleted, BlockID: id})
}

// diffPersisted returns persisted blocks whose synced columns changed.
// Parent references to draft blocks are excluded; they sync after resolve.
func diffPersisted(prev, next State) []Block {
	var out []Block
	for i := range next.Blocks {
		b := next.Blocks[i]
		if b.Stage != StagePersisted {
			continue
		}
		if b.ParentID != nil {
			if p := next.blockByID(*b.ParentID); p != nil && p.Stage == StageDraft {
				continue
			}
		}
		var pb *Block
		for j := range prev.Blocks {
			if prev.Blocks[j].ID == b.ID {
				pb = &prev.Blocks[j]
				break
			}
		}
		if pb == nil ||
			b.Type != pb.Type ||
			!equalPtr(b.ParentID, pb.ParentID) ||
			b.LocalIndex != pb.LocalIndex ||
			!equalPtr(b.FormFieldID, pb.FormFieldID) ||
			b.TitleHTML != pb.TitleHTML ||
			b.DescriptionHTML != pb.DescriptionHTML ||
			b.BodyHTML != pb.BodyHTML ||
			b.Src != pb.Src {
			out = append(out, b)
		}
	}
	return out
}

func removedPersisted(prev, next State) []string {
	var out []string
	for i := range prev.Blocks {
		b := prev.Blocks[i]
		if b.Stage != StagePersisted {
			continue
		}
		if next.blockByID(b.ID) == nil {
			out = append(out, b.ID)
		}
	}
	return out
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fromModel(b form.Block) Block {
	return Block{
		ID:              b.ID,
		Stage:           StagePersisted,
		FormID:          b.FormID,
		Type:            b.Type,
		ParentID:        b.ParentID,
		LocalIndex:      b.LocalIndex,
		FormFieldID:     b.FormFieldID,
		TitleHTML:       b.TitleHTML,
		DescriptionHTML: b.DescriptionHTML,
		BodyHTML:        b.BodyHTML,
		Src:             b.Src,
	}
}

func toModel(b Block) form.Block {
	return form.Block{
		ID:              b.ID,
		FormID:          b.FormID,
		Type:            b.Type,
		ParentID:        b.ParentID,
		LocalIndex:      b.LocalIndex,
		FormFieldID:     b.FormFieldID,
		TitleHTML:       b.TitleHTML,
		DescriptionHTML: b.DescriptionHTML,
		BodyHTML:        b.BodyHTML,
		Src:             b.Src,
	}
}
