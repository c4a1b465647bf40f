package editor

import (
	"errors"
	"testing"
	"time"

	"github.com/featherform/featherform/internal/domain/form"
	"github.com/featherform/featherform/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSession(t *testing.T, fields []form.Field, blocks []form.Block) (*Session, *mock.MockBlockRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	repo := mock.NewMockBlockRepo(ctrl)
	return NewSession("form-1", repo, fields, blocks), repo
}

func waitEvent(t *testing.T, events <-chan SyncEvent, kind EventKind) SyncEvent {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev.Kind == kind {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s", kind)
			return SyncEvent{}
		}
	}
}

func TestNewSession_SeedsAvailablePoolWithUnboundFields(t *testing.T) {
	fields := []form.Field{
		{ID: "f1", FormID: "form-1", Name: "email"},
		{ID: "f2", FormID: "form-1", Name: "name"},
	}
	blocks := []form.Block{
		{ID: "b1", FormID: "form-1", Type: form.BlockTypeField, FormFieldID: strPtr("f1")},
	}
	session, _ := setupSession(t, fields, blocks)

	state := session.State()
	require.Len(t, state.Blocks, 1)
	assert.Equal(t, StagePersisted, state.Blocks[0].Stage)
	assert.Equal(t, []string{"f2"}, state.AvailableFieldIDs)
}

func TestSession_CreateBlock_PersistsAndResolves(t *testing.T) {
	session, repo := setupSession(t, nil, nil)
	events, unsubscribe := session.Subscribe()
	defer unsubscribe()

	repo.EXPECT().CreateBlock(gomock.Any()).
		DoAndReturn(func(b *form.Block) error {
			assert.Empty(t, b.ID)
			assert.Equal(t, "form-1", b.FormID)
			b.ID = "blk-9"
			return nil
		})
	// the freshly resolved block is re-synced; last write wins in storage
	repo.EXPECT().UpdateBlock(gomock.Any()).Return(nil).AnyTimes()

	draftID := session.CreateBlock(form.BlockTypeHeader)
	assert.NotEmpty(t, draftID)

	ev := waitEvent(t, events, EventBlockResolved)
	assert.Equal(t, draftID, ev.DraftID)
	assert.Equal(t, "blk-9", ev.BlockID)
	assert.Equal(t, "form-1", ev.FormID)

	state := session.State()
	require.Len(t, state.Blocks, 1)
	assert.Equal(t, "blk-9", state.Blocks[0].ID)
	assert.Equal(t, StagePersisted, state.Blocks[0].Stage)
}

func TestSession_CreateBlockFailure_RollsBackDraft(t *testing.T) {
	session, repo := setupSession(t, nil, nil)
	events, unsubscribe := session.Subscribe()
	defer unsubscribe()

	repo.EXPECT().CreateBlock(gomock.Any()).Return(errors.New("insert failed"))

	draftID := session.CreateBlock(form.BlockTypeHeader)

	ev := waitEvent(t, events, EventBlockCreateError)
	assert.Equal(t, draftID, ev.DraftID)
	assert.Equal(t, "insert failed", ev.Error)

	assert.Empty(t, session.State().Blocks)
}

func TestSession_ContentEdit_SyncsPersistedBlock(t *testing.T) {
	blocks := []form.Block{
		{ID: "b1", FormID: "form-1", Type: form.BlockTypeHeader, TitleHTML: "old"},
	}
	session, repo := setupSession(t, nil, blocks)
	events, unsubscribe := session.Subscribe()
	defer unsubscribe()

	repo.EXPECT().UpdateBlock(gomock.Any()).
		DoAndReturn(func(b *form.Block) error {
			assert.Equal(t, "b1", b.ID)
			assert.Equal(t, "new", b.TitleHTML)
			return nil
		})

	state := session.Dispatch(SetBlockTitle{BlockID: "b1", TitleHTML: "new"})
	assert.Equal(t, "new", state.Blocks[0].TitleHTML)

	ev := waitEvent(t, events, EventBlockSynced)
	assert.Equal(t, "b1", ev.BlockID)
}

func TestSession_SyncFailure_KeepsOptimisticState(t *testing.T) {
	blocks := []form.Block{
		{ID: "b1", FormID: "form-1", Type: form.BlockTypeHeader, TitleHTML: "old"},
	}
	session, repo := setupSession(t, nil, blocks)
	events, unsubscribe := session.Subscribe()
	defer unsubscribe()

	repo.EXPECT().UpdateBlock(gomock.Any()).Return(errors.New("update failed"))

	session.Dispatch(SetBlockTitle{BlockID: "b1", TitleHTML: "new"})

	ev := waitEvent(t, events, EventBlockSyncError)
	assert.Equal(t, "b1", ev.BlockID)
	// no revert: the edit stays until the next successful sync
	assert.Equal(t, "new", session.State().Blocks[0].TitleHTML)
}

func TestSession_DeleteBlock_SyncsRemoval(t *testing.T) {
	blocks := []form.Block{
		{ID: "b1", FormID: "form-1", Type: form.BlockTypeHeader},
	}
	session, repo := setupSession(t, nil, blocks)
	events, unsubscribe := session.Subscribe()
	defer unsubscribe()

	repo.EXPECT().DeleteBlock("b1").Return(nil)

	session.Dispatch(DeleteBlock{BlockID: "b1"})

	ev := waitEvent(t, events, EventBlockDeleted)
	assert.Equal(t, "b1", ev.BlockID)
	assert.Empty(t, session.State().Blocks)
}

func TestSession_DispatchDuringResolve_DoesNotRepersistDraft(t *testing.T) {
	session, repo := setupSession(t, nil, nil)
	events, unsubscribe := session.Subscribe()
	defer unsubscribe()

	// a second CreateBlock for the same draft would fail the controller
	repo.EXPECT().CreateBlock(gomock.Any()).
		DoAndReturn(func(b *form.Block) error {
			b.ID = "blk-9"
			return nil
		}).Times(1)
	repo.EXPECT().UpdateBlock(gomock.Any()).Return(nil).AnyTimes()

	// dispatch concurrently across the whole persist-then-resolve window
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			session.Dispatch(FocusField{FieldID: "f1"})
		}
	}()

	session.CreateBlock(form.BlockTypeHeader)

	ev := waitEvent(t, events, EventBlockResolved)
	assert.Equal(t, "blk-9", ev.BlockID)
	<-done

	state := session.State()
	require.Len(t, state.Blocks, 1)
	assert.Equal(t, StagePersisted, state.Blocks[0].Stage)
}

func TestSession_DraftParentReference_HeldBackFromStorage(t *testing.T) {
	session, repo := setupSession(t, nil, nil)
	events, unsubscribe := session.Subscribe()
	defer unsubscribe()

	block := make(chan struct{})
	created := make(chan *form.Block, 2)
	repo.EXPECT().CreateBlock(gomock.Any()).
		DoAndReturn(func(b *form.Block) error {
			<-block
			b.ID = "blk-" + string(b.Type)
			created <- b
			return nil
		}).Times(2)
	repo.EXPECT().UpdateBlock(gomock.Any()).Return(nil).AnyTimes()

	sectionDraft := session.CreateBlock(form.BlockTypeSection)
	headerDraft := session.CreateBlock(form.BlockTypeHeader)

	// the header nests under the still-unpersisted section draft in memory
	state := session.State()
	hdr := state.blockByID(headerDraft)
	require.NotNil(t, hdr)
	require.NotNil(t, hdr.ParentID)
	assert.Equal(t, sectionDraft, *hdr.ParentID)

	close(block)
	first := <-created
	second := <-created

	// neither stored row may reference a draft id
	assert.Nil(t, first.ParentID)
	assert.Nil(t, second.ParentID)

	waitEvent(t, events, EventBlockResolved)
	waitEvent(t, events, EventBlockResolved)
}
