package editor

import (
	"testing"

	"github.com/featherform/featherform/internal/domain/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func rootBlocks(ids ...string) []Block {
	blocks := make([]Block, 0, len(ids))
	for i, id := range ids {
		blocks = append(blocks, Block{
			ID: id, Stage: StagePersisted, FormID: "form-1",
			Type: form.BlockTypeHeader, LocalIndex: i,
		})
	}
	return blocks
}

func rootSections(s State) []Block {
	var out []Block
	for _, b := range s.Blocks {
		if b.Type == form.BlockTypeSection && b.ParentID == nil {
			out = append(out, b)
		}
	}
	return out
}

// --------------------- CreateBlock ---------------------

func TestCreateBlock_FirstSectionAdoptsExistingBlocks(t *testing.T) {
	s := State{FormID: "form-1", Blocks: rootBlocks("b1", "b2")}

	next := Reduce(s, CreateBlock{DraftID: "draft-1", Type: form.BlockTypeSection})

	require.Len(t, next.Blocks, 3)
	require.Len(t, rootSections(next), 1)

	// tree order: the section leads, adopted blocks follow
	assert.Equal(t, "draft-1", next.Blocks[0].ID)
	assert.Equal(t, StageDraft, next.Blocks[0].Stage)
	for _, b := range next.Blocks[1:] {
		require.NotNil(t, b.ParentID)
		assert.Equal(t, "draft-1", *b.ParentID)
	}
	for i, b := range next.Blocks {
		assert.Equal(t, i, b.LocalIndex)
	}
}

func TestCreateBlock_SecondSectionDoesNotReadopt(t *testing.T) {
	s := State{FormID: "form-1", Blocks: rootBlocks("b1")}

	s = Reduce(s, CreateBlock{DraftID: "sec-1", Type: form.BlockTypeSection})
	s = Reduce(s, CreateBlock{DraftID: "sec-2", Type: form.BlockTypeSection})

	// both sections stay at root; the second must not re-adopt anything
	require.Len(t, rootSections(s), 2)
	b1 := s.Blocks[1]
	assert.Equal(t, "b1", b1.ID)
	require.NotNil(t, b1.ParentID)
	assert.Equal(t, "sec-1", *b1.ParentID)
}

func TestCreateBlock_NestsUnderLatestRootSection(t *testing.T) {
	s := State{FormID: "form-1"}
	s = Reduce(s, CreateBlock{DraftID: "sec-1", Type: form.BlockTypeSection})
	s = Reduce(s, CreateBlock{DraftID: "sec-2", Type: form.BlockTypeSection})

	next := Reduce(s, CreateBlock{DraftID: "draft-h", Type: form.BlockTypeHeader})

	b := next.Blocks[len(next.Blocks)-1]
	assert.Equal(t, "draft-h", b.ID)
	require.NotNil(t, b.ParentID)
	assert.Equal(t, "sec-2", *b.ParentID)
	assert.Equal(t, defaultHeaderTitle, b.TitleHTML)
}

func TestCreateBlock_FieldBindsFromAvailablePool(t *testing.T) {
	s := State{
		FormID:            "form-1",
		Fields:            []FieldDef{{ID: "f1", Name: "email"}, {ID: "f2", Name: "name"}},
		AvailableFieldIDs: []string{"f1", "f2"},
	}

	next := Reduce(s, CreateBlock{DraftID: "draft-1", Type: form.BlockTypeField})

	b := next.Blocks[0]
	require.NotNil(t, b.FormFieldID)
	assert.Equal(t, "f1", *b.FormFieldID)
	assert.Equal(t, []string{"f2"}, next.AvailableFieldIDs)
	assert.False(t, next.IsFieldPanelOpen)
	assert.Equal(t, "draft-1", next.FocusBlockID)
}

func TestCreateBlock_FieldWithoutPoolOpensPanel(t *testing.T) {
	s := State{FormID: "form-1"}

	next := Reduce(s, CreateBlock{DraftID: "draft-1", Type: form.BlockTypeField})

	assert.Nil(t, next.Blocks[0].FormFieldID)
	assert.True(t, next.IsFieldPanelOpen)
	assert.Equal(t, "draft-1", next.FocusBlockID)
}

func TestCreateBlock_HTMLGetsDefaultBody(t *testing.T) {
	next := Reduce(State{FormID: "form-1"}, CreateBlock{DraftID: "draft-1", Type: form.BlockTypeHTML})
	assert.Equal(t, defaultHTMLBody, next.Blocks[0].BodyHTML)
}

func TestCreateBlock_MediaBlocksGetDefaultSrc(t *testing.T) {
	next := Reduce(State{FormID: "form-1"}, CreateBlock{DraftID: "draft-1", Type: form.BlockTypeImage})
	assert.Equal(t, defaultImageSrc, next.Blocks[0].Src)

	next = Reduce(State{FormID: "form-1"}, CreateBlock{DraftID: "draft-2", Type: form.BlockTypeVideo})
	assert.Equal(t, defaultVideoSrc, next.Blocks[0].Src)
}

// --------------------- ResolveBlock ---------------------

func TestResolveBlock_SwapsIDAndRewritesReferences(t *testing.T) {
	s := State{FormID: "form-1", Blocks: []Block{
		{ID: "draft-1", Stage: StageDraft, Type: form.BlockTypeSection, LocalIndex: 0},
		{ID: "b2", Stage: StagePersisted, Type: form.BlockTypeHeader, ParentID: strPtr("draft-1"), LocalIndex: 1},
	}, FocusBlockID: "draft-1"}

	next := Reduce(s, ResolveBlock{DraftID: "draft-1", Block: Block{
		ID: "blk-9", Type: form.BlockTypeSection,
	}})

	assert.Equal(t, "blk-9", next.Blocks[0].ID)
	assert.Equal(t, StagePersisted, next.Blocks[0].Stage)
	assert.Equal(t, 0, next.Blocks[0].LocalIndex)
	require.NotNil(t, next.Blocks[1].ParentID)
	assert.Equal(t, "blk-9", *next.Blocks[1].ParentID)
	assert.Equal(t, "blk-9", next.FocusBlockID)
}

func TestResolveBlock_Idempotent(t *testing.T) {
	s := State{FormID: "form-1", Blocks: []Block{
		{ID: "draft-1", Stage: StageDraft, Type: form.BlockTypeHeader},
	}}
	resolve := ResolveBlock{DraftID: "draft-1", Block: Block{ID: "blk-9", Type: form.BlockTypeHeader}}

	once := Reduce(s, resolve)
	twice := Reduce(once, resolve)

	assert.Equal(t, once, twice)
}

func TestResolveBlock_AfterDelete_IsNoop(t *testing.T) {
	s := State{FormID: "form-1", Blocks: []Block{
		{ID: "draft-1", Stage: StageDraft, Type: form.BlockTypeHeader},
	}}

	s = Reduce(s, DeleteBlock{BlockID: "draft-1"})
	next := Reduce(s, ResolveBlock{DraftID: "draft-1", Block: Block{ID: "blk-9"}})

	assert.Empty(t, next.Blocks)
}

// --------------------- DeleteBlock ---------------------

func TestDeleteBlock_ReturnsFieldToPool(t *testing.T) {
	s := State{FormID: "form-1",
		Blocks: []Block{
			{ID: "b1", Type: form.BlockTypeField, FormFieldID: strPtr("f1")},
		},
		Fields:            []FieldDef{{ID: "f1"}},
		AvailableFieldIDs: nil,
	}

	next := Reduce(s, DeleteBlock{BlockID: "b1"})

	assert.Empty(t, next.Blocks)
	assert.Equal(t, []string{"f1"}, next.AvailableFieldIDs)
}

func TestDeleteBlock_UnknownID_IsNoop(t *testing.T) {
	s := State{FormID: "form-1", Blocks: rootBlocks("b1")}
	next := Reduce(s, DeleteBlock{BlockID: "nope"})
	assert.Equal(t, s, next)
}

// --------------------- SortBlock ---------------------

func sectionedState() State {
	return State{FormID: "form-1", Blocks: []Block{
		{ID: "sec-1", Type: form.BlockTypeSection, LocalIndex: 0},
		{ID: "a", Type: form.BlockTypeHeader, ParentID: strPtr("sec-1"), LocalIndex: 1},
		{ID: "b", Type: form.BlockTypeHeader, ParentID: strPtr("sec-1"), LocalIndex: 2},
		{ID: "sec-2", Type: form.BlockTypeSection, LocalIndex: 3},
		{ID: "c", Type: form.BlockTypeHeader, ParentID: strPtr("sec-2"), LocalIndex: 4},
	}}
}

func TestSortBlock_MoveAcrossSectionsReparents(t *testing.T) {
	s := sectionedState()

	next := Reduce(s, SortBlock{BlockID: "a", OverID: "c"})

	ids := make([]string, 0, len(next.Blocks))
	for _, b := range next.Blocks {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []string{"sec-1", "b", "sec-2", "c", "a"}, ids)

	moved := next.Blocks[4]
	assert.Equal(t, "a", moved.ID)
	require.NotNil(t, moved.ParentID)
	assert.Equal(t, "sec-2", *moved.ParentID)

	for i, b := range next.Blocks {
		assert.Equal(t, i, b.LocalIndex)
	}
}

func TestSortBlock_OverRoot_IsNoop(t *testing.T) {
	s := sectionedState()
	next := Reduce(s, SortBlock{BlockID: "a", OverID: "root"})
	assert.Equal(t, s, next)
}

func TestSortBlock_EscapingAllSections_RevertsCleanly(t *testing.T) {
	s := sectionedState()

	// moving above the first section would leave the block unparented
	next := Reduce(s, SortBlock{BlockID: "a", OverID: "sec-1"})

	// the rejected move must leave no trace, local indexes included
	assert.Equal(t, s, next)
}

func TestSortBlock_WithoutSections_MovesToRoot(t *testing.T) {
	s := State{FormID: "form-1", Blocks: rootBlocks("b1", "b2", "b3")}

	next := Reduce(s, SortBlock{BlockID: "b3", OverID: "b1"})

	ids := make([]string, 0, len(next.Blocks))
	for _, b := range next.Blocks {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []string{"b3", "b1", "b2"}, ids)
	assert.Nil(t, next.Blocks[0].ParentID)
}

// --------------------- Field pool ---------------------

func TestBindBlockField_SwapsPoolMembership(t *testing.T) {
	s := State{FormID: "form-1",
		Blocks: []Block{
			{ID: "b1", Type: form.BlockTypeField, FormFieldID: strPtr("f1")},
		},
		Fields:            []FieldDef{{ID: "f1"}, {ID: "f2"}},
		AvailableFieldIDs: []string{"f2"},
	}

	next := Reduce(s, BindBlockField{BlockID: "b1", FieldID: "f2"})

	require.NotNil(t, next.Blocks[0].FormFieldID)
	assert.Equal(t, "f2", *next.Blocks[0].FormFieldID)
	assert.Equal(t, []string{"f1"}, next.AvailableFieldIDs)
}

func TestSaveField_NewFieldConsumedByFocusedBlock(t *testing.T) {
	s := State{FormID: "form-1",
		Blocks: []Block{
			{ID: "b1", Type: form.BlockTypeField},
		},
		FocusBlockID: "b1",
	}

	next := Reduce(s, SaveField{Field: FieldDef{ID: "f1", Name: "email", Type: form.FieldTypeEmail}})

	require.Len(t, next.Fields, 1)
	require.NotNil(t, next.Blocks[0].FormFieldID)
	assert.Equal(t, "f1", *next.Blocks[0].FormFieldID)
	assert.Empty(t, next.AvailableFieldIDs)
}

func TestSaveField_NewFieldWithoutFocusedBlock_EntersPool(t *testing.T) {
	s := State{FormID: "form-1"}

	next := Reduce(s, SaveField{Field: FieldDef{ID: "f1", Name: "email"}})

	assert.Equal(t, []string{"f1"}, next.AvailableFieldIDs)
}

func TestSaveField_ExistingFieldUpdatedInPlace(t *testing.T) {
	s := State{FormID: "form-1",
		Fields:            []FieldDef{{ID: "f1", Name: "email", Required: false}},
		AvailableFieldIDs: []string{"f1"},
	}

	next := Reduce(s, SaveField{Field: FieldDef{ID: "f1", Name: "email", Required: true}})

	require.Len(t, next.Fields, 1)
	assert.True(t, next.Fields[0].Required)
	// updates never re-enter the pool
	assert.Equal(t, []string{"f1"}, next.AvailableFieldIDs)
}

func TestDeleteField_UnbindsBlocksAndLeavesPool(t *testing.T) {
	s := State{FormID: "form-1",
		Blocks: []Block{
			{ID: "b1", Type: form.BlockTypeField, FormFieldID: strPtr("f1")},
		},
		Fields:            []FieldDef{{ID: "f1"}, {ID: "f2"}},
		AvailableFieldIDs: []string{"f2", "f1"},
	}

	next := Reduce(s, DeleteField{FieldID: "f1"})

	require.Len(t, next.Fields, 1)
	assert.Equal(t, "f2", next.Fields[0].ID)
	assert.Nil(t, next.Blocks[0].FormFieldID)
	assert.Equal(t, []string{"f2"}, next.AvailableFieldIDs)
}

// --------------------- Purity ---------------------

func TestReduce_DoesNotMutateInput(t *testing.T) {
	s := sectionedState()
	snapshot := s.clone()

	_ = Reduce(s, SortBlock{BlockID: "a", OverID: "c"})
	_ = Reduce(s, DeleteBlock{BlockID: "a"})
	_ = Reduce(s, SetBlockTitle{BlockID: "sec-1", TitleHTML: "<h1>x</h1>"})

	assert.Equal(t, snapshot.Blocks, s.Blocks)
}
