package editor

import "github.com/featherform/featherform/internal/domain/form"

// Action is one editor transition. Reduce applies it without side effects.
type Action interface {
	isAction()
}

// CreateBlock appends a new draft block. The caller allocates DraftID from
// a DraftAllocator.
type CreateBlock struct {
	DraftID string
	Type    form.BlockType
}

// ResolveBlock replaces a draft block with its persisted row and rewrites
// every parent reference that pointed at the draft id. Resolving an id that
// is no longer present is a no-op.
type ResolveBlock struct {
	DraftID string
	Block   Block
}

type DeleteBlock struct {
	BlockID string
}

// SortBlock repositions BlockID at OverID's slot (array-move semantics) and
// recomputes its parent from the nearest preceding section or group.
type SortBlock struct {
	BlockID string
	OverID  string
}

// BindBlockField points a field block at another field definition,
// returning the previously bound field to the available pool.
type BindBlockField struct {
	BlockID string
	FieldID string
}

type SetBlockTitle struct {
	BlockID   string
	TitleHTML string
}

type SetBlockDescription struct {
	BlockID         string
	DescriptionHTML string
}

// SetBlockBody applies only to html blocks; edits against any other block
// type are silently ignored.
type SetBlockBody struct {
	BlockID  string
	BodyHTML string
}

// SetBlockSrc applies only to blocks of the matching media type.
type SetBlockSrc struct {
	BlockID string
	Type    form.BlockType
	Src     string
}

// SaveField upserts a field definition. On create, a focused unbound field
// block consumes the new field before it reaches the available pool.
type SaveField struct {
	Field FieldDef
}

type DeleteField struct {
	FieldID string
}

type FocusField struct {
	FieldID string
}

type OpenFieldPanel struct {
	Open    bool
	FieldID string
}

func (CreateBlock) isAction()         {}
func (ResolveBlock) isAction()        {}
func (DeleteBlock) isAction()         {}
func (SortBlock) isAction()           {}
func (BindBlockField) isAction()      {}
func (SetBlockTitle) isAction()       {}
func (SetBlockDescription) isAction() {}
func (SetBlockBody) isAction()        {}
func (SetBlockSrc) isAction()         {}
func (SaveField) isAction()           {}
func (DeleteField) isAction()         {}
func (FocusField) isAction()          {}
func (OpenFieldPanel) isAction()      {}
