// Package editor maintains the in-memory block tree of a form layout.
// Reduce is a pure transition function over State; the Session effect layer
// reconciles state changes with persistent storage asynchronously.
package editor

import (
	"fmt"
	"sync/atomic"

	"github.com/featherform/featherform/internal/domain/form"
)

// Stage is a block's lifecycle phase. A draft block exists only in memory
// until the effect layer persists it and resolves the permanent id.
type Stage int

const (
	StageDraft Stage = iota
	StagePersisted
)

// Block is one node of the flat ordered layout tree as held by the editor.
type Block struct {
	ID     string
	Stage  Stage
	FormID string
	Type   form.BlockType

	ParentID    *string
	LocalIndex  int
	FormFieldID *string

	TitleHTML       string
	DescriptionHTML string
	BodyHTML        string
	Src             string
}

// FieldDef is a field definition as edited in the panel.
type FieldDef struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	Label    string               `json:"label"`
	Type     form.FieldType       `json:"type"`
	Required bool                 `json:"required"`
	Options  []form.SaveOptionDTO `json:"options"`
}

type State struct {
	FormID string

	Blocks            []Block
	Fields            []FieldDef
	AvailableFieldIDs []string

	FocusBlockID     string
	FocusFieldID     string
	IsFieldPanelOpen bool
}

// default content for newly created blocks
const (
	defaultHTMLBody    = "<p></p>"
	defaultHeaderTitle = "Header"
	defaultHeaderDesc  = "Description"
	defaultImageSrc    = "/images/abstract-placeholder.jpg"
	defaultVideoSrc    = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
)

// DraftAllocator hands out process-unique temporary ids for blocks awaiting
// persistence. Draft-ness is tracked by Stage, never by inspecting the id.
type DraftAllocator struct {
	n atomic.Uint64
}

func (a *DraftAllocator) Next() string {
	return fmt.Sprintf("draft-%d", a.n.Add(1))
}

func (s *State) blockByID(id string) *Block {
	for i := range s.Blocks {
		if s.Blocks[i].ID == id {
			return &s.Blocks[i]
		}
	}
	return nil
}

// clone copies the state deeply enough that Reduce can mutate the copy
// without aliasing the previous state's slices.
func (s State) clone() State {
	out := s
	out.Blocks = make([]Block, len(s.Blocks))
	copy(out.Blocks, s.Blocks)
	out.Fields = make([]FieldDef, len(s.Fields))
	copy(out.Fields, s.Fields)
	out.AvailableFieldIDs = make([]string, len(s.AvailableFieldIDs))
	copy(out.AvailableFieldIDs, s.AvailableFieldIDs)
	return out
}
