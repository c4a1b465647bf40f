package editor

import (
	"github.com/featherform/featherform/internal/domain/form"
)

// Reduce applies one action and returns the next state. It never mutates
// the input and performs no I/O; persistence is the Session's concern.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case CreateBlock:
		return reduceCreateBlock(s, a)
	case ResolveBlock:
		return reduceResolveBlock(s, a)
	case DeleteBlock:
		return reduceDeleteBlock(s, a)
	case SortBlock:
		return reduceSortBlock(s, a)
	case BindBlockField:
		return reduceBindBlockField(s, a)
	case SetBlockTitle:
		next := s.clone()
		if b := next.blockByID(a.BlockID); b != nil {
			b.TitleHTML = a.TitleHTML
		}
		return next
	case SetBlockDescription:
		next := s.clone()
		if b := next.blockByID(a.BlockID); b != nil {
			b.DescriptionHTML = a.DescriptionHTML
		}
		return next
	case SetBlockBody:
		next := s.clone()
		if b := next.blockByID(a.BlockID); b != nil && b.Type == form.BlockTypeHTML {
			b.BodyHTML = a.BodyHTML
		}
		return next
	case SetBlockSrc:
		next := s.clone()
		if b := next.blockByID(a.BlockID); b != nil && b.Type == a.Type &&
			(b.Type == form.BlockTypeImage || b.Type == form.BlockTypeVideo) {
			b.Src = a.Src
		}
		return next
	case SaveField:
		return reduceSaveField(s, a)
	case DeleteField:
		return reduceDeleteField(s, a)
	case FocusField:
		next := s.clone()
		next.FocusFieldID = a.FieldID
		return next
	case OpenFieldPanel:
		next := s.clone()
		next.IsFieldPanelOpen = a.Open
		next.FocusFieldID = a.FieldID
		return next
	default:
		return s
	}
}

func reduceCreateBlock(s State, a CreateBlock) State {
	next := s.clone()

	// non-section blocks nest under the most recently created root section
	var parentID *string
	if a.Type != form.BlockTypeSection {
		if section := latestRootSection(next.Blocks); section != nil {
			id := section.ID
			parentID = &id
		}
	}

	block := Block{
		ID:         a.DraftID,
		Stage:      StageDraft,
		FormID:     s.FormID,
		Type:       a.Type,
		ParentID:   parentID,
		LocalIndex: len(next.Blocks),
	}

	switch a.Type {
	case form.BlockTypeField:
		if len(next.AvailableFieldIDs) > 0 {
			fieldID := next.AvailableFieldIDs[0]
			block.FormFieldID = &fieldID
			next.AvailableFieldIDs = next.AvailableFieldIDs[1:]
		} else {
			// no unassigned field: have the UI open the field editor
			next.FocusFieldID = ""
			next.IsFieldPanelOpen = true
		}
		next.FocusBlockID = block.ID
		next.Blocks = append(next.Blocks, block)

	case form.BlockTypeSection:
		// once any root section exists, nothing else may live at root; the
		// first section adopts every existing block
		if latestRootSection(next.Blocks) == nil {
			id := block.ID
			for i := range next.Blocks {
				next.Blocks[i].ParentID = &id
			}
		}
		next.Blocks = append(next.Blocks, block)
		next.Blocks = treeFlatten(next.Blocks)

	case form.BlockTypeHTML:
		block.BodyHTML = defaultHTMLBody
		next.Blocks = append(next.Blocks, block)

	case form.BlockTypeImage:
		block.Src = defaultImageSrc
		next.Blocks = append(next.Blocks, block)

	case form.BlockTypeVideo:
		block.Src = defaultVideoSrc
		next.Blocks = append(next.Blocks, block)

	case form.BlockTypeHeader:
		block.TitleHTML = defaultHeaderTitle
		block.DescriptionHTML = defaultHeaderDesc
		next.Blocks = append(next.Blocks, block)

	default:
		next.Blocks = append(next.Blocks, block)
	}

	return next
}

func reduceResolveBlock(s State, a ResolveBlock) State {
	idx := -1
	for i := range s.Blocks {
		if s.Blocks[i].ID == a.DraftID {
			idx = i
			break
		}
	}
	// already resolved (or deleted): applying again must change nothing
	if idx == -1 {
		return s
	}

	next := s.clone()

	resolved := a.Block
	resolved.Stage = StagePersisted
	resolved.LocalIndex = next.Blocks[idx].LocalIndex
	next.Blocks[idx] = resolved

	// the draft id may be referenced as another block's parent; rewrite all
	// references together with the resolve
	for i := range next.Blocks {
		if next.Blocks[i].ParentID != nil && *next.Blocks[i].ParentID == a.DraftID {
			id := resolved.ID
			next.Blocks[i].ParentID = &id
		}
	}

	if next.FocusBlockID == a.DraftID {
		next.FocusBlockID = resolved.ID
	}

	return next
}

func reduceDeleteBlock(s State, a DeleteBlock) State {
	next := s.clone()

	var deleted *Block
	kept := next.Blocks[:0]
	for i := range next.Blocks {
		if next.Blocks[i].ID == a.BlockID {
			b := next.Blocks[i]
			deleted = &b
			continue
		}
		kept = append(kept, next.Blocks[i])
	}
	if deleted == nil {
		return s
	}
	next.Blocks = kept

	// a bound field returns to the available pool
	if deleted.FormFieldID != nil {
		next.AvailableFieldIDs = append(next.AvailableFieldIDs, *deleted.FormFieldID)
	}

	return next
}

func reduceSortBlock(s State, a SortBlock) State {
	// moving above the first section would let the block escape to root;
	// not a legal target
	if a.OverID == "root" {
		return s
	}

	oldIndex, newIndex := -1, -1
	for i := range s.Blocks {
		if s.Blocks[i].ID == a.BlockID {
			oldIndex = i
		}
		if s.Blocks[i].ID == a.OverID {
			newIndex = i
		}
	}
	if oldIndex == -1 || newIndex == -1 || oldIndex == newIndex {
		return s
	}

	next := s.clone()
	next.Blocks = arrayMove(next.Blocks, oldIndex, newIndex)

	// local index is global over the flat order, reassigned on every move
	for i := range next.Blocks {
		next.Blocks[i].LocalIndex = i
	}

	// recompute the moved block's parent: nearest preceding section/group
	var parentID *string
	for i := newIndex - 1; i >= 0; i-- {
		t := next.Blocks[i].Type
		if t == form.BlockTypeSection || t == form.BlockTypeGroup {
			id := next.Blocks[i].ID
			parentID = &id
			break
		}
	}

	if parentID == nil && anySection(next.Blocks) {
		// a root section always claims unparented blocks; reject the move
		return s
	}

	next.Blocks[newIndex].ParentID = parentID
	return next
}

func reduceBindBlockField(s State, a BindBlockField) State {
	next := s.clone()
	b := next.blockByID(a.BlockID)
	if b == nil {
		return s
	}

	previous := b.FormFieldID
	fieldID := a.FieldID
	b.FormFieldID = &fieldID

	pool := make([]string, 0, len(next.AvailableFieldIDs)+1)
	for _, id := range next.AvailableFieldIDs {
		if id != a.FieldID {
			pool = append(pool, id)
		}
	}
	if previous != nil {
		pool = append(pool, *previous)
	}
	next.AvailableFieldIDs = pool

	return next
}

func reduceSaveField(s State, a SaveField) State {
	next := s.clone()

	for i := range next.Fields {
		if next.Fields[i].ID == a.Field.ID {
			next.Fields[i] = a.Field
			return next
		}
	}

	// new field
	next.Fields = append(next.Fields, a.Field)

	unused := a.Field.ID
	if next.FocusBlockID != "" {
		if b := next.blockByID(next.FocusBlockID); b != nil &&
			b.Type == form.BlockTypeField && b.FormFieldID == nil {
			id := a.Field.ID
			b.FormFieldID = &id
			unused = ""
		}
	}
	if unused != "" {
		next.AvailableFieldIDs = append(next.AvailableFieldIDs, unused)
	}

	return next
}

func reduceDeleteField(s State, a DeleteField) State {
	next := s.clone()

	fields := next.Fields[:0]
	for i := range next.Fields {
		if next.Fields[i].ID != a.FieldID {
			fields = append(fields, next.Fields[i])
		}
	}
	next.Fields = fields

	pool := next.AvailableFieldIDs[:0]
	for _, id := range next.AvailableFieldIDs {
		if id != a.FieldID {
			pool = append(pool, id)
		}
	}
	next.AvailableFieldIDs = pool

	for i := range next.Blocks {
		if next.Blocks[i].FormFieldID != nil && *next.Blocks[i].FormFieldID == a.FieldID {
			next.Blocks[i].FormFieldID = nil
		}
	}

	return next
}

// latestRootSection returns the root-level section with the highest local
// index, or nil.
func latestRootSection(blocks []Block) *Block {
	var latest *Block
	for i := range blocks {
		b := &blocks[i]
		if b.Type != form.BlockTypeSection || b.ParentID != nil {
			continue
		}
		if latest == nil || b.LocalIndex > latest.LocalIndex {
			latest = b
		}
	}
	return latest
}

func anySection(blocks []Block) bool {
	for i := range blocks {
		if blocks[i].Type == form.BlockTypeSection {
			return true
		}
	}
	return false
}

// treeFlatten reorders the flat list into tree order (each parent followed
// by its children, relative order preserved) and reassigns LocalIndex
// sequentially.
func treeFlatten(blocks []Block) []Block {
	out := make([]Block, 0, len(blocks))

	var appendChildren func(parentID string)
	appendChildren = func(parentID string) {
		for i := range blocks {
			if blocks[i].ParentID != nil && *blocks[i].ParentID == parentID {
				out = append(out, blocks[i])
				appendChildren(blocks[i].ID)
			}
		}
	}

	for i := range blocks {
		if blocks[i].ParentID == nil {
			out = append(out, blocks[i])
			appendChildren(blocks[i].ID)
		}
	}

	// orphaned parents are kept at the tail rather than dropped
	if len(out) < len(blocks) {
		seen := make(map[string]bool, len(out))
		for i := range out {
			seen[out[i].ID] = true
		}
		for i := range blocks {
			if !seen[blocks[i].ID] {
				out = append(out, blocks[i])
			}
		}
	}

	for i := range out {
		out[i].LocalIndex = i
	}
	return out
}

func arrayMove(blocks []Block, from, to int) []Block {
	moved := blocks[from]
	blocks = append(blocks[:from], blocks[from+1:]...)

	out := make([]Block, 0, len(blocks)+1)
	out = append(out, blocks[:to]...)
	out = append(out, moved)
	out = append(out, blocks[to:]...)
	return out
}
