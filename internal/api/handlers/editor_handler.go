package handlers

import (
	"net/http"

	"github.com/featherform/featherform/internal/domain/form"
	"github.com/featherform/featherform/internal/editor"
	"github.com/featherform/featherform/pkg/response"
	"github.com/gin-gonic/gin"
)

// EditorHandler maps the block editor's HTTP surface onto editor sessions.
// Handlers dispatch actions into the pure reducer; persistence happens in
// the session's effect layer, so responses reflect the optimistic state.
type EditorHandler struct {
	manager *editor.Manager
}

func NewEditorHandler(manager *editor.Manager) *EditorHandler {
	return &EditorHandler{manager: manager}
}

type createBlockDTO struct {
	Type form.BlockType `json:"type" binding:"required"`
}

type sortBlockDTO struct {
	OverID string `json:"over_id" binding:"required"`
}

type patchBlockDTO struct {
	TitleHTML       *string `json:"title_html"`
	DescriptionHTML *string `json:"description_html"`
	BodyHTML        *string `json:"body_html"`
	ImageSrc        *string `json:"image_src"`
	VideoSrc        *string `json:"video_src"`
	FormFieldID     *string `json:"form_field_id"`
}

type saveFieldDTO struct {
	ID       string               `json:"id" binding:"required"`
	Name     string               `json:"name" binding:"required"`
	Label    string               `json:"label"`
	Type     form.FieldType       `json:"type" binding:"required"`
	Required bool                 `json:"required"`
	Options  []form.SaveOptionDTO `json:"options"`
}

func (h *EditorHandler) session(c *gin.Context) *editor.Session {
	session, err := h.manager.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return nil
	}
	return session
}

// GetState returns the editor's current (optimistic) state.
func (h *EditorHandler) GetState(c *gin.Context) {
	session := h.session(c)
	if session == nil {
		return
	}
	c.JSON(http.StatusOK, stateDTO(session.State()))
}

func (h *EditorHandler) CreateBlock(c *gin.Context) {
	var input createBlockDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	session := h.session(c)
	if session == nil {
		return
	}

	draftID := session.CreateBlock(input.Type)
	c.JSON(http.StatusAccepted, gin.H{"draft_id": draftID, "state": stateDTO(session.State())})
}

func (h *EditorHandler) DeleteBlock(c *gin.Context) {
	session := h.session(c)
	if session == nil {
		return
	}

	state := session.Dispatch(editor.DeleteBlock{BlockID: c.Param("block_id")})
	c.JSON(http.StatusOK, stateDTO(state))
}

func (h *EditorHandler) SortBlock(c *gin.Context) {
	var input sortBlockDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	session := h.session(c)
	if session == nil {
		return
	}

	state := session.Dispatch(editor.SortBlock{BlockID: c.Param("block_id"), OverID: input.OverID})
	c.JSON(http.StatusOK, stateDTO(state))
}

func (h *EditorHandler) PatchBlock(c *gin.Context) {
	var input patchBlockDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	session := h.session(c)
	if session == nil {
		return
	}

	blockID := c.Param("block_id")
	var state editor.State
	if input.TitleHTML != nil {
		state = session.Dispatch(editor.SetBlockTitle{BlockID: blockID, TitleHTML: *input.TitleHTML})
	}
	if input.DescriptionHTML != nil {
		state = session.Dispatch(editor.SetBlockDescription{BlockID: blockID, DescriptionHTML: *input.DescriptionHTML})
	}
	if input.BodyHTML != nil {
		state = session.Dispatch(editor.SetBlockBody{BlockID: blockID, BodyHTML: *input.BodyHTML})
	}
	if input.ImageSrc != nil {
		state = session.Dispatch(editor.SetBlockSrc{BlockID: blockID, Type: form.BlockTypeImage, Src: *input.ImageSrc})
	}
	if input.VideoSrc != nil {
		state = session.Dispatch(editor.SetBlockSrc{BlockID: blockID, Type: form.BlockTypeVideo, Src: *input.VideoSrc})
	}
	if input.FormFieldID != nil {
		state = session.Dispatch(editor.BindBlockField{BlockID: blockID, FieldID: *input.FormFieldID})
	}
	if state.FormID == "" {
		state = session.State()
	}

	c.JSON(http.StatusOK, stateDTO(state))
}

func (h *EditorHandler) SaveField(c *gin.Context) {
	var input saveFieldDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	session := h.session(c)
	if session == nil {
		return
	}

	state := session.Dispatch(editor.SaveField{Field: editor.FieldDef{
		ID:       input.ID,
		Name:     input.Name,
		Label:    input.Label,
		Type:     input.Type,
		Required: input.Required,
		Options:  input.Options,
	}})
	c.JSON(http.StatusOK, stateDTO(state))
}

func (h *EditorHandler) DeleteField(c *gin.Context) {
	session := h.session(c)
	if session == nil {
		return
	}

	state := session.Dispatch(editor.DeleteField{FieldID: c.Param("field_id")})
	c.JSON(http.StatusOK, stateDTO(state))
}

type blockDTO struct {
	ID          string         `json:"id"`
	Draft       bool           `json:"draft"`
	Type        form.BlockType `json:"type"`
	ParentID    *string        `json:"parent_id"`
	LocalIndex  int            `json:"local_index"`
	FormFieldID *string        `json:"form_field_id"`

	TitleHTML       string `json:"title_html,omitempty"`
	DescriptionHTML string `json:"description_html,omitempty"`
	BodyHTML        string `json:"body_html,omitempty"`
	Src             string `json:"src,omitempty"`
}

func stateDTO(s editor.State) gin.H {
	blocks := make([]blockDTO, 0, len(s.Blocks))
	for _, b := range s.Blocks {
		blocks = append(blocks, blockDTO{
			ID:              b.ID,
			Draft:           b.Stage == editor.StageDraft,
			Type:            b.Type,
			ParentID:        b.ParentID,
			LocalIndex:      b.LocalIndex,
			FormFieldID:     b.FormFieldID,
			TitleHTML:       b.TitleHTML,
			DescriptionHTML: b.DescriptionHTML,
			BodyHTML:        b.BodyHTML,
			Src:             b.Src,
		})
	}
	return gin.H{
		"form_id":             s.FormID,
		"blocks":              blocks,
		"fields":              s.Fields,
		"available_field_ids": s.AvailableFieldIDs,
	}
}
