package handlers

import (
	"github.com/featherform/featherform/internal/application"
	"github.com/featherform/featherform/internal/editor"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Form   *FormHandler
	Submit *SubmitHandler
	Editor *EditorHandler
	Media  *MediaHandler
	Sync   *SyncHandler
	Router *gin.Engine
}

func New(svc *application.Services, sessions *editor.Manager, router *gin.Engine) *Handlers {
	h := &Handlers{
		Form:   NewFormHandler(svc.Form),
		Submit: NewSubmitHandler(svc.Submission),
		Editor: NewEditorHandler(sessions),
		Media:  NewMediaHandler(svc.Media),
		Sync:   NewSyncHandler(sessions),
		Router: router,
	}
	return h
}
