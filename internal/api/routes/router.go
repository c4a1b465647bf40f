package routes

import (
	"github.com/featherform/featherform/internal/api/handlers"
	"github.com/featherform/featherform/internal/application"
	"github.com/featherform/featherform/internal/editor"
	"github.com/featherform/featherform/internal/repository"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	repos := repository.NewRepositories(db)
	services := application.New(repos)
	sessions := editor.NewManager(repos)
	h := handlers.New(services, sessions, r)

	p := ginprometheus.NewPrometheus("gin")
	p.Use(r)

	// Public submission endpoints. GET serves prefilled links, POST serves
	// hosted form pages and direct API callers.
	r.GET("/v1/submit/:id", h.Submit.SubmitGET)
	r.POST("/v1/submit/:id", h.Submit.SubmitPOST)

	// Editor sync event stream.
	r.GET("/ws/forms/:id/sync", h.Sync.Stream)

	v1 := r.Group("/v1")
	{
		forms := v1.Group("/forms")
		{
			forms.POST("", h.Form.CreateForm)
			forms.GET("/:id", h.Form.GetForm)
			forms.PATCH("/:id/settings", h.Form.UpdateSettings)
			forms.PUT("/:id/fields", h.Form.SaveField)
			forms.DELETE("/:id/fields/:field_id", h.Form.DeleteField)

			forms.GET("/:id/responses", h.Form.ListResponses)
			forms.DELETE("/:id/responses/:response_id", h.Form.DeleteResponse)

			forms.POST("/:id/media", h.Media.Upload)

			edit := forms.Group("/:id/editor")
			{
				edit.GET("", h.Editor.GetState)
				edit.POST("/blocks", h.Editor.CreateBlock)
				edit.DELETE("/blocks/:block_id", h.Editor.DeleteBlock)
				edit.PUT("/blocks/:block_id/sort", h.Editor.SortBlock)
				edit.PATCH("/blocks/:block_id", h.Editor.PatchBlock)
				edit.PUT("/fields", h.Editor.SaveField)
				edit.DELETE("/fields/:field_id", h.Editor.DeleteField)
			}
		}
	}
}
