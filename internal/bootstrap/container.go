// Package bootstrap wires repositories, services, and controllers into one
// container the server consumes.
package bootstrap

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pinboard/internal/config"
	"pinboard/internal/controller"
	"pinboard/internal/repository"
	"pinboard/internal/service"
)

type Container struct {
	CanvasController controller.ICanvasController
	TabController    controller.ITabController
	NoteController   controller.INoteController
	ShareController  controller.IShareController
	UploadController controller.IUploadController
}

func NewContainer(db *gorm.DB, cfg *config.Config, log *zap.Logger) *Container {
	canvasRepo := repository.NewCanvasRepository(db)
	tabRepo := repository.NewTabRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	shareRepo := repository.NewShareRepository(db)

	canvasService := service.NewCanvasService(canvasRepo, tabRepo, noteRepo, log)
	tabService := service.NewTabService(tabRepo, noteRepo, log)
	noteService := service.NewNoteService(noteRepo, log)
	exportService := service.NewExportService(canvasRepo, noteRepo)
	uploadService := service.NewUploadService(cfg.App.UploadDir, log)
	shareService := service.NewShareService(
		canvasRepo, noteRepo, shareRepo,
		cfg.App.ShareWorkerURL, cfg.App.BaseURL,
		log,
	)

	return &Container{
		CanvasController: controller.NewCanvasController(canvasService, exportService),
		TabController:    controller.NewTabController(tabService),
		NoteController:   controller.NewNoteController(noteService),
		ShareController:  controller.NewShareController(shareService),
		UploadController: controller.NewUploadController(uploadService),
	}
}
