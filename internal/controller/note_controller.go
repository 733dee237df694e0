package controller

import (
	"github.com/gofiber/fiber/v2"

	"pinboard/internal/dto"
	"pinboard/internal/pkg/serverutils"
	"pinboard/internal/service"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{noteService: noteService}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	h.Get(":canvasId", c.List)
	h.Post("", c.Save)
	h.Delete(":id", c.Delete)
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	canvasID, err := paramUint(ctx, "canvasId")
	if err != nil {
		return err
	}
	notes, err := c.noteService.List(ctx.Context(), canvasID)
	if err != nil {
		return err
	}
	return ctx.JSON(notes)
}

func (c *noteController) Save(ctx *fiber.Ctx) error {
	var req dto.SaveNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if err := c.noteService.Save(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"message": "saved", "id": req.ID})
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	if err := c.noteService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(dto.MessageResponse{Message: "deleted"})
}
