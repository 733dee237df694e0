package controller

import (
	"github.com/gofiber/fiber/v2"

	"pinboard/internal/dto"
	"pinboard/internal/pkg/serverutils"
	"pinboard/internal/service"
)

type ITabController interface {
	RegisterRoutes(r fiber.Router)
}

type tabController struct {
	tabService service.ITabService
}

func NewTabController(tabService service.ITabService) ITabController {
	return &tabController{tabService: tabService}
}

func (c *tabController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tabs")
	h.Get(":canvasId", c.List)
	h.Post("", c.Create)
	h.Put(":id", c.Rename)
	h.Delete(":id", c.Delete)
}

func (c *tabController) List(ctx *fiber.Ctx) error {
	canvasID, err := paramUint(ctx, "canvasId")
	if err != nil {
		return err
	}
	tabs, err := c.tabService.List(ctx.Context(), canvasID)
	if err != nil {
		return err
	}
	return ctx.JSON(tabs)
}

func (c *tabController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateTabRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	tab, err := c.tabService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(tab)
}

func (c *tabController) Rename(ctx *fiber.Ctx) error {
	id, err := paramUint(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.RenameTabRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if err := c.tabService.Rename(ctx.Context(), id, req.Name); err != nil {
		return err
	}
	return ctx.JSON(dto.MessageResponse{Message: "tab renamed"})
}

func (c *tabController) Delete(ctx *fiber.Ctx) error {
	id, err := paramUint(ctx, "id")
	if err != nil {
		return err
	}
	notesDeleted, err := c.tabService.Delete(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(dto.DeleteTabResponse{NotesDeleted: notesDeleted})
}
