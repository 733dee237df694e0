package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"pinboard/internal/dto"
	"pinboard/internal/pkg/serverutils"
	"pinboard/internal/service"
)

type ICanvasController interface {
	RegisterRoutes(r fiber.Router)
}

type canvasController struct {
	canvasService service.ICanvasService
	exportService service.IExportService
}

func NewCanvasController(canvasService service.ICanvasService, exportService service.IExportService) ICanvasController {
	return &canvasController{canvasService: canvasService, exportService: exportService}
}

func (c *canvasController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/canvases")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Rename)
	h.Delete(":id", c.Delete)
	h.Get(":id/export.png", c.ExportPNG)
}

func (c *canvasController) List(ctx *fiber.Ctx) error {
	canvases, err := c.canvasService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(canvases)
}

func (c *canvasController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateCanvasRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	canvas, err := c.canvasService.Create(ctx.Context(), req.Name)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(canvas)
}

func (c *canvasController) Show(ctx *fiber.Ctx) error {
	id, err := paramUint(ctx, "id")
	if err != nil {
		return err
	}
	canvas, err := c.canvasService.Get(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(canvas)
}

func (c *canvasController) Rename(ctx *fiber.Ctx) error {
	id, err := paramUint(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.RenameCanvasRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if err := c.canvasService.Rename(ctx.Context(), id, req.Name); err != nil {
		return err
	}
	return ctx.JSON(dto.MessageResponse{Message: "canvas renamed"})
}

func (c *canvasController) Delete(ctx *fiber.Ctx) error {
	id, err := paramUint(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.canvasService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(dto.MessageResponse{Message: "canvas deleted"})
}

func (c *canvasController) ExportPNG(ctx *fiber.Ctx) error {
	id, err := paramUint(ctx, "id")
	if err != nil {
		return err
	}
	data, err := c.exportService.PNG(ctx.Context(), id)
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, "image/png")
	return ctx.Send(data)
}

func paramUint(ctx *fiber.Ctx, name string) (uint, error) {
	v, err := strconv.ParseUint(ctx.Params(name), 10, 32)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return uint(v), nil
}
