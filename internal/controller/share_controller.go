package controller

import (
	"github.com/gofiber/fiber/v2"

	"pinboard/internal/dto"
	"pinboard/internal/pkg/serverutils"
	"pinboard/internal/service"
)

type IShareController interface {
	RegisterRoutes(r fiber.Router)
	RegisterPublicRoutes(app *fiber.App)
}

type shareController struct {
	shareService service.IShareService
}

func NewShareController(shareService service.IShareService) IShareController {
	return &shareController{shareService: shareService}
}

func (c *shareController) RegisterRoutes(r fiber.Router) {
	r.Post("/share", c.Share)
	r.Get("/readonly-canvas/:id", c.Snapshot)
}

// RegisterPublicRoutes hangs the local share pages off the app root, not
// the /api group.
func (c *shareController) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/s/:key", c.Resolve)
}

func (c *shareController) Share(ctx *fiber.Ctx) error {
	var req dto.ShareRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	url, err := c.shareService.Share(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(dto.ShareResponse{ShareURL: url})
}

func (c *shareController) Snapshot(ctx *fiber.Ctx) error {
	id, err := paramUint(ctx, "id")
	if err != nil {
		return err
	}
	html, err := c.shareService.Snapshot(ctx.Context(), id)
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.SendString(html)
}

func (c *shareController) Resolve(ctx *fiber.Ctx) error {
	s, err := c.shareService.Resolve(ctx.Context(), ctx.Params("key"))
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.SendString(s.HTML)
}
