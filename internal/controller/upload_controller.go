package controller

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"pinboard/internal/dto"
	"pinboard/internal/service"
)

type IUploadController interface {
	RegisterRoutes(r fiber.Router)
}

type uploadController struct {
	uploadService service.IUploadService
}

func NewUploadController(uploadService service.IUploadService) IUploadController {
	return &uploadController{uploadService: uploadService}
}

func (c *uploadController) RegisterRoutes(r fiber.Router) {
	r.Post("/upload-image", c.Upload)
}

func (c *uploadController) Upload(ctx *fiber.Ctx) error {
	fh, err := ctx.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "missing image file")
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return err
	}
	url, err := c.uploadService.SaveImage(fh.Filename, data)
	if err != nil {
		return err
	}
	return ctx.JSON(dto.UploadResponse{ImageURL: url})
}
