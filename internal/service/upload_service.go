package service

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type IUploadService interface {
	SaveImage(filename string, data []byte) (string, error)
}

type uploadService struct {
	dir string
	log *zap.Logger
}

func NewUploadService(dir string, log *zap.Logger) IUploadService {
	return &uploadService{dir: dir, log: log}
}

var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true,
}

// SaveImage stores the upload under a fresh uuid name and returns the URL
// path it is served from.
func (s *uploadService) SaveImage(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExts[ext] {
		return "", fiber.NewError(fiber.StatusBadRequest, "unsupported image type")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}
	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", err
	}
	s.log.Info("image uploaded", zap.String("file", name), zap.Int("bytes", len(data)))
	return "/uploads/" + name, nil
}
