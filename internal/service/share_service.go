package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"pinboard/internal/dto"
	"pinboard/internal/entity"
	"pinboard/internal/repository"
	"pinboard/internal/share"
)

// snapshotTTL bounds how stale a readonly snapshot may be.
const snapshotTTL = 60 * time.Second

type IShareService interface {
	Share(ctx context.Context, req *dto.ShareRequest) (string, error)
	Snapshot(ctx context.Context, canvasID uint) (string, error)
	Resolve(ctx context.Context, key string) (*entity.Share, error)
}

type shareService struct {
	canvases  repository.ICanvasRepository
	notes     repository.INoteRepository
	shares    repository.IShareRepository
	cache     *gocache.Cache
	workerURL string
	baseURL   string
	client    *http.Client
	log       *zap.Logger
}

func NewShareService(
	canvases repository.ICanvasRepository,
	notes repository.INoteRepository,
	shares repository.IShareRepository,
	workerURL, baseURL string,
	log *zap.Logger,
) IShareService {
	return &shareService{
		canvases:  canvases,
		notes:     notes,
		shares:    shares,
		cache:     gocache.New(snapshotTTL, 2*snapshotTTL),
		workerURL: workerURL,
		baseURL:   baseURL,
		client:    &http.Client{Timeout: 15 * time.Second},
		log:       log,
	}
}

// Share publishes an HTML blob and returns the URL it is reachable at.
// With an edge worker configured the blob is forwarded there; otherwise it
// is stored locally and served from /s/:key.
func (s *shareService) Share(ctx context.Context, req *dto.ShareRequest) (string, error) {
	if s.workerURL != "" {
		return s.shareViaWorker(ctx, req)
	}

	key := uuid.NewString()[:8]
	err := s.shares.Create(ctx, &entity.Share{
		Key:      key,
		CanvasID: req.CanvasID,
		Name:     req.Name,
		HTML:     req.HTMLContent,
	})
	if err != nil {
		return "", err
	}
	url := s.baseURL + "/s/" + key
	s.log.Info("canvas shared locally", zap.Uint("canvas_id", req.CanvasID), zap.String("url", url))
	return url, nil
}

func (s *shareService) shareViaWorker(ctx context.Context, req *dto.ShareRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.workerURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("share worker returned %s", resp.Status)
	}

	var out dto.ShareResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.ShareURL, nil
}

// Snapshot renders the readonly HTML for a canvas from live rows, cached
// for snapshotTTL.
func (s *shareService) Snapshot(ctx context.Context, canvasID uint) (string, error) {
	key := fmt.Sprintf("snapshot:%d", canvasID)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(string), nil
	}

	canvas, err := s.canvases.FindByID(ctx, canvasID)
	if err != nil {
		return "", err
	}
	notes, err := s.notes.FindByCanvas(ctx, canvasID)
	if err != nil {
		return "", err
	}
	html, err := share.Render(canvas.Name, notes)
	if err != nil {
		return "", err
	}
	s.cache.SetDefault(key, html)
	return html, nil
}

func (s *shareService) Resolve(ctx context.Context, key string) (*entity.Share, error) {
	return s.shares.FindByKey(ctx, key)
}
