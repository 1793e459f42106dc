package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"bistro/app/models"
	"bistro/pkg/apperr"
	"bistro/pkg/cache"
	"bistro/pkg/logger"
	"bistro/pkg/storage"
)

// menuCacheKey holds the full public menu list. Any admin mutation
// invalidates it; reads repopulate it lazily.
const menuCacheKey = "menu:all"

const menuCacheTTL = 10 * time.Minute

// MenuStore is the menu collection surface the service needs.
type MenuStore interface {
	All(ctx context.Context) ([]models.MenuItem, error)
	FindByID(ctx context.Context, id string) (models.MenuItem, error)
	Insert(ctx context.Context, item models.MenuItem) (string, error)
	Update(ctx context.Context, id string, item models.MenuItem) (int64, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

// MenuService serves the public catalog and the admin menu mutations.
type MenuService struct {
	menu MenuStore
}

func NewMenuService(menu MenuStore) *MenuService {
	return &MenuService{menu: menu}
}

// List returns the full menu, served from cache when warm.
func (s *MenuService) List(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if cache.Get(menuCacheKey, &items) {
		return items, nil
	}

	items, err := s.menu.All(ctx)
	if err != nil {
		return nil, err
	}

	if err := cache.Set(menuCacheKey, items, menuCacheTTL); err != nil {
		logger.Warn("menu: cache set failed", "error", err)
	}
	return items, nil
}

// Find returns one menu item by id.
func (s *MenuService) Find(ctx context.Context, id string) (models.MenuItem, error) {
	return s.menu.FindByID(ctx, id)
}

// Create inserts a new menu item and invalidates the cached list.
func (s *MenuService) Create(ctx context.Context, item models.MenuItem) (string, error) {
	id, err := s.menu.Insert(ctx, item)
	if err != nil {
		return "", err
	}
	s.invalidate()
	return id, nil
}

// Update replaces the editable fields of one menu item.
func (s *MenuService) Update(ctx context.Context, id string, item models.MenuItem) (int64, error) {
	n, err := s.menu.Update(ctx, id, item)
	if err != nil {
		return 0, err
	}
	s.invalidate()
	return n, nil
}

// Delete removes one menu item by id.
func (s *MenuService) Delete(ctx context.Context, id string) (int64, error) {
	n, err := s.menu.DeleteByID(ctx, id)
	if err != nil {
		return 0, err
	}
	s.invalidate()
	return n, nil
}

func (s *MenuService) invalidate() {
	if err := cache.Del(menuCacheKey); err != nil {
		logger.Warn("menu: cache invalidation failed", "error", err)
	}
}

// allowed image extensions for menu uploads
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadImage streams an image to the configured storage disk and returns
// its public URL. The stored name is timestamped to avoid collisions.
func (s *MenuService) UploadImage(filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExts[ext] {
		return "", fmt.Errorf("%w: unsupported image type %q", apperr.ErrInvalidArgument, ext)
	}

	path := fmt.Sprintf("menu/%d%s", time.Now().UnixNano(), ext)
	if err := storage.PutStream(path, r); err != nil {
		return "", fmt.Errorf("%w: store image: %v", apperr.ErrPersistence, err)
	}
	return storage.URL(path), nil
}
