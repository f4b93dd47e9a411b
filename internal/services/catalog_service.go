package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vinaypatil-tal/scoot-assist-chat/internal/models"
	"github.com/vinaypatil-tal/scoot-assist-chat/internal/utils"
)

const (
	catalogCacheKey = "faq:catalog"
	catalogCacheTTL = time.Minute
)

type FAQRepository interface {
	CreateCategory(ctx context.Context, cat *models.FAQCategory) error
	UpdateCategory(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	DeleteCategory(ctx context.Context, id primitive.ObjectID) error
	GetAllCategories(ctx context.Context) ([]models.FAQCategory, error)
	CreateItem(ctx context.Context, item *models.FAQItem) error
	UpdateItem(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	DeleteItem(ctx context.Context, id primitive.ObjectID) error
	GetAllItems(ctx context.Context) ([]models.FAQItem, error)
	CategoryExists(ctx context.Context, id primitive.ObjectID) (bool, error)
	GetActiveCatalog(ctx context.Context) (*models.Catalog, error)
}

// CatalogService owns FAQ content: admin CRUD plus the cached active
// snapshot served to the responder and the browse UI.
type CatalogService struct {
	repo  FAQRepository
	cache *utils.RedisClient
}

func NewCatalogService(repo FAQRepository, cache *utils.RedisClient) *CatalogService {
	return &CatalogService{repo: repo, cache: cache}
}

// ActiveCatalog returns the active categories and items, from Redis when the
// snapshot is fresh. A cache failure falls through to Mongo.
func (s *CatalogService) ActiveCatalog(ctx context.Context) (*models.Catalog, error) {
	if s.cache != nil {
		var cached models.Catalog
		if err := s.cache.Get(ctx, catalogCacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	catalog, err := s.repo.GetActiveCatalog(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, catalogCacheKey, catalog, catalogCacheTTL); err != nil {
			log.Printf("[CATALOG] Failed to cache snapshot: %v", err)
		}
	}
	return catalog, nil
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, catalogCacheKey)
	}
}

// Categories

func (s *CatalogService) CreateCategory(ctx context.Context, cat *models.FAQCategory) error {
	if cat.Slug == "" {
		cat.Slug = Slugify(cat.Name)
	}
	if err := utils.ValidateStruct(cat); err != nil {
		return err
	}
	if err := s.repo.CreateCategory(ctx, cat); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	if err := s.repo.UpdateCategory(ctx, id, fields); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.FAQCategory, error) {
	return s.repo.GetAllCategories(ctx)
}

// Items

func (s *CatalogService) CreateItem(ctx context.Context, item *models.FAQItem) error {
	if err := utils.ValidateStruct(item); err != nil {
		return err
	}
	if item.CategoryID.IsZero() {
		return errors.New("category is required")
	}
	exists, err := s.repo.CategoryExists(ctx, item.CategoryID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.New("category not found")
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) UpdateItem(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	if err := s.repo.UpdateItem(ctx, id, fields); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) DeleteItem(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.DeleteItem(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) ListItems(ctx context.Context) ([]models.FAQItem, error) {
	return s.repo.GetAllItems(ctx)
}

// Slugify turns a category name into its quick-reply key: lower-cased,
// spaces collapsed to single dashes, everything else dropped.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
