package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vinaypatil-tal/scoot-assist-chat/internal/models"
)

type mockChatRepo struct {
	messages []models.ChatMessage
	failAdd  bool
}

func (m *mockChatRepo) AddMessage(_ context.Context, msg *models.ChatMessage) error {
	if m.failAdd {
		return errors.New("insert failed")
	}
	msg.ID = primitive.NewObjectID()
	m.messages = append(m.messages, *msg)
	return nil
}

func (m *mockChatRepo) GetMessagesByUser(_ context.Context, userID string) ([]models.ChatMessage, error) {
	var result []models.ChatMessage
	for _, msg := range m.messages {
		if msg.UserID == userID {
			result = append(result, msg)
		}
	}
	return result, nil
}

func (m *mockChatRepo) GetRecentMessages(_ context.Context, userID string, n int64) ([]models.ChatMessage, error) {
	all, _ := m.GetMessagesByUser(context.Background(), userID)
	if int64(len(all)) > n {
		all = all[int64(len(all))-n:]
	}
	return all, nil
}

type mockCatalogProvider struct {
	catalog models.Catalog
	err     error
}

func (m *mockCatalogProvider) ActiveCatalog(_ context.Context) (*models.Catalog, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &m.catalog, nil
}

type mockReviewRepo struct {
	created []models.ReviewRequest
	updates []models.ReviewStatus
}

func (m *mockReviewRepo) Create(_ context.Context, req *models.ReviewRequest) error {
	req.ID = primitive.NewObjectID()
	req.Status = models.ReviewPending
	m.created = append(m.created, *req)
	return nil
}

func (m *mockReviewRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.ReviewRequest, error) {
	for i := range m.created {
		if m.created[i].ID == id {
			return &m.created[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (m *mockReviewRepo) GetAll(_ context.Context) ([]models.ReviewRequest, error) {
	return m.created, nil
}

func (m *mockReviewRepo) GetByUser(_ context.Context, userID string) ([]models.ReviewRequest, error) {
	var result []models.ReviewRequest
	for _, r := range m.created {
		if r.UserID == userID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockReviewRepo) UpdateStatus(_ context.Context, _ primitive.ObjectID, status models.ReviewStatus, _, _ string) error {
	m.updates = append(m.updates, status)
	return nil
}

type mockFAQRepo struct {
	categories   []models.FAQCategory
	items        []models.FAQItem
	catalogReads int
}

func (m *mockFAQRepo) CreateCategory(_ context.Context, cat *models.FAQCategory) error {
	cat.ID = primitive.NewObjectID()
	m.categories = append(m.categories, *cat)
	return nil
}

func (m *mockFAQRepo) UpdateCategory(_ context.Context, _ primitive.ObjectID, _ bson.M) error {
	return nil
}

func (m *mockFAQRepo) DeleteCategory(_ context.Context, id primitive.ObjectID) error {
	for _, item := range m.items {
		if item.CategoryID == id {
			return errors.New("category still has FAQ items")
		}
	}
	return nil
}

func (m *mockFAQRepo) GetAllCategories(_ context.Context) ([]models.FAQCategory, error) {
	return m.categories, nil
}

func (m *mockFAQRepo) CreateItem(_ context.Context, item *models.FAQItem) error {
	item.ID = primitive.NewObjectID()
	m.items = append(m.items, *item)
	return nil
}

func (m *mockFAQRepo) UpdateItem(_ context.Context, _ primitive.ObjectID, _ bson.M) error {
	return nil
}

func (m *mockFAQRepo) DeleteItem(_ context.Context, _ primitive.ObjectID) error {
	return nil
}

func (m *mockFAQRepo) GetAllItems(_ context.Context) ([]models.FAQItem, error) {
	return m.items, nil
}

func (m *mockFAQRepo) CategoryExists(_ context.Context, id primitive.ObjectID) (bool, error) {
	for _, cat := range m.categories {
		if cat.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockFAQRepo) GetActiveCatalog(_ context.Context) (*models.Catalog, error) {
	m.catalogReads++
	catalog := &models.Catalog{}
	for _, cat := range m.categories {
		if cat.IsActive {
			catalog.Categories = append(catalog.Categories, cat)
		}
	}
	for _, item := range m.items {
		if item.IsActive {
			catalog.Items = append(catalog.Items, item)
		}
	}
	return catalog, nil
}
