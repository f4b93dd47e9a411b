package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vinaypatil-tal/scoot-assist-chat/internal/models"
	"github.com/vinaypatil-tal/scoot-assist-chat/internal/repository"
	"github.com/vinaypatil-tal/scoot-assist-chat/internal/services"
)

type FAQHandler struct {
	catalog *services.CatalogService
}

func NewFAQHandler(catalog *services.CatalogService) *FAQHandler {
	return &FAQHandler{catalog: catalog}
}

// GetCatalog serves the active snapshot for the browse UI.
func (h *FAQHandler) GetCatalog(c *gin.Context) {
	catalog, err := h.catalog.ActiveCatalog(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load FAQ"})
		return
	}
	c.JSON(http.StatusOK, catalog)
}

// Admin: categories

func (h *FAQHandler) CreateCategory(c *gin.Context) {
	var cat models.FAQCategory
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if err := h.catalog.CreateCategory(c.Request.Context(), &cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *FAQHandler) UpdateCategory(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var fields bson.M
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if err := h.catalog.UpdateCategory(c.Request.Context(), id, fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *FAQHandler) DeleteCategory(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.catalog.DeleteCategory(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotEmpty) {
			c.JSON(http.StatusConflict, gin.H{"error": "category still has FAQ items"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *FAQHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// Admin: items

func (h *FAQHandler) CreateItem(c *gin.Context) {
	var item models.FAQItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if err := h.catalog.CreateItem(c.Request.Context(), &item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *FAQHandler) UpdateItem(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var fields bson.M
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if err := h.catalog.UpdateItem(c.Request.Context(), id, fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *FAQHandler) DeleteItem(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.catalog.DeleteItem(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *FAQHandler) ListItems(c *gin.Context) {
	items, err := h.catalog.ListItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list items"})
		return
	}
	c.JSON(http.StatusOK, items)
}
