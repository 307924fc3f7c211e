package controllers

import (
	"errors"
	"net/http"

	"github.com/afriblend/afriblend-backend/dto"
	"github.com/afriblend/afriblend-backend/store"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// GET /categories
func GetCategories(categories *store.Categories) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, categories.All())
	}
}

// POST /admin/categories
func AddCategory(categories *store.Categories) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CategoryDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		created, err := categories.Add(c.Request.Context(), body.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// PUT /admin/categories/:id
func UpdateCategory(categories *store.Categories) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
			return
		}

		var body dto.CategoryDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updated, err := categories.Update(c.Request.Context(), id, body.Name)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DELETE /admin/categories/:id
// Refused with 409 while any product still references the category.
func DeleteCategory(categories *store.Categories) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
			return
		}

		if err := categories.Delete(c.Request.Context(), id); err != nil {
			switch {
			case errors.Is(err, store.ErrCategoryInUse):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			case errors.Is(err, store.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
