package controllers

import (
	"errors"
	"net/http"

	"github.com/afriblend/afriblend-backend/dto"
	"github.com/afriblend/afriblend-backend/models"
	"github.com/afriblend/afriblend-backend/store"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// GET /admin/riders
func GetRiders(riders *store.Riders) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, riders.All())
	}
}

// POST /admin/riders
func AddRider(riders *store.Riders) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.RiderDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		created, err := riders.Add(c.Request.Context(), body.Name, body.Phone)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// PUT /admin/riders/:id
func UpdateRider(riders *store.Riders) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rider id"})
			return
		}

		var body dto.RiderDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updated, err := riders.Update(c.Request.Context(), models.Rider{
			Id:    id,
			Name:  body.Name,
			Phone: body.Phone,
		})
		if err != nil {
			if errors.Is(err, store.ErrRiderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "rider not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DELETE /admin/riders/:id
// Orders assigned to the rider keep their history but lose the
// assignment.
func DeleteRider(riders *store.Riders) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rider id"})
			return
		}

		if err := riders.Delete(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrRiderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "rider not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
