package controllers

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/afriblend/afriblend-backend/ai"
	"github.com/afriblend/afriblend-backend/dto"
	"github.com/afriblend/afriblend-backend/models"
	"github.com/afriblend/afriblend-backend/store"
	"github.com/afriblend/afriblend-backend/utils"
	"github.com/gin-gonic/gin"
)

// POST /style-recommendations
// The stylist only ever sees (and can only recommend) visible products;
// anything the model invents outside the catalog is dropped from the
// response.
func StyleRecommendations(aiClient *ai.Client, products *store.Products, categories *store.Categories) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.StyleRequestDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		visible := products.Visible()
		rec, err := aiClient.StyleRecommendation(c.Request.Context(), body.Prompt, visible, categories.All())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		catalog := make(map[string]models.Product, len(visible))
		for _, p := range visible {
			catalog[p.Id.Hex()] = p
		}

		type recommended struct {
			Product models.Product `json:"product"`
			Reason  string         `json:"reason"`
		}
		picks := make([]recommended, 0, len(rec.RecommendedProducts))
		for _, r := range rec.RecommendedProducts {
			if p, ok := catalog[r.ProductId]; ok {
				picks = append(picks, recommended{Product: p, Reason: r.Reason})
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"stylistMessage":      rec.StylistMessage,
			"recommendedProducts": picks,
		})
	}
}

// POST /admin/images/generate
func GenerateImages(aiClient *ai.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.GenerateImagesDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		n := body.NumberOfImages
		if n == 0 {
			n = 1
		}
		aspectRatio := body.AspectRatio
		if aspectRatio == "" {
			aspectRatio = "1:1"
		}

		images, err := aiClient.GenerateImages(c.Request.Context(), body.Prompt, n, aspectRatio)
		if err != nil {
			status := http.StatusBadGateway
			if errors.Is(err, ai.ErrPromptBlocked) {
				status = http.StatusUnprocessableEntity
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		if body.Persist {
			r2, err := utils.NewR2Client(c.Request.Context())
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "storage unavailable"})
				return
			}
			urls := make([]string, 0, len(images))
			for _, img := range images {
				url, err := r2.UploadGeneratedImage(c.Request.Context(), img)
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
					return
				}
				urls = append(urls, url)
			}
			c.JSON(http.StatusOK, gin.H{"urls": urls})
			return
		}

		encoded := make([]string, 0, len(images))
		for _, img := range images {
			encoded = append(encoded, "data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString(img))
		}
		c.JSON(http.StatusOK, gin.H{"images": encoded})
	}
}
