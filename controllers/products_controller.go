package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/afriblend/afriblend-backend/dto"
	"github.com/afriblend/afriblend-backend/models"
	"github.com/afriblend/afriblend-backend/store"
	"github.com/afriblend/afriblend-backend/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// GET /products
// The public listing only contains visible products.
func GetProducts(products *store.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, products.Visible())
	}
}

// GET /products/:slug
func GetProductBySlug(products *store.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := products.BySlug(c.Param("slug"))
		if err != nil || !product.Visible() {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GET /admin/products
func GetAllProducts(products *store.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, products.All())
	}
}

func validateImages(files []*multipart.FileHeader) error {
	validator := utils.NewImageValidator()
	for _, fh := range files {
		if _, err := validator.ValidateFile(fh); err != nil {
			return fmt.Errorf("%s: %w", fh.Filename, err)
		}
	}
	return nil
}

// POST /admin/products
// Multipart form: "data" holds the product JSON, "images" the files.
func AddProduct(products *store.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		GCSClient, bucket, err := utils.NewGCSClient(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create GCS client"})
			return
		}
		jsonData := c.PostForm("data")
		if jsonData == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing data"})
			return
		}

		var body dto.CreateProductDTO
		if err := json.Unmarshal([]byte(jsonData), &body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid data json"})
			return
		}

		categoryID, err := bson.ObjectIDFromHex(body.CategoryId)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
			return
		}
		files := form.File["images"]
		if len(files) > utils.MaxProductImages() {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Max %v images", utils.MaxProductImages())})
			return
		}
		if err := validateImages(files); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		product := models.Product{
			Name:                body.Name,
			CategoryId:          categoryID,
			Price:               body.Price,
			Description:         body.Description,
			Details:             body.Details,
			Sizes:               body.Sizes,
			Colors:              body.Colors,
			CulturalInspiration: body.CulturalInspiration,
			Material:            body.Material,
			IsNewArrival:        body.IsNewArrival,
			IsBestseller:        body.IsBestseller,
			Stock:               body.Stock,
			IsVisible:           body.IsVisible,
		}

		if len(files) > 0 {
			imageUrls, err := utils.UploadImagesToGCSAndGetPublicURLs(
				c.Request.Context(),
				GCSClient,
				bucket,
				utils.GenerateSlug(body.Name),
				files,
			)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			product.Images = imageUrls
		}

		created, err := products.Add(c.Request.Context(), product)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

// PUT /admin/products/:id
func UpdateProduct(products *store.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		prodID, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}

		dataStr := c.PostForm("data")
		if dataStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing data"})
			return
		}

		var body dto.UpdateProductDTO
		if err := json.Unmarshal([]byte(dataStr), &body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid data json", "details": err.Error()})
			return
		}

		product, err := products.ByID(prodID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		GCSClient, bucket, err := utils.NewGCSClient(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create GCS client"})
			return
		}

		// Only URLs that actually belong to the product may be removed.
		imagesToDelete := utils.IntersectStrings(body.RemovedImageUrls, product.Images)

		var newFiles []*multipart.FileHeader
		if form, err := c.MultipartForm(); err == nil && form != nil {
			newFiles = form.File["images"]
		}
		maxProdImages := utils.MaxProductImages()
		totalImageCount := len(product.Images) - len(imagesToDelete) + len(newFiles)
		if totalImageCount > maxProdImages {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Max %v images", maxProdImages)})
			return
		}
		if err := validateImages(newFiles); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		newObjectNames := []string{} // for cleanup if the store write fails
		var newImageUrls []string
		if len(newFiles) > 0 {
			urls, err := utils.UploadImagesToGCSAndGetPublicURLs(
				c.Request.Context(),
				GCSClient,
				bucket,
				product.Slug,
				newFiles,
			)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			newImageUrls = urls
			for _, imageUrl := range newImageUrls {
				if objName, err := utils.ObjectNameFromGCSPublicURL(bucket, imageUrl); err == nil {
					newObjectNames = append(newObjectNames, objName)
				}
			}
		}

		if body.Name != nil {
			product.Name = *body.Name
		}
		if body.Price != nil {
			product.Price = *body.Price
		}
		if body.CategoryId != nil {
			categoryID, err := bson.ObjectIDFromHex(*body.CategoryId)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
				return
			}
			product.CategoryId = categoryID
		}
		if body.Description != nil {
			product.Description = *body.Description
		}
		if body.Details != nil {
			product.Details = *body.Details
		}
		if body.Sizes != nil {
			product.Sizes = *body.Sizes
		}
		if body.Colors != nil {
			product.Colors = *body.Colors
		}
		if body.CulturalInspiration != nil {
			product.CulturalInspiration = *body.CulturalInspiration
		}
		if body.Material != nil {
			product.Material = *body.Material
		}
		if body.IsNewArrival != nil {
			product.IsNewArrival = *body.IsNewArrival
		}
		if body.IsBestseller != nil {
			product.IsBestseller = *body.IsBestseller
		}
		if body.Stock != nil {
			product.Stock = *body.Stock
		}
		if body.IsVisible != nil {
			product.IsVisible = body.IsVisible
		}
		if len(imagesToDelete) > 0 || len(newImageUrls) > 0 {
			product.Images = utils.MergeImageUrls(product.Images, imagesToDelete, newImageUrls)
		}

		updated, err := products.Update(c.Request.Context(), product)
		if err != nil {
			if len(newObjectNames) > 0 {
				_ = utils.DeleteGCSObjects(c.Request.Context(), GCSClient, bucket, newObjectNames)
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed", "details": err.Error()})
			return
		}

		// Store write went fine, drop the replaced images from GCS.
		if len(imagesToDelete) > 0 {
			objectNames := make([]string, 0, len(imagesToDelete))
			for _, imageUrl := range imagesToDelete {
				if obj, err := utils.ObjectNameFromGCSPublicURL(bucket, imageUrl); err == nil {
					objectNames = append(objectNames, obj)
				}
			}
			_ = utils.DeleteGCSObjects(c.Request.Context(), GCSClient, bucket, objectNames)
		}

		c.JSON(http.StatusOK, updated)
	}
}

// DELETE /admin/products/:id
func DeleteProduct(products *store.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		prodID, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}

		if err := products.Delete(c.Request.Context(), prodID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
