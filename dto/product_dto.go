package dto

// CreateProductDTO is parsed from the "data" multipart field (JSON);
// image files travel alongside it in the same form.
type CreateProductDTO struct {
	Name                string   `json:"name" binding:"required,min=3"`
	Price               float64  `json:"price" binding:"required,gt=0"`
	CategoryId          string   `json:"categoryId" binding:"required"`
	Description         string   `json:"description"`
	Details             []string `json:"details"`
	Sizes               []string `json:"sizes"`
	Colors              []string `json:"colors"`
	CulturalInspiration string   `json:"culturalInspiration"`
	Material            string   `json:"material"`
	IsNewArrival        bool     `json:"isNewArrival"`
	IsBestseller        bool     `json:"isBestseller"`
	Stock               int      `json:"stock" binding:"gte=0"`
	IsVisible           *bool    `json:"isVisible"`
}

// UpdateProductDTO — all fields are optional pointers
type UpdateProductDTO struct {
	Name                *string   `json:"name,omitempty"`
	Price               *float64  `json:"price,omitempty"`
	CategoryId          *string   `json:"categoryId,omitempty"`
	Description         *string   `json:"description,omitempty"`
	Details             *[]string `json:"details,omitempty"`
	Sizes               *[]string `json:"sizes,omitempty"`
	Colors              *[]string `json:"colors,omitempty"`
	CulturalInspiration *string   `json:"culturalInspiration,omitempty"`
	Material            *string   `json:"material,omitempty"`
	IsNewArrival        *bool     `json:"isNewArrival,omitempty"`
	IsBestseller        *bool     `json:"isBestseller,omitempty"`
	Stock               *int      `json:"stock,omitempty"`
	IsVisible           *bool     `json:"isVisible,omitempty"`
	RemovedImageUrls    []string  `json:"removedImageUrls,omitempty"`
}
