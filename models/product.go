package models

import "go.mongodb.org/mongo-driver/v2/bson"

type Product struct {
	Id                  bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                string        `bson:"name" json:"name"`
	Slug                string        `bson:"slug" json:"slug"`
	SKU                 string        `bson:"sku" json:"sku"`
	CategoryId          bson.ObjectID `bson:"categoryId" json:"categoryId"`
	Price               float64       `bson:"price" json:"price"`
	Rating              float64       `bson:"rating" json:"rating"`
	ReviewCount         int           `bson:"reviewCount" json:"reviewCount"`
	Description         string        `bson:"description" json:"description"`
	Details             []string      `bson:"details" json:"details"`
	Images              []string      `bson:"images" json:"images"`
	Sizes               []string      `bson:"sizes" json:"sizes"`
	Colors              []string      `bson:"colors" json:"colors"`
	CulturalInspiration string        `bson:"culturalInspiration,omitempty" json:"culturalInspiration,omitempty"`
	Material            string        `bson:"material,omitempty" json:"material,omitempty"`
	IsNewArrival        bool          `bson:"isNewArrival,omitempty" json:"isNewArrival,omitempty"`
	IsBestseller        bool          `bson:"isBestseller,omitempty" json:"isBestseller,omitempty"`
	Stock               int           `bson:"stock" json:"stock"`
	// Absence of the field means visible, so a plain bool won't do.
	IsVisible *bool `bson:"isVisible,omitempty" json:"isVisible,omitempty"`
}

// Visible reports whether the product should appear on the public site.
func (p Product) Visible() bool {
	return p.IsVisible == nil || *p.IsVisible
}
