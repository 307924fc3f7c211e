package seed

import (
	"fmt"

	"github.com/afriblend/afriblend-backend/models"
	"github.com/afriblend/afriblend-backend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Demo dataset written into empty collections when seeding is invoked.
// Category and product ids must line up, so both are derived here.

var (
	catDresses     = bson.NewObjectID()
	catAccessories = bson.NewObjectID()
	catMensWear    = bson.NewObjectID()
	catHomeDecor   = bson.NewObjectID()
)

func demoCategories() []models.Category {
	return []models.Category{
		{Id: catDresses, Name: "Dresses"},
		{Id: catAccessories, Name: "Accessories"},
		{Id: catMensWear, Name: "Men's Wear"},
		{Id: catHomeDecor, Name: "Home Decor"},
	}
}

func demoProduct(name, sku string, category bson.ObjectID, price float64, rating float64, reviews, stock int) models.Product {
	return models.Product{
		Id:          bson.NewObjectID(),
		Name:        name,
		Slug:        fmt.Sprintf("%s-%s", utils.GenerateSlug(name), sku),
		SKU:         sku,
		CategoryId:  category,
		Price:       price,
		Rating:      rating,
		ReviewCount: reviews,
		Stock:       stock,
	}
}

func demoProducts() []models.Product {
	gown := demoProduct("Ankara Infinity Gown", "AFB-DRE-001", catDresses, 120.00, 4.8, 78, 25)
	gown.Description = "A breathtaking, floor-length gown made from authentic Ankara wax print. Its versatile infinity design allows for multiple styling options."
	gown.Details = []string{"100% Cotton Ankara", "Versatile infinity wrap design", "Floor-length", "Handmade in Kenya"}
	gown.Images = []string{"https://picsum.photos/seed/gown1/800/1200", "https://picsum.photos/seed/gown2/800/1200"}
	gown.Sizes = []string{"S", "M", "L", "XL"}
	gown.Colors = []string{"Royal Blue", "Sunset Orange"}
	gown.CulturalInspiration = "Ankara Prints"
	gown.Material = "Cotton"
	gown.IsBestseller = true

	necklace := demoProduct("Masai Beaded Collar Necklace", "AFB-ACC-001", catAccessories, 75.50, 4.9, 152, 50)
	necklace.Description = "An exquisite, handcrafted collar necklace featuring traditional Masai beadwork."
	necklace.Details = []string{"Hand-laid glass beads", "Leather backing for comfort", "Adjustable tie closure", "Crafted by Masai artisans"}
	necklace.Images = []string{"https://picsum.photos/seed/necklace1/800/800"}
	necklace.Sizes = []string{"One Size"}
	necklace.Colors = []string{"Rainbow", "Monochrome"}
	necklace.CulturalInspiration = "Masai Beads"
	necklace.Material = "Glass Beads, Leather"
	necklace.IsNewArrival = true

	jacket := demoProduct("Kente Cloth Bomber Jacket", "AFB-MEN-001", catMensWear, 150.00, 4.7, 45, 30)
	jacket.Description = "A modern bomber jacket with a classic silhouette, elevated by panels of authentic Kente cloth."
	jacket.Details = []string{"Satin lining", "Ribbed cuffs and hem", "Authentic Kente cloth panels", "Durable front zipper"}
	jacket.Images = []string{"https://picsum.photos/seed/jacket1/800/800"}
	jacket.Sizes = []string{"M", "L", "XL", "XXL"}
	jacket.Colors = []string{"Black/Gold", "Navy/Blue"}
	jacket.CulturalInspiration = "Kente Cloth"
	jacket.Material = "Cotton Blend"
	jacket.IsBestseller = true

	pillows := demoProduct("Mudcloth Throw Pillow Set", "AFB-DEC-001", catHomeDecor, 85.00, 4.9, 95, 40)
	pillows.Description = "A set of two decorative throw pillows made from hand-dyed Malian mudcloth."
	pillows.Details = []string{"Set of two 18x18 inch pillows", "Hidden zipper closure", "Pillow inserts included"}
	pillows.Images = []string{"https://picsum.photos/seed/pillow1/800/800"}
	pillows.Sizes = []string{"18x18 in"}
	pillows.Colors = []string{"Black/White", "Rust/Cream"}
	pillows.CulturalInspiration = "Malian Mudcloth"
	pillows.Material = "Cotton"

	skirt := demoProduct("Kitenge Wrap Skirt", "AFB-DRE-002", catDresses, 65.00, 4.6, 62, 60)
	skirt.Description = "A vibrant and flowing wrap skirt made from colorful East African Kitenge fabric."
	skirt.Details = []string{"100% Cotton Kitenge", "Adjustable wrap-around tie", "Midi-length", "Machine washable"}
	skirt.Images = []string{"https://picsum.photos/seed/skirt1/800/1200"}
	skirt.Sizes = []string{"One Size Fits Most"}
	skirt.Colors = []string{"Emerald Green", "Ruby Red"}
	skirt.CulturalInspiration = "Kitenge Fabric"
	skirt.Material = "Cotton"
	skirt.IsNewArrival = true

	return []models.Product{gown, necklace, jacket, pillows, skirt}
}

func demoRiders() []models.Rider {
	return []models.Rider{
		{Id: bson.NewObjectID(), Name: "Moses Kipchoge", Phone: "+254 700 000 001"},
		{Id: bson.NewObjectID(), Name: "Amina Otieno", Phone: "+254 700 000 002"},
	}
}

// DefaultSettings is also the fallback the settings store reports
// until the document is first written.
func DefaultSettings() models.StoreSettings {
	return models.StoreSettings{
		PaymentMethods: []models.PaymentMethodDetails{
			{
				Id:           "mpesa",
				Name:         "M-Pesa",
				Enabled:      true,
				Instructions: "Pay via M-Pesa to the till number below and keep the confirmation SMS.",
				Fields: []models.CustomField{
					{Id: "till", Label: "Till Number", Value: "123456"},
					{Id: "name", Label: "Account Name", Value: "Afriblend"},
				},
			},
			{
				Id:           "bank",
				Name:         "Bank Transfer",
				Enabled:      true,
				Instructions: "Transfer the order total to the account below, quoting your tracking code.",
				Fields: []models.CustomField{
					{Id: "bank", Label: "Bank", Value: "Equity Bank"},
					{Id: "account", Label: "Account Number", Value: "0123456789"},
				},
			},
		},
		HeroSlides: []models.HeroSlide{
			{
				Id:       "hero-1",
				Src:      "https://picsum.photos/seed/hero1/1600/900",
				Alt:      "Modern African fashion",
				Title:    "Wear Your Heritage",
				Subtitle: "Contemporary pieces rooted in African craft",
				Link:     "/products",
			},
		},
		Fab: models.FabSettings{Enabled: true},
	}
}

func DefaultFaqs() models.FaqList {
	return models.FaqList{Items: []models.FaqItem{
		{
			Id: "faq-1",
			Q:  "How long does delivery take?",
			A:  "Orders within Nairobi are delivered within 24 hours; upcountry orders take 2-4 business days.",
		},
		{
			Id: "faq-2",
			Q:  "How do I pay for my order?",
			A:  "We accept M-Pesa and bank transfer. Payment instructions are shown after checkout.",
		},
		{
			Id: "faq-3",
			Q:  "Can I track my order?",
			A:  "Yes. Every order gets a tracking code you can look up on the Track Order page, or search by the phone number used at checkout.",
		},
	}}
}

func DefaultContact() models.ContactInfo {
	return models.ContactInfo{
		Title:    "Get in Touch",
		Subtitle: "We would love to hear from you",
		ContactFields: []models.ContactField{
			{Id: "phone", Label: "Phone", Value: "+254 712 345 678", Icon: "Phone"},
			{Id: "email", Label: "Email", Value: "hello@afriblend.co.ke", Icon: "Mail"},
			{Id: "address", Label: "Address", Value: "Nairobi, Kenya", Icon: "MapPin"},
		},
	}
}

func DefaultOurStory() models.OurStoryContent {
	return models.OurStoryContent{
		Title:    "Our Story",
		Text:     "Afriblend began as a single stall celebrating African textiles and the artisans behind them. Today we work with makers across the continent to bring authentic craft to modern wardrobes.",
		ImageUrl: "https://picsum.photos/seed/story/1200/800",
	}
}

func DefaultNotification() models.Notification {
	return models.Notification{DisplayType: "popup"}
}
