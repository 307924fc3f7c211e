// Package ai talks to the Gemini API for the storefront's stylist
// assistant and the admin image generator.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/afriblend/afriblend-backend/models"
	"google.golang.org/genai"
)

// User-facing failure messages. AI errors are terminal for the action;
// the user retries manually.
var (
	ErrStylistUnavailable = errors.New("Sorry, I'm having a little trouble coming up with ideas right now. Please try again in a moment.")
	ErrImagesUnavailable  = errors.New("Sorry, an error occurred while generating images. Please try again later.")
	ErrPromptBlocked      = errors.New("The prompt was blocked due to safety policies. Please modify your prompt and try again.")
)

const (
	textModel  = "gemini-2.5-flash"
	imageModel = "imagen-3.0-generate-002"
)

type StyleRecommendation struct {
	StylistMessage      string               `json:"stylistMessage"`
	RecommendedProducts []RecommendedProduct `json:"recommendedProducts"`
}

type RecommendedProduct struct {
	ProductId string `json:"productId"`
	Reason    string `json:"reason"`
}

type Client struct {
	genai *genai.Client
}

func NewClient(ctx context.Context) (*Client, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Client{genai: c}, nil
}

// catalogEntry is the trimmed product view handed to the model.
type catalogEntry struct {
	Id                  string `json:"id"`
	Name                string `json:"name"`
	Category            string `json:"category"`
	Description         string `json:"description"`
	CulturalInspiration string `json:"culturalInspiration,omitempty"`
}

var styleSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"stylistMessage": {
			Type:        genai.TypeString,
			Description: "A friendly and stylish message to the user explaining the outfit choice.",
		},
		"recommendedProducts": {
			Type:        genai.TypeArray,
			Description: "A list of recommended products to create the look.",
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"productId": {
						Type:        genai.TypeString,
						Description: "The string ID of the recommended product from the provided list.",
					},
					"reason": {
						Type:        genai.TypeString,
						Description: "A brief reason why this specific product was chosen for the outfit.",
					},
				},
				Required: []string{"productId", "reason"},
			},
		},
	},
	Required: []string{"stylistMessage", "recommendedProducts"},
}

const stylistInstruction = `You are 'Zola', the expert AI fashion stylist for Afriblend, an e-commerce store specializing in modern African fashion. Your personality is chic, encouraging, and knowledgeable about African textiles and styles.
Your task is to help a customer find the perfect outfit based on their request.
1. Analyze the user's prompt (e.g., "I'm going to a summer wedding," "I need a smart casual look for work").
2. Review the provided list of available Afriblend products.
3. Select 1-3 products that create a cohesive, stylish outfit that fits the user's request.
4. Write a personalized, encouraging message explaining your choices and how to style them.
5. ONLY recommend products from the provided list by using their exact 'productId'. Do not invent products.
6. Respond ONLY with the JSON format defined in the schema.`

// StyleRecommendation asks the stylist persona for 1-3 products from
// the visible catalog that fit the user's prompt.
func (c *Client) StyleRecommendation(ctx context.Context, userPrompt string, products []models.Product, categories []models.Category) (StyleRecommendation, error) {
	categoryNames := make(map[string]string, len(categories))
	for _, cat := range categories {
		categoryNames[cat.Id.Hex()] = cat.Name
	}

	catalog := make([]catalogEntry, 0, len(products))
	for _, p := range products {
		name, ok := categoryNames[p.CategoryId.Hex()]
		if !ok {
			name = "Unknown"
		}
		catalog = append(catalog, catalogEntry{
			Id:                  p.Id.Hex(),
			Name:                p.Name,
			Category:            name,
			Description:         p.Description,
			CulturalInspiration: p.CulturalInspiration,
		})
	}

	catalogJSON, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return StyleRecommendation{}, err
	}

	temperature := float32(0.7)
	contents := genai.Text(fmt.Sprintf("User request: %q\n\nAvailable Products: %s", userPrompt, catalogJSON))
	resp, err := c.genai.Models.GenerateContent(ctx, textModel, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(stylistInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    styleSchema,
		Temperature:       &temperature,
	})
	if err != nil {
		log.Printf("style recommendation: %v", err)
		return StyleRecommendation{}, ErrStylistUnavailable
	}

	var rec StyleRecommendation
	if err := json.Unmarshal([]byte(strings.TrimSpace(resp.Text())), &rec); err != nil {
		log.Printf("style recommendation decode: %v", err)
		return StyleRecommendation{}, ErrStylistUnavailable
	}
	return rec, nil
}

// GenerateImages produces n JPEGs for an admin prompt and returns the
// raw bytes. Safety-policy rejections get their own message so the
// admin knows to reword the prompt rather than retry.
func (c *Client) GenerateImages(ctx context.Context, prompt string, n int32, aspectRatio string) ([][]byte, error) {
	resp, err := c.genai.Models.GenerateImages(ctx, imageModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages:   n,
		OutputMIMEType:   "image/jpeg",
		AspectRatio:      aspectRatio,
		IncludeRAIReason: true,
	})
	if err != nil {
		log.Printf("generate images: %v", err)
		if strings.Contains(strings.ToUpper(err.Error()), "SAFETY") {
			return nil, ErrPromptBlocked
		}
		return nil, ErrImagesUnavailable
	}
	if len(resp.GeneratedImages) == 0 {
		// No images without an error usually means a policy rejection.
		return nil, ErrPromptBlocked
	}

	images := make([][]byte, 0, len(resp.GeneratedImages))
	for _, img := range resp.GeneratedImages {
		if img.Image != nil {
			images = append(images, img.Image.ImageBytes)
		}
	}
	return images, nil
}
