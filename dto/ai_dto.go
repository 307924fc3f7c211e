package dto

type StyleRequestDTO struct {
	Prompt string `json:"prompt" binding:"required"`
}

type GenerateImagesDTO struct {
	Prompt         string `json:"prompt" binding:"required"`
	NumberOfImages int32  `json:"numberOfImages" binding:"gte=0,lte=4"`
	AspectRatio    string `json:"aspectRatio"`
	// Persist stores the results in object storage and returns URLs
	// instead of inline base64 payloads.
	Persist bool `json:"persist"`
}
