package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
)

// ImageService resolves image references into delivery URLs. Marketing
// content stores Cloudinary public IDs; product images from the commerce
// API arrive as relative paths and are prefixed against the API root.
type ImageService struct {
	cld       *cloudinary.Cloudinary
	imageRoot string
}

var imageService *ImageService

// InitImageService wires Cloudinary delivery for marketing images.
func InitImageService(cloudName, apiKey, apiSecret, imageRoot string) error {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	imageService = &ImageService{cld: cld, imageRoot: imageRoot}
	log.Println("✅ Image service initialized")
	return nil
}

// GetImageService returns the initialized service.
func GetImageService() *ImageService {
	return imageService
}

// ContentURL builds a delivery URL for a stored Cloudinary public ID,
// with an f_auto/q_auto transformation applied on delivery.
func (s *ImageService) ContentURL(publicID string) string {
	if publicID == "" {
		return ""
	}

	img, err := s.cld.Image(publicID)
	if err != nil {
		log.Printf("[images] failed to build asset for %s: %v", publicID, err)
		return ""
	}
	img.Transformation = "f_auto,q_auto,w_1200"

	url, err := img.String()
	if err != nil {
		log.Printf("[images] failed to build URL for %s: %v", publicID, err)
		return ""
	}
	return url
}

// ProductURL prefixes a relative product image path against the commerce
// API root. Already-absolute URLs pass through untouched.
func (s *ImageService) ProductURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return s.imageRoot + path
}
