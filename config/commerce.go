package config

import (
	"log"
	"os"
	"strings"
)

var (
	// CommerceAPIBase is the versioned API prefix of the commerce backend,
	// e.g. https://api.kularfashion.com/api/. All JSON endpoints hang off it.
	CommerceAPIBase string

	// CommerceAPIRoot is the bare host root of the commerce backend. Product
	// image paths returned by the API are relative to it.
	CommerceAPIRoot string
)

// InitCommerce reads the commerce backend location from the environment.
func InitCommerce() {
	CommerceAPIBase = os.Getenv("COMMERCE_API_BASE")
	if CommerceAPIBase == "" {
		CommerceAPIBase = "http://localhost:8000/api/"
		log.Println("⚠️  COMMERCE_API_BASE not set, using local default:", CommerceAPIBase)
	}
	if !strings.HasSuffix(CommerceAPIBase, "/") {
		CommerceAPIBase += "/"
	}

	CommerceAPIRoot = os.Getenv("COMMERCE_API_ROOT")
	if CommerceAPIRoot == "" {
		CommerceAPIRoot = strings.TrimSuffix(strings.TrimSuffix(CommerceAPIBase, "/"), "/api")
		log.Println("⚠️  COMMERCE_API_ROOT not set, derived from base:", CommerceAPIRoot)
	}
	CommerceAPIRoot = strings.TrimSuffix(CommerceAPIRoot, "/")

	log.Println("✅ Commerce API configured:", CommerceAPIBase)
}

// GetStorefrontURL returns the public URL of this storefront, used for
// OAuth redirects back to the shop.
func GetStorefrontURL() string {
	urlFromEnv := os.Getenv("STOREFRONT_URL")
	if urlFromEnv == "" {
		defaultURL := "http://localhost:8080"
		log.Printf("⚠️  STOREFRONT_URL not set, using default: %s", defaultURL)
		return defaultURL
	}
	return urlFromEnv
}
