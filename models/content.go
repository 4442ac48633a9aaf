package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Marketing content owned by the storefront. Rendered on the home page;
// nothing here is commerce data.

// HeroBanner is the rotating hero section slide
type HeroBanner struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey" db:"id"`
	Title     string         `json:"title" gorm:"not null" db:"title"`
	Subtitle  string         `json:"subtitle" db:"subtitle"`
	ImageID   string         `json:"image_id" gorm:"not null" db:"image_id"` // Cloudinary public ID
	CTA       datatypes.JSON `json:"cta" gorm:"type:jsonb"`                  // {label: "...", href: "..."}
	Position  int            `json:"position" gorm:"default:0" db:"position"`
	Active    bool           `json:"active" gorm:"default:true" db:"active"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime" db:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime" db:"updated_at"`
}

func (b *HeroBanner) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// FeaturedCategory is a curated tile linking into the catalog. CategoryRef
// is the commerce API category id; the storefront never resolves it locally.
type FeaturedCategory struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey" db:"id"`
	CategoryRef string    `json:"category_ref" gorm:"not null" db:"category_ref"`
	Label       string    `json:"label" gorm:"not null" db:"label"`
	ImageID     string    `json:"image_id" gorm:"not null" db:"image_id"`
	Position    int       `json:"position" gorm:"default:0" db:"position"`
	Active      bool      `json:"active" gorm:"default:true" db:"active"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime" db:"updated_at"`
}

func (f *FeaturedCategory) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// Testimonial is a customer quote shown on the home page
type Testimonial struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey" db:"id"`
	Author    string         `json:"author" gorm:"not null" db:"author"`
	Quote     string         `json:"quote" gorm:"not null" db:"quote"`
	Rating    int            `json:"rating" gorm:"default:5;check:rating BETWEEN 1 AND 5" db:"rating"`
	Meta      datatypes.JSON `json:"meta,omitempty" gorm:"type:jsonb"` // {location: "...", verified: true}
	Active    bool           `json:"active" gorm:"default:true" db:"active"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime" db:"created_at"`
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// Brand is a logo strip entry
type Brand struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey" db:"id"`
	Name     string    `json:"name" gorm:"not null;uniqueIndex" db:"name"`
	LogoID   string    `json:"logo_id" gorm:"not null" db:"logo_id"`
	Position int       `json:"position" gorm:"default:0" db:"position"`
	Active   bool      `json:"active" gorm:"default:true" db:"active"`
}

func (b *Brand) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// HomeContent is the assembled home page payload
type HomeContent struct {
	Hero               []HeroBanner       `json:"hero"`
	FeaturedCategories []FeaturedCategory `json:"featured_categories"`
	Testimonials       []Testimonial      `json:"testimonials"`
	Brands             []Brand            `json:"brands"`
}

// NewsletterSubscriber rows are written through pgx, not GORM; the struct
// exists for the API surface only.
type NewsletterSubscriber struct {
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// NewsletterRequest is the subscribe request body
type NewsletterRequest struct {
	Email string `json:"email" binding:"required,email" example:"shopper@example.com"`
}
