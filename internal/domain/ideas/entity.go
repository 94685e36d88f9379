package ideas

import (
	"time"
)

// ID tipe untuk Idea
type ID string

// ImageType enum, satu nilai per prompt template
type ImageType string

const (
	ImageHero      ImageType = "hero"
	ImageUIMockup  ImageType = "ui-mockup"
	ImageLifestyle ImageType = "lifestyle"
	ImageBlueprint ImageType = "blueprint"
	ImageLogo      ImageType = "logo"
)

// KnownImageType reports whether t is one of the five generated visuals.
func KnownImageType(t ImageType) bool {
	switch t {
	case ImageHero, ImageUIMockup, ImageLifestyle, ImageBlueprint, ImageLogo:
		return true
	}
	return false
}

// Analysis value object, hasil evaluasi AI atas satu transcript
type Analysis struct {
	Title        string   `json:"title"`
	Tagline      string   `json:"tagline"`
	Rating       float64  `json:"rating"`
	Analysis     string   `json:"analysis"`
	KeyPoints    []string `json:"keyPoints"`
	Improvements []string `json:"improvements"`
}

// Image is one generated visual attached to an idea.
type Image struct {
	Type     ImageType `json:"type"`
	Label    string    `json:"label"`
	FilePath string    `json:"filePath"` // relative to the image storage root
	Prompt   string    `json:"prompt"`
}

// Aggregate Root: Idea
type Idea struct {
	ID         ID        `json:"id"`
	Transcript string    `json:"transcript"`
	Analysis   Analysis  `json:"analysis"`
	Images     []Image   `json:"images"`
	CreatedAt  time.Time `json:"createdAt"`
}
