package middleware

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bryanwahyu/ideaforge/internal/domain/ideas"
)

// Input validation and sanitization utilities

const maxTranscriptLen = 10000

var ideaIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,128}$`)

// ValidateIdeaID checks the opaque record id. The id flows into image file
// names, so the charset must exclude path separators and dots.
func ValidateIdeaID(id string) error {
	if id == "" {
		return ideas.ErrMissingID
	}
	if !ideaIDPattern.MatchString(id) {
		return fmt.Errorf("%w: id may contain alphanumerics, dash, underscore only (max 128 chars)", ideas.ErrValidation)
	}
	return nil
}

// ValidateImageType checks the type against the fixed closed set.
func ValidateImageType(t string) error {
	if !ideas.KnownImageType(ideas.ImageType(t)) {
		return fmt.Errorf("%w: %q (allowed: hero, ui-mockup, lifestyle, blueprint, logo)", ideas.ErrInvalidImageType, t)
	}
	return nil
}

// ValidateTranscript checks the raw idea text.
func ValidateTranscript(transcript string) error {
	if strings.TrimSpace(transcript) == "" {
		return ideas.ErrEmptyTranscript
	}
	if len(transcript) > maxTranscriptLen {
		return fmt.Errorf("%w: transcript exceeds %d characters", ideas.ErrValidation, maxTranscriptLen)
	}
	return nil
}

// SanitizeString removes dangerous characters from strings
func SanitizeString(input string) string {
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Remove control characters
	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}
