package ideas

import (
	"errors"
	"fmt"
)

// ErrValidation tags every bad-request failure; handlers map it to 400.
var ErrValidation = errors.New("validation failed")

var (
	ErrMissingID        = fmt.Errorf("%w: idea id is required", ErrValidation)
	ErrEmptyTranscript  = fmt.Errorf("%w: transcript is required", ErrValidation)
	ErrEmptyPrompt      = fmt.Errorf("%w: prompt is required", ErrValidation)
	ErrMissingAudio     = fmt.Errorf("%w: audio file is required", ErrValidation)
	ErrInvalidImageType = fmt.Errorf("%w: unknown image type", ErrValidation)
)

// ErrNotFound indicates the idea (or image file) does not exist.
var ErrNotFound = errors.New("idea not found")

// ErrPathEscape indicates a requested image path resolves outside the storage root.
var ErrPathEscape = errors.New("path escapes image storage root")
