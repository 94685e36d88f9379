package ai

import "errors"

// ErrQuotaExceeded indicates the AI provider returned a quota/limit error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("ai quota exceeded")

// ErrParse indicates the provider reply was not valid JSON after fence stripping.
var ErrParse = errors.New("ai response is not valid json")

// ErrSchema indicates valid JSON missing title/tagline or a numeric rating.
var ErrSchema = errors.New("ai response missing required fields")

// ErrNoImage indicates the provider returned no inline image payload.
var ErrNoImage = errors.New("no image returned by provider")

// ErrNoSpeech indicates transcription produced empty text.
var ErrNoSpeech = errors.New("no speech detected in audio")
