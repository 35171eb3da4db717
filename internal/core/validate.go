package core

import (
	"errors"

	"github.com/julien-sobczak/the-dreamwriter/pkg/text"
)

const (
	MinDreamLength    = 10
	MinEmotionsLength = 5
)

var (
	ErrDreamTooShort    = errors.New("Please provide more details about your dream for a better analysis.")
	ErrEmotionsTooShort = errors.New("Please describe your emotions in more detail for a more accurate analysis.")
)

// Validate checks the inputs are long enough to be analyzed.
// The dream is checked first so that only its message is reported when both are too short.
func Validate(dream, emotions string) error {
	if text.Length(dream) < MinDreamLength {
		return ErrDreamTooShort
	}
	if text.Length(emotions) < MinEmotionsLength {
		return ErrEmotionsTooShort
	}
	return nil
}
