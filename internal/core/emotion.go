package core

import (
	"fmt"

	"github.com/julien-sobczak/the-dreamwriter/pkg/text"
)

// Emotion is the dominant emotion label driving the decorative theme.
type Emotion string

const (
	EmotionNeutral Emotion = "neutral"
	EmotionHappy   Emotion = "happy"
	EmotionSad     Emotion = "sad"
	EmotionFear    Emotion = "fear"
	EmotionAnxiety Emotion = "anxiety"
)

// Emotions lists all labels, neutral first.
var Emotions = []Emotion{
	EmotionNeutral,
	EmotionHappy,
	EmotionSad,
	EmotionFear,
	EmotionAnxiety,
}

// EmotionKeywords is used to classify the emotions text.
var EmotionKeywords = KeywordTable{
	{
		Name:     string(EmotionHappy),
		Keywords: []string{"happy", "joy", "excited", "peaceful", "calm", "content", "bliss", "ecstatic", "delighted"},
	},
	{
		Name:     string(EmotionSad),
		Keywords: []string{"sad", "depressed", "melancholy", "grief", "loss", "sorrow", "despair", "heartbroken"},
	},
	{
		Name:     string(EmotionFear),
		Keywords: []string{"scared", "terrified", "horror", "frightened", "panic", "dread", "terror", "phobia"},
	},
	{
		Name:     string(EmotionAnxiety),
		Keywords: []string{"anxious", "worried", "nervous", "uneasy", "stressed", "tense", "restless", "apprehensive"},
	},
}

// ParseEmotion converts a label to an Emotion.
func ParseEmotion(label string) (Emotion, error) {
	for _, emotion := range Emotions {
		if string(emotion) == text.Lower(label) {
			return emotion, nil
		}
	}
	return EmotionNeutral, fmt.Errorf("unknown emotion %q", label)
}

// DetectDominantEmotion returns the category with the most keyword hits.
//
// Categories are reduced pairwise in declaration order and the accumulator
// is only kept when strictly greater. Among tied maxima, the last declared
// category wins ("sad" + "scared" => fear). When nothing matches, the result
// is neutral.
func DetectDominantEmotion(emotions string) Emotion {
	counts := EmotionKeywords.Tally(text.Lower(emotions))
	CurrentLogger().Dump("emotion tallies", EmotionKeywords.Names(), counts)

	dominant := 0
	for i := 1; i < len(counts); i++ {
		if counts[dominant] > counts[i] {
			continue
		}
		dominant = i
	}

	if counts[dominant] == 0 {
		return EmotionNeutral
	}
	return Emotion(EmotionKeywords[dominant].Name)
}
