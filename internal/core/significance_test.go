package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeEmotions(t *testing.T) {

	t.Run("Single pattern", func(t *testing.T) {
		actual := AnalyzeEmotions("I felt Happy and excited")
		expected := "Your emotional state shows positive energy and fulfillment. This suggests a period of personal growth and satisfaction in your life. " +
			"This positive emotional state may be revealing your capacity for happiness and personal achievement.\n\n" +
			"Remember that emotions in dreams often serve as messengers from our subconscious, helping us understand our deeper needs and concerns."
		assert.Equal(t, expected, actual)
	})

	t.Run("Several patterns", func(t *testing.T) {
		actual := AnalyzeEmotions("scared and angry")
		assert.Contains(t, actual, "Your emotional response indicates underlying anxieties or fears")
		assert.Contains(t, actual, "The presence of anger suggests unresolved conflicts")
		assert.Contains(t, actual, "The combination of fear, anger suggests a complex emotional landscape. "+
			"This mix of emotions indicates that you're processing multiple aspects of your life experience simultaneously.\n\n")
		// Patterns are listed in declaration order
		assert.Less(t, strings.Index(actual, "underlying anxieties"), strings.Index(actual, "presence of anger"))
	})

	t.Run("Default", func(t *testing.T) {
		actual := AnalyzeEmotions("meh, nothing")
		expected := "Your emotional response to the dream reveals deep-seated feelings that are seeking expression. Consider journaling about these emotions to gain further insight.\n\n" +
			"Remember that emotions in dreams often serve as messengers from our subconscious, helping us understand our deeper needs and concerns."
		assert.Equal(t, expected, actual)
	})

	t.Run("Every pattern", func(t *testing.T) {
		actual := AnalyzeEmotions("elated, dread, melancholy, uneasy, bewildered, furious")
		for _, pattern := range EmotionalPatterns {
			assert.Contains(t, actual, pattern.Analysis)
			assert.Contains(t, actual, pattern.Deeper)
		}
		assert.Contains(t, actual, "The combination of joy, fear, sadness, anxiety, confusion, anger suggests")
	})
}
