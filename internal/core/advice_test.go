package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const groundingBlock = "1. Practice grounding exercises to enhance your sense of stability and control:\n" +
	"   - Try the 5-4-3-2-1 sensory awareness technique\n" +
	"   - Engage in regular physical exercise to strengthen your sense of balance\n" +
	"2. Explore areas in your life where you feel unsupported and consider building stronger support systems.\n"

func TestGenerateAdvice(t *testing.T) {

	t.Run("Default", func(t *testing.T) {
		actual := GenerateAdvice("I was walking in a forest", "puzzled")
		expected := "Based on your unique dream experience and emotional response, here are personalized recommendations:\n\n" +
			"1. Maintain a detailed dream journal:\n" +
			"   - Record dreams immediately upon waking\n" +
			"   - Note recurring themes and symbols\n" +
			"2. Practice mindfulness meditation daily.\n" +
			"3. Schedule regular self-reflection time.\n" +
			"\nPersonal Growth Suggestions:\n" +
			"• Consider working with a dream therapist or counselor\n" +
			"• Join a dream interpretation group or workshop\n" +
			"• Read books on dream psychology and symbolism\n" +
			"\nRemember: Your dreams are unique messages from your subconscious. Regular reflection and professional guidance can help you better understand their significance in your life journey."
		assert.Equal(t, expected, actual)
	})

	t.Run("Falling", func(t *testing.T) {
		for _, dream := range []string{
			"I was falling",
			"Falling into the water while flying over my house, my teeth were running away",
		} {
			for _, emotions := range []string{"anxiety and stress", "sad", "nothing"} {
				actual := GenerateAdvice(dream, emotions)
				assert.Contains(t, actual, groundingBlock)
				assert.NotContains(t, actual, "Maintain a detailed dream journal")
			}
		}
	})

	t.Run("Water calm", func(t *testing.T) {
		actual := GenerateAdvice("calm water", "peaceful")
		assert.Contains(t, actual, "1. Maintain your emotional balance through:\n")
		assert.NotContains(t, actual, "Develop emotional regulation techniques")
	})

	t.Run("Water turbulent", func(t *testing.T) {
		actual := GenerateAdvice("stormy water", "peaceful")
		assert.Contains(t, actual, "1. Develop emotional regulation techniques:\n")
		assert.NotContains(t, actual, "Maintain your emotional balance")
	})

	t.Run("Emotions", func(t *testing.T) {
		actual := GenerateAdvice("a strange dream", "I was stressed and full of grief")
		assert.Contains(t, actual, "1. Establish a calming bedtime routine:\n")
		assert.Contains(t, actual, "1. Create space for emotional processing:\n")
		// Emotions keywords are only searched in the emotions
		actual = GenerateAdvice("a dream full of stress and grief", "nothing")
		assert.Contains(t, actual, "Maintain a detailed dream journal")
	})

	t.Run("Rules order", func(t *testing.T) {
		actual := GenerateAdvice("At home, my teeth were flying", "sad")
		flying := strings.Index(actual, "Channel your aspirations")
		sadness := strings.Index(actual, "Create space for emotional processing")
		teeth := strings.Index(actual, "Enhance self-expression")
		house := strings.Index(actual, "Evaluate your personal boundaries")
		assert.True(t, flying >= 0 && flying < sadness && sadness < teeth && teeth < house)
	})

	t.Run("Always closed", func(t *testing.T) {
		for _, dream := range []string{"", "falling", "a house"} {
			actual := GenerateAdvice(dream, "")
			assert.True(t, strings.HasPrefix(actual, adviceIntroduction))
			assert.Contains(t, actual, personalGrowthSuggestions)
			assert.True(t, strings.HasSuffix(actual, adviceConclusion))
		}
	})
}
