package core

import (
	"strings"

	"github.com/julien-sobczak/the-dreamwriter/pkg/text"
	"golang.org/x/exp/slices"
)

// DreamTheme is a theme keyword searched in the dream text.
type DreamTheme struct {
	// Keyword is both the theme name and the substring searched for
	Keyword string
	// Paragraph renders the interpretation. The lowercased dream is
	// passed for themes with several variants.
	Paragraph func(lowerDream string) string
}

// DreamThemes are evaluated in this order.
var DreamThemes = []DreamTheme{
	{
		Keyword: "flying",
		Paragraph: func(lowerDream string) string {
			meaning := "represents a desire for freedom and transcendence. You may be feeling empowered or seeking to overcome current limitations."
			if strings.Contains(lowerDream, "scared") {
				meaning = "might indicate anxiety about control or a situation that feels out of reach."
			}
			return "Your experience of flying " + meaning + " Consider areas in your life where you feel restricted or are seeking liberation. "
		},
	},
	{
		Keyword: "falling",
		Paragraph: func(string) string {
			return "The falling in your dream suggests a loss of control or support in your life. " +
				"This could be related to a relationship, career, or personal goal. " +
				"The sensation of falling often reflects deep-seated insecurities or fear of failure. "
		},
	},
	{
		Keyword: "water",
		Paragraph: func(lowerDream string) string {
			meaning := "represents emotional turmoil or overwhelming feelings. The churning waters mirror your inner struggles."
			if strings.Contains(lowerDream, "calm") {
				meaning = "symbolizes emotional clarity and peace. The stillness of the water reflects your inner tranquility."
			}
			return "The presence of water in your dream " + meaning + " The depth of the water may represent the depths of your unconscious mind. "
		},
	},
	{
		Keyword: "chase",
		Paragraph: func(string) string {
			return "The chase in your dream indicates you may be avoiding confronting something important in your waking life. " +
				"Consider what you might be running from. " +
				"The pursuit in your dream could represent unresolved conflicts or responsibilities. "
		},
	},
	{
		Keyword: "teeth",
		Paragraph: func(string) string {
			return "Dreaming of teeth often connects to anxiety about appearance or communication, " +
				"and may symbolize powerlessness or difficulty expressing yourself. " +
				"This dream frequently occurs during periods of significant life changes or stress. "
		},
	},
	{
		Keyword: "house",
		Paragraph: func(string) string {
			return "The house in your dream represents your current state of mind or sense of self, " +
				"while an unknown house suggests unexplored aspects of your personality. " +
				"Different rooms may represent different aspects of your life or personality. "
		},
	},
	{
		Keyword: "darkness",
		Paragraph: func(string) string {
			return "The darkness in your dream represents fear of the unknown or uncertainty in your life " +
				"and suggests a need to explore hidden aspects of yourself. " +
				"The darkness may be calling you to trust your intuition. "
		},
	},
	{
		Keyword: "light",
		Paragraph: func(string) string {
			return "The light in your dream symbolizes clarity, understanding, or spiritual awakening; " +
				"it also represents hope, direction, or divine intervention and suggests personal growth and enlightenment. "
		},
	},
}

// GenericDreamEmotions are searched in the dream when no theme matched.
var GenericDreamEmotions = []string{"fear", "joy", "anxiety", "peace", "confusion", "anger", "love"}

const interpretationConclusion = "\nThis dream is uniquely personal to your current life situation and may be highlighting areas that need your attention or acknowledgment."

// GenerateInterpretation returns one paragraph per theme found in the dream.
func GenerateInterpretation(dream string) string {
	lowerDream := text.Lower(dream)

	var sb strings.Builder
	var usedThemes []string
	for _, theme := range DreamThemes {
		if !strings.Contains(lowerDream, theme.Keyword) || slices.Contains(usedThemes, theme.Keyword) {
			continue
		}
		usedThemes = append(usedThemes, theme.Keyword)
		sb.WriteString(theme.Paragraph(lowerDream))
	}
	CurrentLogger().Debugf("Dream themes found: %v", usedThemes)

	if len(usedThemes) == 0 {
		var emotionalContext []string
		for _, emotion := range GenericDreamEmotions {
			if strings.Contains(lowerDream, emotion) {
				emotionalContext = append(emotionalContext, emotion)
			}
		}

		if len(emotionalContext) > 0 {
			sb.WriteString("Your dream reflects a complex emotional state involving " + strings.Join(emotionalContext, " and ") + ". ")
			sb.WriteString("The interplay of these emotions suggests you may be processing significant life experiences or changes. ")
		} else {
			sb.WriteString("Your dream appears to be processing recent experiences and emotions. The specific symbols and events suggest a period of personal growth and introspection. ")
		}
	}

	sb.WriteString(interpretationConclusion)
	return sb.String()
}
