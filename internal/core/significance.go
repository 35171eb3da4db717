package core

import (
	"strings"

	"github.com/julien-sobczak/the-dreamwriter/pkg/text"
)

// EmotionalPattern associates keywords with the two sentences explaining them.
type EmotionalPattern struct {
	Name     string
	Keywords []string
	Analysis string
	Deeper   string
}

// EmotionalPatterns are evaluated in this order.
var EmotionalPatterns = []EmotionalPattern{
	{
		Name:     "joy",
		Keywords: []string{"happy", "excited", "peaceful", "content", "elated", "blissful"},
		Analysis: "Your emotional state shows positive energy and fulfillment. This suggests a period of personal growth and satisfaction in your life.",
		Deeper:   "This positive emotional state may be revealing your capacity for happiness and personal achievement.",
	},
	{
		Name:     "fear",
		Keywords: []string{"scared", "terrified", "frightened", "horror", "dread"},
		Analysis: "Your emotional response indicates underlying anxieties or fears that may need addressing. This could be related to recent changes or upcoming challenges.",
		Deeper:   "These fear-based emotions might be highlighting areas where you feel vulnerable or unprepared.",
	},
	{
		Name:     "sadness",
		Keywords: []string{"sad", "depressed", "melancholy", "grief", "heartbroken"},
		Analysis: "The presence of sadness in your dream suggests unprocessed emotions or a need for emotional healing.",
		Deeper:   "This emotional state may be calling for acknowledgment and gentle self-care.",
	},
	{
		Name:     "anxiety",
		Keywords: []string{"anxious", "worried", "nervous", "stressed", "uneasy"},
		Analysis: "Your emotional state reflects inner tension and concern. This might be connected to current life pressures or uncertainty about the future.",
		Deeper:   "The anxiety present in your dream could be highlighting areas where you need more support or clarity.",
	},
	{
		Name:     "confusion",
		Keywords: []string{"confused", "uncertain", "lost", "unclear", "bewildered"},
		Analysis: "The emotional confusion in your dream suggests a period of transition or decision-making in your life.",
		Deeper:   "This state of uncertainty may be inviting you to trust your intuition more deeply.",
	},
	{
		Name:     "anger",
		Keywords: []string{"angry", "furious", "rage", "frustrated", "irritated"},
		Analysis: "The presence of anger suggests unresolved conflicts or suppressed emotions that need attention.",
		Deeper:   "This emotional energy might be signaling a need to assert boundaries or address injustices.",
	},
}

const (
	defaultSignificance    = "Your emotional response to the dream reveals deep-seated feelings that are seeking expression. Consider journaling about these emotions to gain further insight.\n\n"
	significanceConclusion = "Remember that emotions in dreams often serve as messengers from our subconscious, helping us understand our deeper needs and concerns."
)

// AnalyzeEmotions explains every emotional pattern found in the emotions text.
func AnalyzeEmotions(emotions string) string {
	lowerEmotions := text.Lower(emotions)

	var sb strings.Builder
	var matched []string
	for _, pattern := range EmotionalPatterns {
		if !text.ContainsAny(lowerEmotions, pattern.Keywords...) {
			continue
		}
		matched = append(matched, pattern.Name)
		sb.WriteString(pattern.Analysis + " " + pattern.Deeper + "\n\n")
	}
	CurrentLogger().Debugf("Emotional patterns found: %v", matched)

	if len(matched) > 1 {
		sb.WriteString("The combination of " + strings.Join(matched, ", ") + " suggests a complex emotional landscape. ")
		sb.WriteString("This mix of emotions indicates that you're processing multiple aspects of your life experience simultaneously.\n\n")
	}

	if len(matched) == 0 {
		sb.WriteString(defaultSignificance)
	}

	sb.WriteString(significanceConclusion)
	return sb.String()
}
