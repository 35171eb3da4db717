package core

import (
	"strings"

	"github.com/julien-sobczak/the-dreamwriter/pkg/text"
)

// AdviceRule appends a recommendation block when its condition holds.
type AdviceRule struct {
	Name  string
	Match func(lowerDream, lowerEmotions string) bool
	// Block returns the recommendation lines (each ending with a newline).
	Block func(lowerDream string) string
}

func dreamContains(keywords ...string) func(string, string) bool {
	return func(lowerDream, _ string) bool {
		return text.ContainsAny(lowerDream, keywords...)
	}
}

func emotionsContain(keywords ...string) func(string, string) bool {
	return func(_, lowerEmotions string) bool {
		return text.ContainsAny(lowerEmotions, keywords...)
	}
}

func fixedBlock(lines ...string) func(string) string {
	block := strings.Join(lines, "\n") + "\n"
	return func(string) string {
		return block
	}
}

// AdviceRules are evaluated in this order. They are not exclusive.
var AdviceRules = []AdviceRule{
	{
		Name:  "falling",
		Match: dreamContains("falling"),
		Block: fixedBlock(
			"1. Practice grounding exercises to enhance your sense of stability and control:",
			"   - Try the 5-4-3-2-1 sensory awareness technique",
			"   - Engage in regular physical exercise to strengthen your sense of balance",
			"2. Explore areas in your life where you feel unsupported and consider building stronger support systems.",
		),
	},
	{
		Name:  "chase",
		Match: dreamContains("chase", "running"),
		Block: fixedBlock(
			"1. Identify what you might be avoiding in your waking life:",
			"   - Make a list of current challenges or responsibilities",
			"   - Create a step-by-step plan to address each one",
			"2. Practice confronting difficult situations through gradual exposure and confidence-building exercises.",
		),
	},
	{
		Name:  "water",
		Match: dreamContains("water"),
		Block: func(lowerDream string) string {
			if strings.Contains(lowerDream, "calm") {
				return "1. Maintain your emotional balance through:\n" +
					"   - Regular meditation practice\n" +
					"   - Mindful breathing exercises\n" +
					"2. Document your successful emotional regulation strategies.\n"
			}
			return "1. Develop emotional regulation techniques:\n" +
				"   - Practice deep breathing exercises\n" +
				"   - Try progressive muscle relaxation\n" +
				"2. Consider working with a counselor to navigate emotional turbulence.\n"
		},
	},
	{
		Name:  "flying",
		Match: dreamContains("flying"),
		Block: fixedBlock(
			"1. Channel your aspirations into actionable goals:",
			"   - Create a vision board",
			"   - Set SMART objectives for your dreams",
			"2. Explore activities that promote personal freedom and growth.",
		),
	},
	{
		Name:  "anxiety",
		Match: emotionsContain("anxiety", "stress"),
		Block: fixedBlock(
			"1. Establish a calming bedtime routine:",
			"   - Practice gentle yoga or stretching",
			"   - Try aromatherapy with lavender or chamomile",
			"2. Maintain an anxiety journal to track triggers and patterns.",
			"3. Consider mindfulness meditation or guided relaxation techniques.",
		),
	},
	{
		Name:  "sadness",
		Match: emotionsContain("sad", "grief"),
		Block: fixedBlock(
			"1. Create space for emotional processing:",
			"   - Set aside quiet time for reflection",
			"   - Practice self-compassion exercises",
			"2. Explore grief counseling or support groups.",
			"3. Engage in expressive arts or journaling.",
		),
	},
	{
		Name:  "teeth",
		Match: dreamContains("teeth", "appearance"),
		Block: fixedBlock(
			"1. Enhance self-expression through:",
			"   - Public speaking practice",
			"   - Writing exercises",
			"2. Work with a therapist on communication skills.",
			"3. Practice positive self-image affirmations.",
		),
	},
	{
		Name:  "house",
		Match: dreamContains("house", "home"),
		Block: fixedBlock(
			"1. Evaluate your personal boundaries and living space:",
			"   - Declutter and organize your environment",
			"   - Create a dedicated space for relaxation",
			"2. Reflect on your sense of security and belonging.",
			"3. Consider feng shui principles for harmony in your living space.",
		),
	},
}

const (
	adviceIntroduction = "Based on your unique dream experience and emotional response, here are personalized recommendations:\n\n"

	defaultAdvice = "1. Maintain a detailed dream journal:\n" +
		"   - Record dreams immediately upon waking\n" +
		"   - Note recurring themes and symbols\n" +
		"2. Practice mindfulness meditation daily.\n" +
		"3. Schedule regular self-reflection time.\n"

	personalGrowthSuggestions = "\nPersonal Growth Suggestions:\n" +
		"• Consider working with a dream therapist or counselor\n" +
		"• Join a dream interpretation group or workshop\n" +
		"• Read books on dream psychology and symbolism\n"

	adviceConclusion = "\nRemember: Your dreams are unique messages from your subconscious. Regular reflection and professional guidance can help you better understand their significance in your life journey."
)

// GenerateAdvice returns a list of recommendations based on the dream and the emotions.
func GenerateAdvice(dream, emotions string) string {
	lowerDream := text.Lower(dream)
	lowerEmotions := text.Lower(emotions)

	var sb strings.Builder
	sb.WriteString(adviceIntroduction)

	var applied []string
	for _, rule := range AdviceRules {
		if !rule.Match(lowerDream, lowerEmotions) {
			continue
		}
		applied = append(applied, rule.Name)
		sb.WriteString(rule.Block(lowerDream))
	}
	CurrentLogger().Debugf("Advice rules applied: %v", applied)

	if len(applied) == 0 {
		sb.WriteString(defaultAdvice)
	}

	sb.WriteString(personalGrowthSuggestions)
	sb.WriteString(adviceConclusion)
	return sb.String()
}
