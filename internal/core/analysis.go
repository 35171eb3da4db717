package core

import (
	"math/rand/v2"
	"time"
)

// Analysis is the result of a submission. All text fields are always populated.
type Analysis struct {
	Dream                 string  `yaml:"dream"`
	Emotions              string  `yaml:"emotions"`
	DominantEmotion       Emotion `yaml:"dominant_emotion"`
	Interpretation        string  `yaml:"interpretation"`
	EmotionalSignificance string  `yaml:"emotional_significance"`
	Advice                string  `yaml:"advice"`
}

// Analyze validates the inputs and generates the analysis.
// The same inputs always produce the same analysis.
func Analyze(dream, emotions string) (*Analysis, error) {
	if err := Validate(dream, emotions); err != nil {
		CurrentLogger().Debugf("Input rejected: %v", err)
		return nil, err
	}

	analysis := &Analysis{
		Dream:                 dream,
		Emotions:              emotions,
		DominantEmotion:       DetectDominantEmotion(emotions),
		Interpretation:        GenerateInterpretation(dream),
		EmotionalSignificance: AnalyzeEmotions(emotions),
		Advice:                GenerateAdvice(dream, emotions),
	}
	CurrentLogger().Infof("Dream analyzed (dominant emotion: %s)", analysis.DominantEmotion)
	return analysis, nil
}

// Analyzer simulates some thinking before revealing an analysis.
type Analyzer struct {
	MinDelay time.Duration
	MaxDelay time.Duration
	rand     *rand.Rand
}

func NewAnalyzer(minDelay, maxDelay time.Duration) *Analyzer {
	return &Analyzer{
		MinDelay: minDelay,
		MaxDelay: maxDelay,
		rand:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// NewAnalyzerFromConfig uses the delays of the current configuration.
func NewAnalyzerFromConfig(c *Config) *Analyzer {
	return NewAnalyzer(c.MinDelay(), c.MaxDelay())
}

// WithSeed makes the delays reproducible.
func (a *Analyzer) WithSeed(seed uint64) *Analyzer {
	a.rand = rand.New(rand.NewPCG(seed, seed))
	return a
}

// ThinkingDelay returns a duration uniformly distributed in [MinDelay, MaxDelay).
func (a *Analyzer) ThinkingDelay() time.Duration {
	spread := a.MaxDelay - a.MinDelay
	if spread <= 0 {
		return a.MinDelay
	}
	return a.MinDelay + time.Duration(a.rand.Int64N(int64(spread)))
}

/* State machine */

// State represents where a submission is in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateRejected
	StateAnalyzing
	StateDisplaying
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateRejected:
		return "rejected"
	case StateAnalyzing:
		return "analyzing"
	case StateDisplaying:
		return "displaying"
	}
	return "unknown"
}

// CanSubmit returns if a new submission is accepted: both inputs must be
// non-empty and no analysis must be in progress.
func CanSubmit(state State, dream, emotions string) bool {
	return dream != "" && emotions != "" && state != StateAnalyzing
}
