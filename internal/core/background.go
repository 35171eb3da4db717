package core

import (
	"fmt"
	"log"
	"time"

	_ "embed"

	"github.com/julien-sobczak/the-dreamwriter/pkg/resync"
	"gopkg.in/yaml.v3"
)

//go:embed backgrounds.yaml
var BackgroundsRaw string

var (
	backgroundsOnce      resync.Once
	backgroundsSingleton map[Emotion]*Background
)

// Background is the decorative theme associated with an emotion.
type Background struct {
	Emotion Emotion `yaml:"emotion"`
	// Three colors (from, via, to)
	Gradient []string `yaml:"gradient"`
	Images   []string `yaml:"images"`
}

// Image returns the image at the given index (wrapping around).
func (b *Background) Image(index int) string {
	if len(b.Images) == 0 {
		return ""
	}
	return b.Images[index%len(b.Images)]
}

type backgroundsFile struct {
	Backgrounds []*Background `yaml:"backgrounds"`
}

// ParseBackgrounds reads the YAML definition of backgrounds.
// Every emotion must be defined exactly once with a three-color gradient and at least one image.
func ParseBackgrounds(raw string) (map[Emotion]*Background, error) {
	var file backgroundsFile
	if err := yaml.Unmarshal([]byte(raw), &file); err != nil {
		return nil, fmt.Errorf("invalid backgrounds: %v", err)
	}

	result := make(map[Emotion]*Background)
	for _, background := range file.Backgrounds {
		if _, err := ParseEmotion(string(background.Emotion)); err != nil {
			return nil, err
		}
		if _, ok := result[background.Emotion]; ok {
			return nil, fmt.Errorf("duplicate background for emotion %q", background.Emotion)
		}
		if len(background.Gradient) != 3 {
			return nil, fmt.Errorf("background %q must define 3 gradient colors, got %d", background.Emotion, len(background.Gradient))
		}
		if len(background.Images) == 0 {
			return nil, fmt.Errorf("background %q must define at least one image", background.Emotion)
		}
		result[background.Emotion] = background
	}
	for _, emotion := range Emotions {
		if _, ok := result[emotion]; !ok {
			return nil, fmt.Errorf("missing background for emotion %q", emotion)
		}
	}
	return result, nil
}

// Backgrounds returns the embedded backgrounds.
func Backgrounds() map[Emotion]*Background {
	backgroundsOnce.Do(func() {
		var err error
		backgroundsSingleton, err = ParseBackgrounds(BackgroundsRaw)
		if err != nil {
			log.Fatal(err)
		}
	})
	return backgroundsSingleton
}

// BackgroundFor returns the background of an emotion.
func BackgroundFor(emotion Emotion) *Background {
	return Backgrounds()[emotion]
}

// Rotation cycles through the images of the current emotion.
// Changing the emotion keeps the index so that the rotation goes on.
type Rotation struct {
	Interval time.Duration
	emotion  Emotion
	index    int
}

func NewRotation(interval time.Duration) *Rotation {
	return &Rotation{
		Interval: interval,
		emotion:  EmotionNeutral,
	}
}

// Emotion returns the current emotion.
func (r *Rotation) Emotion() Emotion {
	return r.emotion
}

// SetEmotion switches to another emotion. It returns true if the emotion changed.
func (r *Rotation) SetEmotion(emotion Emotion) bool {
	if r.emotion == emotion {
		return false
	}
	r.emotion = emotion
	r.index = r.index % len(r.Background().Images)
	return true
}

// Next moves to the next image.
func (r *Rotation) Next() {
	r.index = (r.index + 1) % len(r.Background().Images)
}

// Index returns the index of the current image.
func (r *Rotation) Index() int {
	return r.index
}

// Background returns the current background.
func (r *Rotation) Background() *Background {
	return BackgroundFor(r.emotion)
}

// Image returns the URL of the current image.
func (r *Rotation) Image() string {
	return r.Background().Image(r.index)
}
