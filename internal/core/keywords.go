package core

import (
	"github.com/julien-sobczak/the-dreamwriter/pkg/text"
)

// KeywordCategory groups literal trigger words under a category name.
type KeywordCategory struct {
	Name     string
	Keywords []string
}

// KeywordTable is an ordered list of categories.
// The order is significant: it drives both tie-breaks and output order.
type KeywordTable []KeywordCategory

// Names returns the category names in declaration order.
func (t KeywordTable) Names() []string {
	var names []string
	for _, category := range t {
		names = append(names, category.Name)
	}
	return names
}

// Tally counts, per category, how many keywords are contained in the (already lowercased) text.
func (t KeywordTable) Tally(lowerText string) []int {
	counts := make([]int, len(t))
	for i, category := range t {
		counts[i] = text.CountContained(lowerText, category.Keywords...)
	}
	return counts
}

// Matching returns the categories having at least one keyword contained in the (already lowercased) text.
func (t KeywordTable) Matching(lowerText string) KeywordTable {
	var result KeywordTable
	for _, category := range t {
		if text.ContainsAny(lowerText, category.Keywords...) {
			result = append(result, category)
		}
	}
	return result
}
