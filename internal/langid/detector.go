// Package langid identifies the natural language of extracted page text.
package langid

import (
	"strings"
	"unicode/utf8"
)

// UnknownLanguage is returned when classification produced nothing usable.
const UnknownLanguage = "unknown"

// Text shorter than this is not worth classifying.
const minDetectableChars = 10

// Classification quality saturates well before this point; truncating
// bounds CPU cost on very long pages.
const maxClassifiedChars = 1000

// Prediction is one language candidate with its confidence score.
type Prediction struct {
	Code       string
	Confidence float64
}

// Classifier scores text against the languages it knows. Implementations
// return candidates in descending confidence order.
type Classifier interface {
	Classify(text string) ([]Prediction, error)
}

// Detector wraps a Classifier with the input policy the crawl needs:
// short-text rejection, truncation, and error absorption. Detection never
// fails; anything unusable maps to (unknown, 0.0).
type Detector struct {
	classifier Classifier
}

func NewDetector(classifier Classifier) *Detector {
	return &Detector{classifier: classifier}
}

// Detect returns up to k language predictions for text, best first.
func (d *Detector) Detect(text string, k int) []Prediction {
	if k < 1 {
		k = 1
	}
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < minDetectableChars {
		return []Prediction{{Code: UnknownLanguage, Confidence: 0.0}}
	}
	if utf8.RuneCountInString(trimmed) > maxClassifiedChars {
		trimmed = string([]rune(trimmed)[:maxClassifiedChars])
	}

	predictions, err := d.classifier.Classify(trimmed)
	if err != nil || len(predictions) == 0 {
		return []Prediction{{Code: UnknownLanguage, Confidence: 0.0}}
	}
	if len(predictions) > k {
		predictions = predictions[:k]
	}
	return predictions
}

// DetectWithThreshold returns the best prediction only when its
// confidence meets minConfidence. The second return value reports whether
// a confident detection was made; a false return with a non-unknown code
// means the classifier answered but below threshold.
func (d *Detector) DetectWithThreshold(text string, minConfidence float64) (Prediction, bool) {
	best := d.Detect(text, 1)[0]
	if best.Code == UnknownLanguage {
		return best, false
	}
	return best, best.Confidence >= minConfidence
}
