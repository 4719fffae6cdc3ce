package langid

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// LinguaClassifier classifies text with the lingua n-gram models. Building
// the underlying detector loads the models and is expensive; construct one
// and share it, the detector is safe for concurrent use.
type LinguaClassifier struct {
	detector lingua.LanguageDetector
}

func NewLinguaClassifier() *LinguaClassifier {
	detector := lingua.NewLanguageDetectorBuilder().
		FromAllLanguages().
		Build()
	return &LinguaClassifier{detector: detector}
}

// Classify returns confidence values for all candidate languages, best
// first, with labels normalized to lowercase ISO 639-1 codes.
func (c *LinguaClassifier) Classify(text string) ([]Prediction, error) {
	values := c.detector.ComputeLanguageConfidenceValues(text)
	predictions := make([]Prediction, 0, len(values))
	for _, v := range values {
		code := strings.ToLower(v.Language().IsoCode639_1().String())
		predictions = append(predictions, Prediction{Code: code, Confidence: v.Value()})
	}
	return predictions, nil
}
