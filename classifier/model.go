// Package classifier assigns one of the known document types to normalized
// OCR text using a multinomial naive Bayes model over word uni- and bigrams.
// The model artifact is trained offline (cmd/train-classifier) and loaded
// once at startup; a loaded Model is immutable and safe for concurrent use.
package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// LabelUnknown is returned when the model cannot rank any label.
const LabelUnknown = "unknown"

// artifact is the serialized form of the trained model: the fitted
// vocabulary plus the naive Bayes log-probabilities.
type artifact struct {
	Labels         []string       `json:"labels"`
	Vocabulary     map[string]int `json:"vocabulary"`
	ClassLogPrior  []float64      `json:"class_log_prior"`
	FeatureLogProb [][]float64    `json:"feature_log_prob"`
}

// Model is a loaded classifier handle. Construct it with Load at startup and
// inject it wherever classification is needed.
type Model struct {
	art artifact
}

// Load reads the model artifact from path. A missing artifact is a fatal
// precondition, the operator has to run the offline trainer first.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf(
				"classifier model not found at %s: run 'go run ./cmd/train-classifier' to train the model", path)
		}
		return nil, fmt.Errorf("read classifier model: %w", err)
	}

	var art artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("parse classifier model: %w", err)
	}
	if len(art.Labels) == 0 || len(art.Labels) != len(art.ClassLogPrior) || len(art.Labels) != len(art.FeatureLogProb) {
		return nil, fmt.Errorf("classifier model at %s is malformed", path)
	}

	return &Model{art: art}, nil
}

// Classify returns the predicted document type together with the maximum
// posterior probability the model assigned. Deterministic for a fixed
// artifact.
func (m *Model) Classify(text string) (string, float64) {
	counts := vectorize(text, m.art.Vocabulary)

	scores := make([]float64, len(m.art.Labels))
	for c := range m.art.Labels {
		score := m.art.ClassLogPrior[c]
		for idx, n := range counts {
			score += float64(n) * m.art.FeatureLogProb[c][idx]
		}
		scores[c] = score
	}

	probs := softmax(scores)
	best := 0
	for c := range probs {
		if probs[c] > probs[best] {
			best = c
		}
	}
	if len(probs) == 0 {
		return LabelUnknown, 0
	}
	return m.art.Labels[best], probs[best]
}

// softmax converts joint log-likelihoods into posterior probabilities,
// shifting by the maximum for numerical stability.
func softmax(scores []float64) []float64 {
	if len(scores) == 0 {
		return nil
	}
	max := scores[0]
	for _, s := range scores[1:] {
		if s > max {
			max = s
		}
	}
	var sum float64
	probs := make([]float64, len(scores))
	for i, s := range scores {
		probs[i] = math.Exp(s - max)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}
