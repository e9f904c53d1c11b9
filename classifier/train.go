package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
)

// Example is one labeled training document.
type Example struct {
	Text  string
	Label string
}

// Train fits a multinomial naive Bayes model with Laplace smoothing on the
// labeled corpus and returns a ready-to-use Model. Training happens offline,
// the runtime only ever loads a saved artifact.
func Train(corpus []Example) (*Model, error) {
	if len(corpus) == 0 {
		return nil, fmt.Errorf("training corpus is empty")
	}

	labelSet := make(map[string]struct{})
	for _, ex := range corpus {
		labelSet[ex.Label] = struct{}{}
	}
	labels := make([]string, 0, len(labelSet))
	for label := range labelSet {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	labelIndex := make(map[string]int, len(labels))
	for i, label := range labels {
		labelIndex[label] = i
	}

	// Fit the vocabulary over the whole corpus.
	vocabulary := make(map[string]int)
	for _, ex := range corpus {
		for _, gram := range ngrams(tokenize(ex.Text)) {
			if _, ok := vocabulary[gram]; !ok {
				vocabulary[gram] = len(vocabulary)
			}
		}
	}

	// Per-class term counts.
	classDocs := make([]int, len(labels))
	termCounts := make([][]float64, len(labels))
	termTotals := make([]float64, len(labels))
	for c := range labels {
		termCounts[c] = make([]float64, len(vocabulary))
	}
	for _, ex := range corpus {
		c := labelIndex[ex.Label]
		classDocs[c]++
		for idx, n := range vectorize(ex.Text, vocabulary) {
			termCounts[c][idx] += float64(n)
			termTotals[c] += float64(n)
		}
	}

	art := artifact{
		Labels:         labels,
		Vocabulary:     vocabulary,
		ClassLogPrior:  make([]float64, len(labels)),
		FeatureLogProb: make([][]float64, len(labels)),
	}
	vocabSize := float64(len(vocabulary))
	for c := range labels {
		art.ClassLogPrior[c] = math.Log(float64(classDocs[c]) / float64(len(corpus)))
		art.FeatureLogProb[c] = make([]float64, len(vocabulary))
		for f := range art.FeatureLogProb[c] {
			art.FeatureLogProb[c][f] = math.Log((termCounts[c][f] + 1) / (termTotals[c] + vocabSize))
		}
	}

	return &Model{art: art}, nil
}

// Save writes the model artifact as JSON, creating parent directories as
// needed.
func (m *Model) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create model directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(m.art, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal classifier model: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write classifier model: %w", err)
	}
	return nil
}
