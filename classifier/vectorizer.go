package classifier

import (
	"regexp"
	"strings"
)

// tokenRe matches word tokens of at least two characters, mirroring the
// vectorizer the model was trained with.
var tokenRe = regexp.MustCompile(`\b\w\w+\b`)

// englishStopWords is the stop-word list applied before n-gram construction.
var englishStopWords = map[string]struct{}{}

func init() {
	words := []string{
		"a", "about", "above", "after", "again", "against", "all", "am", "an",
		"and", "any", "are", "as", "at", "be", "because", "been", "before",
		"being", "below", "between", "both", "but", "by", "can", "could",
		"did", "do", "does", "doing", "down", "during", "each", "few", "for",
		"from", "further", "had", "has", "have", "having", "he", "her",
		"here", "hers", "herself", "him", "himself", "his", "how", "i", "if",
		"in", "into", "is", "it", "its", "itself", "just", "me", "more",
		"most", "my", "myself", "no", "nor", "not", "now", "of", "off", "on",
		"once", "only", "or", "other", "our", "ours", "ourselves", "out",
		"over", "own", "same", "she", "should", "so", "some", "such", "than",
		"that", "the", "their", "theirs", "them", "themselves", "then",
		"there", "these", "they", "this", "those", "through", "to", "too",
		"under", "until", "up", "very", "was", "we", "were", "what", "when",
		"where", "which", "while", "who", "whom", "why", "will", "with",
		"you", "your", "yours", "yourself", "yourselves",
	}
	for _, w := range words {
		englishStopWords[w] = struct{}{}
	}
}

// tokenize lowercases the text, splits it into word tokens and drops English
// stop words.
func tokenize(text string) []string {
	raw := tokenRe.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if _, stop := englishStopWords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// ngrams returns the unigrams and bigrams of the token sequence.
func ngrams(tokens []string) []string {
	grams := make([]string, 0, 2*len(tokens))
	grams = append(grams, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		grams = append(grams, tokens[i]+" "+tokens[i+1])
	}
	return grams
}

// vectorize maps the text onto the trained vocabulary, returning term counts
// keyed by feature index. Terms outside the vocabulary are ignored.
func vectorize(text string, vocabulary map[string]int) map[int]int {
	counts := make(map[int]int)
	for _, gram := range ngrams(tokenize(text)) {
		if idx, ok := vocabulary[gram]; ok {
			counts[idx]++
		}
	}
	return counts
}
