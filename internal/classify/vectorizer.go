// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// vectorizer turns a document batch into L2-normalized TF-IDF vectors
// over a shared vocabulary of unigrams and bigrams. The vocabulary is
// fitted per batch, so vector components are only comparable within a
// single fitTransform call.
type vectorizer struct {
	maxFeatures int     // vocabulary cap, highest corpus frequency first
	maxDocRatio float64 // terms appearing in more than this fraction of docs are dropped
}

func newVectorizer() *vectorizer {
	return &vectorizer{maxFeatures: 1000, maxDocRatio: 0.95}
}

// fitTransform builds the vocabulary from all docs and returns one
// normalized vector per doc. IDF is smoothed: ln((1+n)/(1+df)) + 1.
func (v *vectorizer) fitTransform(docs []string) [][]float64 {
	termCounts := make([]map[string]int, len(docs))
	corpusFreq := make(map[string]int)
	docFreq := make(map[string]int)

	for i, doc := range docs {
		counts := make(map[string]int)
		for _, term := range extractTerms(doc) {
			counts[term]++
			corpusFreq[term]++
		}
		for term := range counts {
			docFreq[term]++
		}
		termCounts[i] = counts
	}

	vocab := v.buildVocabulary(corpusFreq, docFreq, len(docs))

	idf := make([]float64, len(vocab))
	n := float64(len(docs))
	for term, j := range vocab {
		idf[j] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	vectors := make([][]float64, len(docs))
	for i, counts := range termCounts {
		vec := make([]float64, len(vocab))
		for term, count := range counts {
			if j, ok := vocab[term]; ok {
				vec[j] = float64(count) * idf[j]
			}
		}
		normalize(vec)
		vectors[i] = vec
	}
	return vectors
}

// buildVocabulary drops over-frequent terms, then keeps the most
// frequent maxFeatures terms (ties broken alphabetically).
func (v *vectorizer) buildVocabulary(corpusFreq, docFreq map[string]int, numDocs int) map[string]int {
	maxDF := int(v.maxDocRatio * float64(numDocs))
	if maxDF < 1 {
		maxDF = 1
	}

	terms := make([]string, 0, len(corpusFreq))
	for term := range corpusFreq {
		if docFreq[term] > maxDF {
			continue
		}
		terms = append(terms, term)
	}

	sort.Slice(terms, func(a, b int) bool {
		if corpusFreq[terms[a]] != corpusFreq[terms[b]] {
			return corpusFreq[terms[a]] > corpusFreq[terms[b]]
		}
		return terms[a] < terms[b]
	})
	if len(terms) > v.maxFeatures {
		terms = terms[:v.maxFeatures]
	}

	// Index alphabetically for stable vector layout.
	sort.Strings(terms)
	vocab := make(map[string]int, len(terms))
	for j, term := range terms {
		vocab[term] = j
	}
	return vocab
}

// extractTerms lowercases, tokenizes into words of two or more
// characters, removes stopwords, and emits unigrams plus bigrams.
func extractTerms(doc string) []string {
	words := tokenize(doc)

	terms := make([]string, 0, 2*len(words))
	terms = append(terms, words...)
	for i := 0; i+1 < len(words); i++ {
		terms = append(terms, words[i]+" "+words[i+1])
	}
	return terms
}

func tokenize(doc string) []string {
	var words []string
	var b strings.Builder
	flush := func() {
		if b.Len() >= 2 {
			w := b.String()
			if _, stop := stopwords[w]; !stop {
				words = append(words, w)
			}
		}
		b.Reset()
	}
	for _, r := range strings.ToLower(doc) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return words
}

func normalize(vec []float64) {
	var sum float64
	for _, x := range vec {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for j := range vec {
		vec[j] /= norm
	}
}

// cosine computes the similarity of two L2-normalized vectors.
func cosine(a, b []float64) float64 {
	var dot float64
	for j := range a {
		dot += a[j] * b[j]
	}
	return dot
}
