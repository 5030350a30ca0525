package topics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/yanqian/trendlens/internal/domain/text"
)

// termSpace is a fitted tf-idf vector space: one L2-normalized row per
// document over an alphabetical vocabulary of unigrams and bigrams.
type termSpace struct {
	terms  []string
	matrix *mat.Dense
}

type vectorizer struct {
	maxTerms int
}

func newVectorizer(maxTerms int) *vectorizer {
	if maxTerms <= 0 {
		maxTerms = defaultMaxTerms
	}
	return &vectorizer{maxTerms: maxTerms}
}

// fit builds the vocabulary and weight matrix for the given normalized
// documents. The vocabulary keeps the maxTerms terms with the highest
// corpus frequency (ties alphabetical); weights are raw term frequency
// times smoothed inverse document frequency, and every row is scaled to
// unit length. Returns ok=false when no document yields a single term.
func (v *vectorizer) fit(docs []string) (*termSpace, bool) {
	perDoc := make([][]string, len(docs))
	corpusFreq := make(map[string]int)
	docFreq := make(map[string]int)

	for i, doc := range docs {
		terms := ngrams(doc)
		perDoc[i] = terms
		seen := make(map[string]struct{}, len(terms))
		for _, term := range terms {
			corpusFreq[term]++
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				docFreq[term]++
			}
		}
	}
	if len(corpusFreq) == 0 {
		return nil, false
	}

	terms := selectTerms(corpusFreq, v.maxTerms)
	index := make(map[string]int, len(terms))
	for i, term := range terms {
		index[term] = i
	}

	idf := make([]float64, len(terms))
	n := float64(len(docs))
	for i, term := range terms {
		idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	matrix := mat.NewDense(len(docs), len(terms), nil)
	row := make([]float64, len(terms))
	for i, terms := range perDoc {
		for j := range row {
			row[j] = 0
		}
		for _, term := range terms {
			if j, ok := index[term]; ok {
				row[j]++
			}
		}
		var norm float64
		for j := range row {
			row[j] *= idf[j]
			norm += row[j] * row[j]
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := range row {
				row[j] /= norm
			}
		}
		matrix.SetRow(i, row)
	}

	return &termSpace{terms: terms, matrix: matrix}, true
}

// ngrams expands a normalized document into unigrams and bigrams of its
// content tokens. Stop words are removed before bigram formation, so a
// bigram can bridge a dropped stop word.
func ngrams(doc string) []string {
	tokens := text.ContentTokens(doc, 2)
	terms := make([]string, 0, len(tokens)*2)
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

func selectTerms(corpusFreq map[string]int, limit int) []string {
	all := make([]string, 0, len(corpusFreq))
	for term := range corpusFreq {
		all = append(all, term)
	}
	sort.Slice(all, func(i, j int) bool {
		if corpusFreq[all[i]] == corpusFreq[all[j]] {
			return all[i] < all[j]
		}
		return corpusFreq[all[i]] > corpusFreq[all[j]]
	})
	if len(all) > limit {
		all = all[:limit]
	}
	sort.Strings(all)
	return all
}
