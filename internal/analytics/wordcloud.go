package analytics

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/RohanTekale/Multimodal-Regional-Language-Video-Summarization-Tool/internal/report"
)

const (
	maxCloudWords = 20
	minWordLen    = 4
	baseWeight    = 16
	weightPerHit  = 4
	maxWeight     = 32
)

// Word is one ranked word-cloud entry. Weight is the display size in
// pixels derived from the occurrence count.
type Word struct {
	Text   string
	Count  int
	Weight int
}

// CloudState distinguishes the two empty word-cloud renderings.
type CloudState int

const (
	// CloudHasWords means Words is non-empty.
	CloudHasWords CloudState = iota
	// CloudNoSignificantWords means transcripts exist but yielded no
	// word longer than three characters.
	CloudNoSignificantWords
	// CloudNoTranscripts means the report carries no transcript data
	// at all.
	CloudNoTranscripts
)

// WordCloud is the ranked transcript vocabulary.
type WordCloud struct {
	Words []Word
	State CloudState
}

var punctStripper = strings.NewReplacer(".", "", ",", "", "!", "", "?", "")

// WordFrequency ranks words across all transcripts: case-folded,
// punctuation-stripped, words of three characters or fewer discarded,
// sorted by descending count with ties kept in first-seen order, top
// twenty retained.
func WordFrequency(r *report.Report) WordCloud {
	if r.Transcripts == nil {
		return WordCloud{State: CloudNoTranscripts}
	}

	counts := make(map[string]int)
	var order []string
	r.Transcripts.Each(func(_ string, t report.Transcript) {
		text := punctStripper.Replace(strings.ToLower(t.Text))
		for _, w := range strings.Fields(text) {
			if utf8.RuneCountInString(w) < minWordLen {
				continue
			}
			if counts[w] == 0 {
				order = append(order, w)
			}
			counts[w]++
		}
	})

	if len(order) == 0 {
		return WordCloud{State: CloudNoSignificantWords}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > maxCloudWords {
		order = order[:maxCloudWords]
	}

	words := make([]Word, len(order))
	for i, w := range order {
		weight := baseWeight + weightPerHit*counts[w]
		if weight > maxWeight {
			weight = maxWeight
		}
		words[i] = Word{Text: w, Count: counts[w], Weight: weight}
	}
	return WordCloud{Words: words, State: CloudHasWords}
}
