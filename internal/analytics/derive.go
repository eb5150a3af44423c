// Package analytics derives display-ready dashboard fragments from an
// analytics report. All derivations are pure: no I/O, deterministic for
// a given report, and total over partial documents. A missing field is
// rendered as NotAvailable, never as zero, except where a chart default
// is explicitly specified.
package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/RohanTekale/Multimodal-Regional-Language-Video-Summarization-Tool/internal/report"
)

// NotAvailable is the display sentinel for absent values.
const NotAvailable = "N/A"

const transcriptPreviewLen = 50

// Summary holds the top-of-dashboard counters.
type Summary struct {
	TotalScenes    int
	SelectedScenes int
	// Efficiency is total processing time divided by the scene count
	// (at least 1). Zero is a valid value, not an absence marker.
	Efficiency float64
}

// SceneRow is one line of the scene details table: the per-scene join
// of clip timing, transcript, and narration audio.
type SceneRow struct {
	Scene       int
	Start       string
	End         string
	Duration    string
	Importance  string
	Transcript  string
	Audio       string
	Placeholder bool
}

// StepRow is one line of the processing times table.
type StepRow struct {
	Name    string
	Time    string
	Details string
}

// FileSizeRow is one line of the file sizes table.
type FileSizeRow struct {
	Label string
	File  string
	Size  string
}

// Summarize computes the dashboard counters. Steps without a recorded
// time contribute zero to the efficiency numerator.
func Summarize(r *report.Report) Summary {
	var total float64
	if r.ProcessingSteps != nil {
		r.ProcessingSteps.Each(func(_ string, s report.Step) {
			if s.TimeTaken != nil {
				total += *s.TimeTaken
			}
		})
	}
	scenes := len(r.Scenes)
	divisor := scenes
	if divisor < 1 {
		divisor = 1
	}
	return Summary{
		TotalScenes:    scenes,
		SelectedScenes: len(r.SummaryClips),
		Efficiency:     total / float64(divisor),
	}
}

// SceneRows joins each summary clip with its transcript and audio by
// the scene_<n> convention. When there are no clips it returns exactly
// one placeholder row so the caller can render a "no scenes" line.
func SceneRows(r *report.Report) []SceneRow {
	if len(r.SummaryClips) == 0 {
		return []SceneRow{{Placeholder: true}}
	}

	rows := make([]SceneRow, 0, len(r.SummaryClips))
	for i, clip := range r.SummaryClips {
		n := i + 1
		row := SceneRow{
			Scene:      n,
			Start:      fmtFloat(clip.Start),
			End:        fmtFloat(clip.End),
			Duration:   NotAvailable,
			Importance: fmtFloat(clip.ImportanceScore),
			Transcript: NotAvailable,
			Audio:      NotAvailable,
		}
		if clip.Start != nil && clip.End != nil {
			row.Duration = fmt.Sprintf("%.2f", *clip.End-*clip.Start)
		}
		if t, ok := r.Transcript(n); ok {
			row.Transcript = truncate(t.Text, transcriptPreviewLen)
		}
		if a, ok := r.Audio(n); ok && a.File != "" {
			row.Audio = "/output/" + report.OutputRef(a.File)
		}
		rows = append(rows, row)
	}
	return rows
}

// StepRows lists pipeline stages in document order with humanized
// names. Details carries the free-form fields beyond the timing, as
// sorted key: value pairs.
func StepRows(r *report.Report) []StepRow {
	if r.ProcessingSteps == nil {
		return nil
	}
	rows := make([]StepRow, 0, r.ProcessingSteps.Len())
	r.ProcessingSteps.Each(func(name string, s report.Step) {
		rows = append(rows, StepRow{
			Name:    HumanizeStep(name),
			Time:    fmtFloat(s.TimeTaken),
			Details: stepDetails(s),
		})
	})
	return rows
}

// FileSizeRows lists input, final output, audio, and video-clip sizes
// in that fixed order. The final output row is omitted entirely when
// the report has none; every other absence renders as N/A in place.
func FileSizeRows(r *report.Report) []FileSizeRow {
	rows := []FileSizeRow{{
		Label: "Input",
		File:  orNA(r.InputFile),
		Size:  fmtFloat(r.InputSizeMB),
	}}

	if r.FinalOutput != nil && r.FinalOutput.File != "" {
		rows = append(rows, FileSizeRow{
			Label: "Final Output",
			File:  r.FinalOutput.File,
			Size:  fmtFloat(r.FinalOutput.SizeMB),
		})
	}
	if r.AudioFiles != nil {
		r.AudioFiles.Each(func(scene string, a report.AudioFile) {
			rows = append(rows, FileSizeRow{
				Label: fmt.Sprintf("Audio (%s)", scene),
				File:  orNA(a.File),
				Size:  fmtFloat(a.SizeMB),
			})
		})
	}
	for _, clip := range r.VideoClips {
		rows = append(rows, FileSizeRow{
			Label: fmt.Sprintf("Video Clip (Scene %s)", fmtInt(clip.SceneNumber)),
			File:  orNA(clip.File),
			Size:  fmtFloat(clip.SizeMB),
		})
	}
	return rows
}

// HumanizeStep turns a snake_case step name into a display label:
// underscores become spaces and each word is capitalized.
func HumanizeStep(name string) string {
	words := strings.Split(strings.ReplaceAll(name, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func stepDetails(s report.Step) string {
	if len(s.Extra) == 0 {
		return ""
	}
	keys := make([]string, 0, len(s.Extra))
	for k := range s.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s: %v", k, s.Extra[k]))
	}
	return strings.Join(pairs, ", ")
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

func fmtFloat(f *float64) string {
	if f == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f", *f)
}

func fmtInt(n *int) string {
	if n == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%d", *n)
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
