package analytics

import (
	"fmt"

	"github.com/RohanTekale/Multimodal-Regional-Language-Video-Summarization-Tool/internal/report"
)

// Point is one chart datum.
type Point struct {
	Label string
	Value float64
}

// SceneDurationSeries produces one bar per summary clip. A clip with a
// missing endpoint charts as 0, unlike the table which shows N/A for
// the same clip. Explicit negative spans pass through unmodified.
func SceneDurationSeries(r *report.Report) []Point {
	points := make([]Point, 0, len(r.SummaryClips))
	for i, clip := range r.SummaryClips {
		var d float64
		if clip.Start != nil && clip.End != nil {
			d = *clip.End - *clip.Start
		}
		points = append(points, Point{
			Label: fmt.Sprintf("Scene %d", i+1),
			Value: d,
		})
	}
	return points
}

// ProcessingTimeSeries produces one slice per pipeline stage, with
// missing timings charted as 0.
func ProcessingTimeSeries(r *report.Report) []Point {
	if r.ProcessingSteps == nil {
		return nil
	}
	points := make([]Point, 0, r.ProcessingSteps.Len())
	r.ProcessingSteps.Each(func(name string, s report.Step) {
		var t float64
		if s.TimeTaken != nil {
			t = *s.TimeTaken
		}
		points = append(points, Point{Label: HumanizeStep(name), Value: t})
	})
	return points
}

// FileSizeSeries flattens every known file size into chart points.
// Entries without a size are skipped entirely rather than charted as
// placeholders, so the series can be shorter than FileSizeRows.
func FileSizeSeries(r *report.Report) []Point {
	var points []Point
	if r.InputSizeMB != nil {
		points = append(points, Point{Label: "Input", Value: *r.InputSizeMB})
	}
	if r.FinalOutput != nil && r.FinalOutput.SizeMB != nil {
		points = append(points, Point{Label: "Final Output", Value: *r.FinalOutput.SizeMB})
	}
	if r.AudioFiles != nil {
		r.AudioFiles.Each(func(scene string, a report.AudioFile) {
			if a.SizeMB != nil {
				points = append(points, Point{
					Label: fmt.Sprintf("Audio (%s)", scene),
					Value: *a.SizeMB,
				})
			}
		})
	}
	for _, clip := range r.VideoClips {
		if clip.SizeMB != nil {
			points = append(points, Point{
				Label: fmt.Sprintf("Video Clip (Scene %s)", fmtInt(clip.SceneNumber)),
				Value: *clip.SizeMB,
			})
		}
	}
	return points
}
