package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/RohanTekale/Multimodal-Regional-Language-Video-Summarization-Tool/internal/analytics"
	"github.com/RohanTekale/Multimodal-Regional-Language-Video-Summarization-Tool/internal/dashboard"
	"github.com/RohanTekale/Multimodal-Regional-Language-Video-Summarization-Tool/internal/report"
)

func render(w io.Writer, view *dashboard.ViewState, section string) error {
	if view.Region != dashboard.RegionAnalytics || view.Report == nil {
		return fmt.Errorf("no analytics to render")
	}
	r := view.Report

	sections := map[string]dashboard.Section{
		"user":      dashboard.SectionUserPerspective,
		"developer": dashboard.SectionDeveloperPerspective,
		"graphical": dashboard.SectionGraphicalAnalysis,
	}
	if s, ok := sections[section]; ok {
		view.ShowSection(s)
	} else if section != "all" {
		return fmt.Errorf("unknown section %q (want user, developer, graphical, or all)", section)
	}

	all := section == "all"
	if all || view.Section == dashboard.SectionUserPerspective {
		renderUserPerspective(w, r)
	}
	if all || view.Section == dashboard.SectionDeveloperPerspective {
		renderDeveloperPerspective(w, r)
	}
	if all || view.Section == dashboard.SectionGraphicalAnalysis {
		renderGraphicalAnalysis(w, r)
	}
	return nil
}

func renderUserPerspective(w io.Writer, r *report.Report) {
	summary := analytics.Summarize(r)

	fmt.Fprintln(w, "=== User Perspective ===")
	fmt.Fprintf(w, "Input file:            %s\n", naIfEmpty(r.InputFile))
	fmt.Fprintf(w, "Total scenes:          %d\n", summary.TotalScenes)
	fmt.Fprintf(w, "Selected scenes:       %d\n", summary.SelectedScenes)
	fmt.Fprintf(w, "Processing efficiency: %.2f s/scene\n\n", summary.Efficiency)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENE\tSTART\tEND\tDURATION\tIMPORTANCE\tTRANSCRIPT\tAUDIO")
	for _, row := range analytics.SceneRows(r) {
		if row.Placeholder {
			fmt.Fprintln(tw, "No scenes available")
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Scene, row.Start, row.End, row.Duration,
			row.Importance, row.Transcript, row.Audio)
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func renderDeveloperPerspective(w io.Writer, r *report.Report) {
	fmt.Fprintln(w, "=== Developer Perspective ===")

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STEP\tTIME (S)\tDETAILS")
	steps := analytics.StepRows(r)
	if len(steps) == 0 {
		fmt.Fprintln(tw, "No processing steps available")
	}
	for _, row := range steps {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Name, row.Time, row.Details)
	}
	tw.Flush()
	fmt.Fprintln(w)

	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tNAME\tSIZE (MB)")
	for _, row := range analytics.FileSizeRows(r) {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Label, row.File, row.Size)
	}
	tw.Flush()
	fmt.Fprintln(w)

	if len(r.Logs) > 0 {
		fmt.Fprintln(w, "Logs:")
		fmt.Fprintln(w, strings.Join(r.Logs, "\n"))
	} else {
		fmt.Fprintln(w, "No logs available")
	}
	fmt.Fprintln(w)
}

func renderGraphicalAnalysis(w io.Writer, r *report.Report) {
	fmt.Fprintln(w, "=== Graphical Analysis ===")

	renderSeries(w, "Scene durations (s)", analytics.SceneDurationSeries(r))
	renderSeries(w, "Processing time breakdown (s)", analytics.ProcessingTimeSeries(r))
	renderSeries(w, "File sizes (MB)", analytics.FileSizeSeries(r))

	cloud := analytics.WordFrequency(r)
	fmt.Fprintln(w, "Word cloud:")
	switch cloud.State {
	case analytics.CloudNoTranscripts:
		fmt.Fprintln(w, "  No transcript data available")
	case analytics.CloudNoSignificantWords:
		fmt.Fprintln(w, "  No significant words found in transcripts")
	default:
		for _, word := range cloud.Words {
			fmt.Fprintf(w, "  %-20s x%d (weight %d)\n", word.Text, word.Count, word.Weight)
		}
	}
}

func renderSeries(w io.Writer, title string, points []analytics.Point) {
	fmt.Fprintf(w, "%s:\n", title)
	if len(points) == 0 {
		fmt.Fprintln(w, "  (no data)")
	}
	for _, p := range points {
		fmt.Fprintf(w, "  %-28s %.2f\n", p.Label, p.Value)
	}
	fmt.Fprintln(w)
}

func naIfEmpty(s string) string {
	if s == "" {
		return analytics.NotAvailable
	}
	return s
}
