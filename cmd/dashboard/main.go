package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RohanTekale/Multimodal-Regional-Language-Video-Summarization-Tool/internal/client"
	"github.com/RohanTekale/Multimodal-Regional-Language-Video-Summarization-Tool/internal/dashboard"
	"github.com/RohanTekale/Multimodal-Regional-Language-Video-Summarization-Tool/internal/logging"
)

var (
	serverURL string
	section   string
	logLevel  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Video summarization analytics dashboard",
		Long: `Dashboard uploads videos to the summarizer API and renders the
analytics report: scene breakdown, processing timings, file sizes,
transcripts, chart data, and transcript word frequencies.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "http://localhost:8080", "summarizer API base URL")
	rootCmd.PersistentFlags().StringVar(&section, "section", "all", "section to render (user, developer, graphical, all)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newUploadCommand())
	rootCmd.AddCommand(newAnalyticsCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newController() *dashboard.Controller {
	progress := func(frac float64) {
		fmt.Fprintf(os.Stderr, "\rUploading... %3.0f%%", frac*100)
		if frac >= 1 {
			fmt.Fprintln(os.Stderr)
		}
	}
	return dashboard.NewController(
		client.NewFetcher(serverURL, nil),
		client.NewSession(serverURL, nil, progress),
	)
}

func newUploadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <video-file>",
		Short: "Upload a video and render its analytics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := newController()

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open video file: %w", err)
			}
			defer file.Close()

			if err := ctrl.Upload(cmd.Context(), args[0], file); err != nil {
				return fmt.Errorf("%s", ctrl.View.Error)
			}
			return render(cmd.OutOrStdout(), ctrl.View, section)
		},
	}
}

func newAnalyticsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analytics <video-id>",
		Short: "Fetch and render analytics for a processed video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := newController()

			if err := ctrl.FetchAnalytics(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("%s", ctrl.View.Error)
			}
			return render(cmd.OutOrStdout(), ctrl.View, section)
		},
	}
}
