// Package pipeline is the seam to the external summarization pipeline.
// The pipeline itself (scene detection, transcription, narration,
// merging) runs outside this service; the server only needs to start
// it and wait for the analytics report to appear.
package pipeline

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"
)

// Runner processes one uploaded video and writes the summary artifacts
// plus analytics.json into outputDir.
type Runner interface {
	Run(ctx context.Context, videoID int64, inputPath, outputDir string) error
}

// CommandRunner shells out to a configured pipeline command. The
// placeholders {input}, {output}, and {id} are substituted into each
// argument.
type CommandRunner struct {
	Command []string
}

func (r *CommandRunner) Run(ctx context.Context, videoID int64, inputPath, outputDir string) error {
	if len(r.Command) == 0 {
		return fmt.Errorf("no pipeline command configured")
	}

	args := make([]string, len(r.Command))
	replacer := strings.NewReplacer(
		"{input}", inputPath,
		"{output}", outputDir,
		"{id}", fmt.Sprintf("%d", videoID),
	)
	for i, a := range r.Command {
		args[i] = replacer.Replace(a)
	}

	log.Info().Int64("video_id", videoID).Strs("command", args).Msg("running pipeline")
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("pipeline failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// NopRunner does nothing. It serves deployments where the pipeline is
// triggered out of band and only the dashboard half runs here.
type NopRunner struct{}

func (NopRunner) Run(ctx context.Context, videoID int64, inputPath, outputDir string) error {
	log.Warn().Int64("video_id", videoID).Msg("no pipeline configured, skipping processing")
	return nil
}
