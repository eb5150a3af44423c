package report

import (
	"fmt"
	"strings"
)

// Report is the analytics document produced for one completed
// summarization run. Every numeric field may be absent; absence is
// modeled with nil pointers and is distinct from a present zero.
// A Report is immutable once decoded: a new fetch replaces it wholesale.
type Report struct {
	InputFile       string         `json:"input_file,omitempty"`
	InputSizeMB     *float64       `json:"input_size,omitempty"`
	FinalOutput     *FinalOutput   `json:"final_output,omitempty"`
	Scenes          []Scene        `json:"scenes,omitempty"`
	SummaryClips    []Clip         `json:"summary_clips,omitempty"`
	Transcripts     *Transcripts   `json:"transcripts,omitempty"`
	AudioFiles      *AudioFiles    `json:"audio_files,omitempty"`
	VideoClips      []VideoClip    `json:"video_clips,omitempty"`
	ProcessingSteps *Steps         `json:"processing_steps,omitempty"`
	Logs            []string       `json:"logs,omitempty"`
}

// FinalOutput describes the merged summary video.
type FinalOutput struct {
	File   string   `json:"file"`
	SizeMB *float64 `json:"size_mb,omitempty"`
}

// Scene is a raw detected segment. Only the count matters to the
// dashboard, but start/end are kept for completeness.
type Scene struct {
	Start *float64 `json:"start,omitempty"`
	End   *float64 `json:"end,omitempty"`
}

// Clip is a scene interval selected for the summary. Its 0-based index
// in SummaryClips defines the 1-based scene number used to look up the
// matching transcript and audio entries.
type Clip struct {
	Start           *float64 `json:"start,omitempty"`
	End             *float64 `json:"end,omitempty"`
	ImportanceScore *float64 `json:"importance_score,omitempty"`
}

// Transcript is the recognized text for one selected scene.
type Transcript struct {
	Text string `json:"text"`
}

// AudioFile is the synthesized narration for one selected scene.
type AudioFile struct {
	File   string   `json:"file"`
	SizeMB *float64 `json:"size_mb,omitempty"`
}

// VideoClip is an intermediate per-scene video artifact.
type VideoClip struct {
	SceneNumber *int     `json:"scene_number,omitempty"`
	File        string   `json:"file,omitempty"`
	SizeMB      *float64 `json:"size_mb,omitempty"`
}

// Step is one pipeline stage timing entry. Extra contains any fields
// beyond time_taken, preserved for the diagnostic detail column.
type Step struct {
	TimeTaken *float64
	Extra     map[string]any
}

func sceneKey(n int) string {
	return fmt.Sprintf("scene_%d", n)
}

// Transcript returns the transcript joined to scene number n by the
// scene_<n> key convention, or false when the map or key is absent.
func (r *Report) Transcript(n int) (Transcript, bool) {
	if r.Transcripts == nil {
		return Transcript{}, false
	}
	return r.Transcripts.Get(sceneKey(n))
}

// Audio returns the audio entry joined to scene number n, or false
// when the map or key is absent.
func (r *Report) Audio(n int) (AudioFile, bool) {
	if r.AudioFiles == nil {
		return AudioFile{}, false
	}
	return r.AudioFiles.Get(sceneKey(n))
}

// OutputRef turns a stored file reference into a path playable under
// /output/. Stripping the prefix is idempotent: already-relative paths
// pass through unchanged.
func OutputRef(path string) string {
	return strings.TrimPrefix(path, "output/")
}
