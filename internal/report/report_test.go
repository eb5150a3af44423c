package report

import (
	"encoding/json"
	"testing"
)

const sampleDoc = `{
	"input_file": "input/video_3.mp4",
	"input_size": 120.5,
	"final_output": {"file": "output/3/final_merged_video.mp4", "size_mb": 24.75},
	"scenes": [{"start": 0, "end": 10}, {"start": 10, "end": 25}, {"start": 25, "end": 31}],
	"summary_clips": [
		{"start": 1, "end": 3.5, "importance_score": 0.91},
		{"start": 12, "end": 15}
	],
	"transcripts": {
		"scene_1": {"text": "hello world"},
		"scene_2": {"text": "second scene"}
	},
	"audio_files": {
		"scene_1": {"file": "output/3/audio/scene_1.mp3", "size_mb": 0.4},
		"scene_2": {"file": "output/3/audio/scene_2.mp3"}
	},
	"video_clips": [
		{"scene_number": 1, "file": "clip_1.mp4", "size_mb": 5.2},
		{"file": "clip_x.mp4"}
	],
	"processing_steps": {
		"scene_detection": {"time_taken": 12.3, "detector": "content"},
		"transcription": {"time_taken": 45.6},
		"text_to_speech": {"lang": "hi"}
	},
	"logs": ["started", "finished"]
}`

func decodeSample(t *testing.T) *Report {
	t.Helper()
	var r Report
	if err := json.Unmarshal([]byte(sampleDoc), &r); err != nil {
		t.Fatalf("Failed to decode report: %v", err)
	}
	return &r
}

func TestReportDecode(t *testing.T) {
	r := decodeSample(t)

	if r.InputFile != "input/video_3.mp4" {
		t.Errorf("InputFile = %q", r.InputFile)
	}
	if r.InputSizeMB == nil || *r.InputSizeMB != 120.5 {
		t.Errorf("InputSizeMB = %v, want 120.5", r.InputSizeMB)
	}
	if len(r.Scenes) != 3 {
		t.Errorf("len(Scenes) = %d, want 3", len(r.Scenes))
	}
	if len(r.SummaryClips) != 2 {
		t.Fatalf("len(SummaryClips) = %d, want 2", len(r.SummaryClips))
	}
	if r.SummaryClips[1].ImportanceScore != nil {
		t.Errorf("Expected absent importance score for clip 2")
	}
	if r.FinalOutput == nil || r.FinalOutput.SizeMB == nil || *r.FinalOutput.SizeMB != 24.75 {
		t.Errorf("FinalOutput not decoded: %+v", r.FinalOutput)
	}
}

func TestReportDecode_ZeroIsPresent(t *testing.T) {
	var r Report
	doc := `{"input_size": 0, "summary_clips": [{"start": 0, "end": 0}]}`
	if err := json.Unmarshal([]byte(doc), &r); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}

	if r.InputSizeMB == nil || *r.InputSizeMB != 0 {
		t.Errorf("A present zero must decode as present, got %v", r.InputSizeMB)
	}
	if r.SummaryClips[0].Start == nil || r.SummaryClips[0].End == nil {
		t.Errorf("Zero endpoints must decode as present")
	}
}

func TestStepOrderPreserved(t *testing.T) {
	r := decodeSample(t)

	want := []string{"scene_detection", "transcription", "text_to_speech"}
	var got []string
	r.ProcessingSteps.Each(func(name string, _ Step) {
		got = append(got, name)
	})

	if len(got) != len(want) {
		t.Fatalf("Step count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Step %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStepExtraFields(t *testing.T) {
	r := decodeSample(t)

	step, ok := r.ProcessingSteps.Get("scene_detection")
	if !ok {
		t.Fatal("scene_detection step missing")
	}
	if step.TimeTaken == nil || *step.TimeTaken != 12.3 {
		t.Errorf("TimeTaken = %v, want 12.3", step.TimeTaken)
	}
	if step.Extra["detector"] != "content" {
		t.Errorf("Extra[detector] = %v, want content", step.Extra["detector"])
	}

	step, _ = r.ProcessingSteps.Get("text_to_speech")
	if step.TimeTaken != nil {
		t.Errorf("Expected absent TimeTaken for text_to_speech, got %v", *step.TimeTaken)
	}
}

func TestSceneKeyJoin(t *testing.T) {
	r := decodeSample(t)

	tr, ok := r.Transcript(1)
	if !ok || tr.Text != "hello world" {
		t.Errorf("Transcript(1) = %q, %v", tr.Text, ok)
	}
	if _, ok := r.Transcript(3); ok {
		t.Errorf("Transcript(3) should be absent")
	}

	audio, ok := r.Audio(2)
	if !ok || audio.File != "output/3/audio/scene_2.mp3" {
		t.Errorf("Audio(2) = %+v, %v", audio, ok)
	}
	if audio.SizeMB != nil {
		t.Errorf("Audio(2) size should be absent")
	}

	// A missing key is an independent absence, not an error.
	empty := &Report{}
	if _, ok := empty.Transcript(1); ok {
		t.Errorf("Transcript on empty report should be absent")
	}
	if _, ok := empty.Audio(1); ok {
		t.Errorf("Audio on empty report should be absent")
	}
}

func TestOrderedMapRoundTrip(t *testing.T) {
	r := decodeSample(t)

	data, err := json.Marshal(r.ProcessingSteps)
	if err != nil {
		t.Fatalf("Failed to marshal steps: %v", err)
	}

	var again Steps
	if err := json.Unmarshal(data, &again); err != nil {
		t.Fatalf("Failed to re-decode steps: %v", err)
	}
	if again.Len() != r.ProcessingSteps.Len() {
		t.Errorf("Round trip changed length: %d != %d", again.Len(), r.ProcessingSteps.Len())
	}

	var keys []string
	again.Each(func(name string, _ Step) { keys = append(keys, name) })
	if keys[0] != "scene_detection" || keys[2] != "text_to_speech" {
		t.Errorf("Round trip changed order: %v", keys)
	}
}

func TestOutputRef(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"output/3/final_merged_video.mp4", "3/final_merged_video.mp4"},
		{"3/final_merged_video.mp4", "3/final_merged_video.mp4"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := OutputRef(tt.in); got != tt.want {
			t.Errorf("OutputRef(%q) = %q, want %q", tt.in, got, tt.want)
		}
		// Idempotent: a second application changes nothing.
		if got := OutputRef(OutputRef(tt.in)); got != tt.want {
			t.Errorf("OutputRef not idempotent for %q", tt.in)
		}
	}
}
