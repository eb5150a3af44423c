package integration

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/RohanTekale/Multimodal-Regional-Language-Video-Summarization-Tool/internal/api"
	"github.com/RohanTekale/Multimodal-Regional-Language-Video-Summarization-Tool/internal/database"
	"github.com/RohanTekale/Multimodal-Regional-Language-Video-Summarization-Tool/internal/storage"
)

type TestServer struct {
	Server    *httptest.Server
	App       *api.App
	DB        *database.DB
	VideoRepo *database.VideoRepository
	Storage   *storage.LocalStorage
	OutputDir string
}

// scriptedPipeline mimics the external summarizer: it writes a
// deterministic analytics report for every processed video.
type scriptedPipeline struct {
	report string
}

func (p *scriptedPipeline) Run(ctx context.Context, videoID int64, inputPath, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outputDir, storage.ReportFilename), []byte(p.report), 0644)
}

const testReport = `{
	"input_file": "input/test.mp4",
	"input_size": 0.03,
	"final_output": {"file": "output/1/final_merged_video.mp4", "size_mb": 0.01},
	"scenes": [{}, {}, {}],
	"summary_clips": [{"start": 1, "end": 3.5, "importance_score": 0.9}],
	"transcripts": {"scene_1": {"text": "integration transcript words appear here"}},
	"processing_steps": {
		"scene_detection": {"time_taken": 12.3},
		"transcription": {"time_taken": 45.6}
	}
}`

func setupTestServer(t *testing.T) *TestServer {
	t.Helper()

	inputDir := t.TempDir()
	outputDir := t.TempDir()

	localStorage, err := storage.NewLocalStorage(inputDir, outputDir)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.NewDB(database.Config{Path: dbPath})
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}

	videoRepo := database.NewVideoRepository(db)

	app := &api.App{
		Storage:       localStorage,
		VideoRepo:     videoRepo,
		Pipeline:      &scriptedPipeline{report: testReport},
		MaxUploadSize: 10 * 1024 * 1024,
		StaticDir:     t.TempDir(),
	}

	server := httptest.NewServer(api.NewRouter(app))

	ts := &TestServer{
		Server:    server,
		App:       app,
		DB:        db,
		VideoRepo: videoRepo,
		Storage:   localStorage,
		OutputDir: outputDir,
	}
	t.Cleanup(ts.Cleanup)
	return ts
}

func (ts *TestServer) Cleanup() {
	ts.Server.Close()
	ts.DB.Close()
}

func createMultipartUpload(field, filename string, content []byte) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, bytes.NewReader(content)); err != nil {
		return nil, "", err
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return body, writer.FormDataContentType(), nil
}

func countVideosInDB(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM videos").Scan(&count)
	return count, err
}

func uploadTestVideo(t *testing.T, server string) *http.Response {
	t.Helper()
	content := []byte("fake mp4 content for testing")
	body, contentType, err := createMultipartUpload("file", "test.mp4", content)
	if err != nil {
		t.Fatalf("Failed to create multipart upload: %v", err)
	}

	req, err := http.NewRequest("POST", fmt.Sprintf("%s/summarize/", server), body)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to upload video: %v", err)
	}
	return resp
}
