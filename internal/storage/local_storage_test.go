package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalStorage(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	storage, err := NewLocalStorage(inputDir, outputDir)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	t.Run("SaveUpload", func(t *testing.T) {
		content := []byte("test video content")

		info := FileInfo{
			Filename:    "test.mp4",
			ContentType: "video/mp4",
			Size:        int64(len(content)),
		}

		filename, err := storage.SaveUpload(bytes.NewReader(content), info)
		if err != nil {
			t.Fatalf("Failed to save file: %v", err)
		}

		if filepath.Ext(filename) != ".mp4" {
			t.Errorf("Expected .mp4 extension, got %s", filepath.Ext(filename))
		}

		savedPath := filepath.Join(inputDir, filename)
		if _, err := os.Stat(savedPath); os.IsNotExist(err) {
			t.Errorf("File was not saved to expected location: %s", savedPath)
		}

		if got := storage.InputPath(filename); got != savedPath {
			t.Errorf("InputPath = %s, want %s", got, savedPath)
		}
	})

	t.Run("OpenOutput", func(t *testing.T) {
		content := []byte("final merged video")
		if err := os.MkdirAll(filepath.Join(outputDir, "1"), 0755); err != nil {
			t.Fatalf("Failed to create output dir: %v", err)
		}
		fullPath := filepath.Join(outputDir, "1", "final_merged_video.mp4")

		if err := os.WriteFile(fullPath, content, 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}

		file, err := storage.OpenOutput("1/final_merged_video.mp4")
		if err != nil {
			t.Fatalf("Failed to open file: %v", err)
		}
		defer file.Close()

		buf := make([]byte, len(content))
		n, err := file.Read(buf)
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}

		if n != len(content) || !bytes.Equal(buf, content) {
			t.Errorf("File content mismatch")
		}
	})

	t.Run("ReadReport", func(t *testing.T) {
		report := []byte(`{"input_file": "video_7.mp4"}`)
		if err := os.MkdirAll(filepath.Join(outputDir, "7"), 0755); err != nil {
			t.Fatalf("Failed to create output dir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(outputDir, "7", ReportFilename), report, 0644); err != nil {
			t.Fatalf("Failed to write report: %v", err)
		}

		data, err := storage.ReadReport(7)
		if err != nil {
			t.Fatalf("Failed to read report: %v", err)
		}
		if !bytes.Equal(data, report) {
			t.Errorf("Report content mismatch")
		}

		if _, err := storage.ReadReport(999); err == nil {
			t.Errorf("Expected error for missing report")
		}
	})

	t.Run("DeleteUpload", func(t *testing.T) {
		testFile := "delete-test.mp4"
		fullPath := filepath.Join(inputDir, testFile)

		if err := os.WriteFile(fullPath, []byte("test"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}

		if err := storage.DeleteUpload(testFile); err != nil {
			t.Fatalf("Failed to delete file: %v", err)
		}

		if _, err := os.Stat(fullPath); !os.IsNotExist(err) {
			t.Errorf("File was not deleted")
		}
	})

	t.Run("PathTraversalPrevention", func(t *testing.T) {
		_, err := storage.OpenOutput("../../../etc/passwd")
		if err == nil {
			t.Errorf("Path traversal was not prevented")
		}

		err = storage.DeleteUpload("../../../etc/passwd")
		if err == nil {
			t.Errorf("Path traversal was not prevented in delete")
		}
	})
}
