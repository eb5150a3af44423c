package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ReportFilename is the analytics document the pipeline writes into
// each video's output directory.
const ReportFilename = "analytics.json"

type LocalStorage struct {
	inputDir  string
	outputDir string
}

func NewLocalStorage(inputDir, outputDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(inputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create input directory: %w", err)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &LocalStorage{inputDir: inputDir, outputDir: outputDir}, nil
}

func (ls *LocalStorage) SaveUpload(file io.Reader, info FileInfo) (string, error) {
	ext := filepath.Ext(info.Filename)
	if ext == "" {
		ext = ".mp4"
	}

	filename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	fullPath := filepath.Join(ls.inputDir, filename)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return filename, nil
}

func (ls *LocalStorage) OpenOutput(path string) (io.ReadSeekCloser, error) {
	fullPath, err := ls.outputPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

func (ls *LocalStorage) ReadReport(videoID int64) ([]byte, error) {
	path := filepath.Join(ls.outputDir, fmt.Sprintf("%d", videoID), ReportFilename)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	return data, nil
}

func (ls *LocalStorage) DeleteUpload(path string) error {
	cleanPath := filepath.Clean(path)
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("invalid path")
	}

	fullPath := filepath.Join(ls.inputDir, cleanPath)
	if err := os.Remove(fullPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// InputPath resolves a stored upload name to its absolute location for
// the pipeline runner.
func (ls *LocalStorage) InputPath(filename string) string {
	return filepath.Join(ls.inputDir, filepath.Clean(filename))
}

// OutputDir returns the per-video output directory.
func (ls *LocalStorage) OutputDir(videoID int64) string {
	return filepath.Join(ls.outputDir, fmt.Sprintf("%d", videoID))
}

func (ls *LocalStorage) outputPath(path string) (string, error) {
	cleanPath := filepath.Clean(path)
	if strings.Contains(cleanPath, "..") {
		return "", fmt.Errorf("invalid path")
	}
	return filepath.Join(ls.outputDir, cleanPath), nil
}
