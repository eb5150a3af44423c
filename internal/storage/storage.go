package storage

import "io"

type FileInfo struct {
	Filename    string
	ContentType string
	Size        int64
}

// Storage persists uploaded inputs and exposes pipeline outputs. The
// analytics report for a video lives under its output directory as
// analytics.json.
type Storage interface {
	SaveUpload(file io.Reader, info FileInfo) (string, error)
	OpenOutput(path string) (io.ReadSeekCloser, error)
	ReadReport(videoID int64) ([]byte, error)
	DeleteUpload(path string) error
}
