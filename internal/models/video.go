package models

import "time"

// Video is one uploaded source video. The numeric ID is issued by the
// database and doubles as the analytics report identifier.
type Video struct {
	ID           int64
	Filename     string
	OriginalName string
	ContentType  string
	Size         int64
	UploadTime   time.Time
}

func NewVideo(originalName, filename, contentType string, size int64) *Video {
	return &Video{
		Filename:     filename,
		OriginalName: originalName,
		ContentType:  contentType,
		Size:         size,
		UploadTime:   time.Now(),
	}
}
