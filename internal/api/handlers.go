package api

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/RohanTekale/Multimodal-Regional-Language-Video-Summarization-Tool/internal/database"
	"github.com/RohanTekale/Multimodal-Regional-Language-Video-Summarization-Tool/internal/models"
	"github.com/RohanTekale/Multimodal-Regional-Language-Video-Summarization-Tool/internal/pipeline"
	"github.com/RohanTekale/Multimodal-Regional-Language-Video-Summarization-Tool/internal/storage"
)

type App struct {
	Storage       *storage.LocalStorage
	VideoRepo     *database.VideoRepository
	Pipeline      pipeline.Runner
	MaxUploadSize int64
	StaticDir     string
}

func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

func (app *App) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(app.StaticDir, "dashboard.html"))
}

// SummarizeHandler accepts a multipart upload under the "file" field,
// registers the video to obtain its numeric ID, runs the pipeline, and
// responds with the ID the dashboard uses to fetch analytics.
func (app *App) SummarizeHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, app.MaxUploadSize)

	if err := r.ParseMultipartForm(app.MaxUploadSize); err != nil {
		http.Error(w, "File too large", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "No video file provided", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "video/") {
		ext := strings.ToLower(filepath.Ext(header.Filename))
		if ext != ".mp4" {
			http.Error(w, "Only MP4 video files are allowed", http.StatusBadRequest)
			return
		}
		contentType = "video/mp4"
	}

	filename, err := app.Storage.SaveUpload(file, storage.FileInfo{
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to save upload")
		http.Error(w, "Failed to save file", http.StatusInternalServerError)
		return
	}

	video := models.NewVideo(header.Filename, filename, contentType, header.Size)
	if err := app.VideoRepo.InsertVideo(r.Context(), video); err != nil {
		log.Error().Err(err).Msg("failed to register video")
		app.Storage.DeleteUpload(filename)
		http.Error(w, "Failed to save video information", http.StatusInternalServerError)
		return
	}

	outputDir := app.Storage.OutputDir(video.ID)
	if err := app.Pipeline.Run(r.Context(), video.ID, app.Storage.InputPath(filename), outputDir); err != nil {
		log.Error().Err(err).Int64("video_id", video.ID).Msg("pipeline failed")
		http.Error(w, "Failed to generate summarized video", http.StatusInternalServerError)
		return
	}

	log.Info().Int64("video_id", video.ID).Str("file", header.Filename).Msg("video processed")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"video_id":    video.ID,
		"output_path": filepath.Join(outputDir, storage.ReportFilename),
	})
}

// AnalyticsHandler serves the raw analytics report for a video. The
// response is marked non-cacheable so a re-fetch after reprocessing
// observes the new report.
func (app *App) AnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "videoID")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "Video ID must be numeric", http.StatusBadRequest)
		return
	}

	data, err := app.Storage.ReadReport(id)
	if err != nil {
		http.Error(w, "Analytics data not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(data)
}

// OutputHandler streams a pipeline artifact (final video, per-scene
// audio) with Range support.
func (app *App) OutputHandler(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "*")
	if path == "" {
		http.NotFound(w, r)
		return
	}

	file, err := app.Storage.OpenOutput(path)
	if err != nil {
		http.Error(w, "Output file not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	var modTime time.Time
	if f, ok := file.(interface{ Stat() (os.FileInfo, error) }); ok {
		if stat, err := f.Stat(); err == nil {
			modTime = stat.ModTime()
		}
	}

	http.ServeContent(w, r, filepath.Base(path), modTime, file)
}
