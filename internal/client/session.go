package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// Status is the lifecycle state of an upload session.
type Status int

const (
	StatusIdle Status = iota
	StatusInFlight
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusInFlight:
		return "in-flight"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Session manages one video upload. At most one transfer may be in
// flight at a time; a second Start while one is running fails with
// ErrAlreadyInProgress. Progress callbacks are advisory UI feedback
// and never gate correctness.
type Session struct {
	baseURL    string
	client     *http.Client
	onProgress func(float64)

	mu     sync.Mutex
	status Status
}

// NewSession creates an upload session for the given API base URL.
// onProgress, when non-nil, receives monotonically non-decreasing
// fractions in [0,1] as the request body is consumed by the transport.
func NewSession(baseURL string, httpClient *http.Client, onProgress func(float64)) *Session {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Session{
		baseURL:    strings.TrimRight(baseURL, "/"),
		client:     httpClient,
		onProgress: onProgress,
	}
}

// Status returns the session's current lifecycle state.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Session) setStatus(st Status) {
	s.mu.Lock()
	s.status = st
	s.mu.Unlock()
}

// Start uploads the file and returns the issued video ID. There is no
// automatic retry: a failed transfer surfaces its status text and the
// session ends in StatusFailed.
func (s *Session) Start(ctx context.Context, filename string, file io.Reader) (string, error) {
	if filename == "" || file == nil {
		return "", ErrNoFileSelected
	}

	s.mu.Lock()
	if s.status == StatusInFlight {
		s.mu.Unlock()
		return "", ErrAlreadyInProgress
	}
	s.status = StatusInFlight
	s.mu.Unlock()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		s.setStatus(StatusFailed)
		return "", fmt.Errorf("failed to build upload body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		s.setStatus(StatusFailed)
		return "", fmt.Errorf("failed to read video file: %w", err)
	}
	if err := writer.Close(); err != nil {
		s.setStatus(StatusFailed)
		return "", fmt.Errorf("failed to build upload body: %w", err)
	}

	body := &progressReader{
		r:     bytes.NewReader(buf.Bytes()),
		total: int64(buf.Len()),
		emit:  s.onProgress,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/summarize/", body)
	if err != nil {
		s.setStatus(StatusFailed)
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.ContentLength = int64(buf.Len())

	log.Info().Str("file", filename).Int64("bytes", req.ContentLength).Msg("uploading video")
	resp, err := s.client.Do(req)
	if err != nil {
		s.setStatus(StatusFailed)
		return "", fmt.Errorf("network error during upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.setStatus(StatusFailed)
		detail := resp.Status
		if b, _ := io.ReadAll(resp.Body); len(bytes.TrimSpace(b)) > 0 {
			detail = fmt.Sprintf("%s: %s", resp.Status, bytes.TrimSpace(b))
		}
		return "", fmt.Errorf("upload failed: %s", detail)
	}

	id, err := decodeVideoID(resp.Body)
	if err != nil {
		s.setStatus(StatusFailed)
		return "", err
	}

	s.setStatus(StatusSucceeded)
	log.Info().Str("video_id", id).Msg("upload complete")
	return id, nil
}

// decodeVideoID accepts the identifier as either a JSON number or a
// numeric string, which lets the client work against older servers
// that quoted it.
func decodeVideoID(r io.Reader) (string, error) {
	var payload struct {
		VideoID json.RawMessage `json:"video_id"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to parse upload response: %w", err)
	}
	id := strings.Trim(strings.TrimSpace(string(payload.VideoID)), `"`)
	if id == "" || id == "null" {
		return "", fmt.Errorf("upload response missing video_id")
	}
	return id, nil
}

// progressReader counts consumed bytes and reports the completed
// fraction. Fractions never decrease even if the transport rewinds.
type progressReader struct {
	r     *bytes.Reader
	total int64
	sent  int64
	last  float64
	emit  func(float64)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 && p.emit != nil && p.total > 0 {
		p.sent += int64(n)
		frac := float64(p.sent) / float64(p.total)
		if frac > 1 {
			frac = 1
		}
		if frac > p.last {
			p.last = frac
			p.emit(frac)
		}
	}
	return n, err
}
