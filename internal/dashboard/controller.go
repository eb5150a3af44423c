package dashboard

import (
	"context"
	"io"

	"github.com/RohanTekale/Multimodal-Regional-Language-Video-Summarization-Tool/internal/client"
)

// Controller wires the upload session and report fetcher to the view
// state machine: upload success hands off to a fetch, fetch success
// reveals the analytics region, and every failure returns the view to
// the input region with the message retained.
type Controller struct {
	View    *ViewState
	Fetcher *client.Fetcher
	Session *client.Session
}

// NewController creates a controller in the page-load default state.
func NewController(fetcher *client.Fetcher, session *client.Session) *Controller {
	return &Controller{
		View:    NewViewState(),
		Fetcher: fetcher,
		Session: session,
	}
}

// FetchAnalytics validates the ID, retrieves the report, and
// transitions the view. On any failure the view returns to the input
// region with the error message attached.
func (c *Controller) FetchAnalytics(ctx context.Context, id string) error {
	r, err := c.Fetcher.Fetch(ctx, id)
	if err != nil {
		c.View.Fail(err.Error())
		return err
	}
	c.View.AnalyticsLoaded(r)
	return nil
}

// Upload runs one upload session and, on success, immediately fetches
// the analytics for the issued video ID.
func (c *Controller) Upload(ctx context.Context, filename string, file io.Reader) error {
	id, err := c.Session.Start(ctx, filename, file)
	if err != nil {
		c.View.Fail(err.Error())
		return err
	}
	return c.FetchAnalytics(ctx, id)
}
