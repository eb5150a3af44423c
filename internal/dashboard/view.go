// Package dashboard holds the view state machine and the controller
// that drives uploads and report fetches on behalf of a rendering
// layer.
package dashboard

import (
	"github.com/RohanTekale/Multimodal-Regional-Language-Video-Summarization-Tool/internal/report"
)

// Region is the top-level visible UI area.
type Region int

const (
	RegionInput Region = iota
	RegionUploadForm
	RegionAnalytics
)

func (r Region) String() string {
	switch r {
	case RegionInput:
		return "input"
	case RegionUploadForm:
		return "upload-form"
	case RegionAnalytics:
		return "analytics"
	}
	return "unknown"
}

// Section is the navigation-selected content panel, independent of
// which region is visible.
type Section int

const (
	SectionUserPerspective Section = iota
	SectionDeveloperPerspective
	SectionGraphicalAnalysis
)

func (s Section) String() string {
	switch s {
	case SectionUserPerspective:
		return "user-perspective"
	case SectionDeveloperPerspective:
		return "developer-perspective"
	case SectionGraphicalAnalysis:
		return "graphical-analysis"
	}
	return "unknown"
}

// ViewState tracks which region and section are visible, the current
// report if analytics are rendered, and any error message to display.
// It is mutated only through its transition methods.
type ViewState struct {
	Region  Region
	Section Section
	Report  *report.Report
	Error   string

	// OnChange, when set, is invoked after every transition so a
	// rendering layer can redraw from the new state.
	OnChange func(*ViewState)
}

// NewViewState returns the page-load default: input region, user
// perspective section.
func NewViewState() *ViewState {
	return &ViewState{Region: RegionInput, Section: SectionUserPerspective}
}

// ShowUploadForm reveals the upload form and clears any prior error.
func (v *ViewState) ShowUploadForm() {
	v.Region = RegionUploadForm
	v.Error = ""
	v.notify()
}

// AnalyticsLoaded installs a freshly fetched report and reveals the
// analytics region. The previous report is replaced wholesale.
func (v *ViewState) AnalyticsLoaded(r *report.Report) {
	v.Report = r
	v.Region = RegionAnalytics
	v.Error = ""
	v.notify()
}

// Fail returns the view to the input region with the message retained
// for display. Any rendered analytics are cleared so the UI never
// shows stale data next to an error.
func (v *ViewState) Fail(msg string) {
	v.Report = nil
	v.Region = RegionInput
	v.Error = msg
	v.notify()
}

// ShowSection activates a navigation section without changing the
// region. Exactly one section is active at a time.
func (v *ViewState) ShowSection(s Section) {
	v.Section = s
	v.notify()
}

func (v *ViewState) notify() {
	if v.OnChange != nil {
		v.OnChange(v)
	}
}
