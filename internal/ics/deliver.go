package ics

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Platform describes the requesting client's delivery capabilities. The
// boolean capability probes (CanShareFiles, CanOpenPopups) come from the
// client; strategy selection prefers capabilities over raw platform flags
// so a capable browser on any OS gets the richest path it supports.
type Platform struct {
	IsIOS     bool `json:"is_ios"`
	IsAndroid bool `json:"is_android"`

	CanShareFiles bool `json:"can_share_files"`
	CanOpenPopups bool `json:"can_open_popups"`
}

// IsDesktop reports whether neither mobile flag is set.
func (p Platform) IsDesktop() bool {
	return !p.IsIOS && !p.IsAndroid
}

// DeliveryMode names the mechanism a client should use to hand the document
// to a calendar application.
type DeliveryMode string

const (
	// ModeDownload serves the document as a file attachment.
	ModeDownload DeliveryMode = "download"
	// ModeShareSheet hands the document to the native share sheet.
	ModeShareSheet DeliveryMode = "share_sheet"
	// ModeDataURI opens a base64 data URI with manual instructions.
	ModeDataURI DeliveryMode = "data_uri"
	// ModeGoogleCalendarURL opens a Google Calendar add-event template for
	// the first event only.
	ModeGoogleCalendarURL DeliveryMode = "google_calendar_url"
)

// DeliveryPlan is the chosen strategy plus everything the executing layer
// needs: the filename for attachment modes, a target URL for URL modes, and
// an advisory note when the strategy truncates a multi-event export.
// Fallbacks lists the remaining strategies to try if the chosen one fails
// client-side; the chain never ends empty because ModeDownload always
// applies.
type DeliveryPlan struct {
	Mode      DeliveryMode   `json:"mode"`
	Filename  string         `json:"filename"`
	TargetURL string         `json:"target_url,omitempty"`
	Note      string         `json:"note,omitempty"`
	Fallbacks []DeliveryMode `json:"fallbacks,omitempty"`
}

// PlanDelivery selects the best delivery strategy for the platform. The
// chain is capability-probe first: share sheet when file sharing is
// available, then data URI (iOS) or Google Calendar URL (Android), with
// plain download as the universal last resort. It never fails; unknown or
// contradictory platforms degrade to download.
func PlanDelivery(p Platform, filename string, events []EventInput, document string) DeliveryPlan {
	switch {
	case p.IsIOS:
		return planIOS(p, filename, document)
	case p.IsAndroid:
		return planAndroid(filename, events)
	default:
		return DeliveryPlan{Mode: ModeDownload, Filename: filename}
	}
}

func planIOS(p Platform, filename string, document string) DeliveryPlan {
	if p.CanShareFiles {
		return DeliveryPlan{
			Mode:      ModeShareSheet,
			Filename:  filename,
			Fallbacks: []DeliveryMode{ModeDataURI, ModeDownload},
		}
	}
	if p.CanOpenPopups {
		plan := DeliveryPlan{
			Mode:      ModeDataURI,
			Filename:  filename,
			TargetURL: DataURI(document),
			Note:      NoteIOSDataURI,
			Fallbacks: []DeliveryMode{ModeDownload},
		}
		return plan
	}
	// The downloaded file carries the full document, so no truncation
	// note applies here.
	return DeliveryPlan{Mode: ModeDownload, Filename: filename}
}

func planAndroid(filename string, events []EventInput) DeliveryPlan {
	if len(events) == 0 {
		return DeliveryPlan{Mode: ModeDownload, Filename: filename}
	}
	plan := DeliveryPlan{
		Mode:      ModeGoogleCalendarURL,
		Filename:  filename,
		TargetURL: GoogleCalendarURL(events[0]),
		Fallbacks: []DeliveryMode{ModeDownload},
	}
	if len(events) > 1 {
		plan.Note = NoteAndroidFirstOnly
	}
	return plan
}

// DataURI encodes the document as a base64 text/calendar data URI, the iOS
// fallback when the share sheet is unavailable.
func DataURI(document string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(document))
	return "data:" + MIMEType + ";charset=utf-8;base64," + encoded
}

// GoogleCalendarURL builds the add-event template URL for a single event.
// Google's template endpoint accepts one event per URL, which is why the
// Android path truncates multi-event exports.
func GoogleCalendarURL(ev EventInput) string {
	date := ev.Date.Format(dateLayout)
	q := url.Values{}
	q.Set("text", ev.Title)
	q.Set("dates", date+"/"+date)
	q.Set("details", ev.Description)
	return googleCalendarRenderURL + "&" + q.Encode()
}

// Filename builds the export filename `<context>-<qualifier>-<suffix>.ics`.
// The qualifier is lowercased with spaces collapsed to hyphens; without a
// date the suffix defaults to "times".
func Filename(context, qualifier string, date *time.Time) string {
	q := strings.ToLower(strings.Join(strings.Fields(qualifier), "-"))
	suffix := "times"
	if date != nil {
		suffix = date.Format(time.DateOnly)
	}
	return fmt.Sprintf("%s-%s-%s.ics", context, q, suffix)
}
