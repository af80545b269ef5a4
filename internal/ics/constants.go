package ics

// iCalendar document constants (RFC 5545).
const (
	// CRLF terminates every content line in an iCalendar stream.
	CRLF = "\r\n"

	// ProdID identifies this generator in the VCALENDAR header.
	ProdID = "-//Panchangam Calendar//EN"

	// MIMEType is the media type for .ics downloads.
	MIMEType = "text/calendar"

	// dateLayout is the all-day DATE value format (RFC 5545 §3.3.4).
	dateLayout = "20060102"

	// dateTimeLayout is the UTC DATE-TIME value format (RFC 5545 §3.3.5).
	dateTimeLayout = "20060102T150405Z"

	// ReminderHour is the local hour of the VALARM display trigger on each
	// event's start date.
	ReminderHour = 8
)

// Default alarm text when an event supplies none.
const DefaultReminderText = "Reminder: Auspicious day today"

// Google Calendar single-event template endpoint used by the Android
// delivery path.
const googleCalendarRenderURL = "https://calendar.google.com/calendar/render?action=TEMPLATE"

// User-facing delivery notes for truncating strategies.
const (
	// NoteAndroidFirstOnly is shown when a Google Calendar URL export
	// carries only the first of several events.
	NoteAndroidFirstOnly = "Only the first event was added to your calendar. Use the desktop download to add all events at once."

	// NoteIOSDataURI carries the manual instructions for the data-URI path.
	NoteIOSDataURI = "Tap the download link, open the .ics file and choose Add All to add the events to your calendar."
)
