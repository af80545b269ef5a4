package ics

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// EventInput is one all-day calendar entry to serialize. Description may
// contain literal newlines; they are escaped during serialization.
type EventInput struct {
	Date        time.Time
	Title       string
	Description string
	Categories  []string

	// ReminderText overrides the VALARM display text. Empty means
	// DefaultReminderText.
	ReminderText string

	// UIDPrefix namespaces the generated UID ("event", "favorable",
	// "chandrashtama"). Empty means "event".
	UIDPrefix string
}

// Builder serializes day events into an RFC 5545 document. The clock and
// UID suffix source are injectable so tests can pin DTSTAMP and UID while
// production uses UTC now and a random suffix.
type Builder struct {
	now func() time.Time
	uid func() string
}

// NewBuilder returns a Builder using the real clock and random UID
// suffixes.
func NewBuilder() *Builder {
	return &Builder{
		now: func() time.Time { return time.Now().UTC() },
		uid: randomUIDSuffix,
	}
}

// NewBuilderWithClock returns a Builder with a fixed clock and suffix
// source for deterministic output.
func NewBuilderWithClock(now func() time.Time, uid func() string) *Builder {
	return &Builder{now: now, uid: uid}
}

// randomUIDSuffix produces a short best-effort-unique token. Uniqueness is
// not cryptographically guaranteed; the date prefix does most of the work.
func randomUIDSuffix() string {
	return uuid.NewString()[:8]
}

// BuildDocument serializes the events under the given calendar name. Output
// begins BEGIN:VCALENDAR, ends END:VCALENDAR, uses CRLF line endings, and
// contains one VEVENT per input in order. The document is a pure function
// of its inputs apart from each event's UID suffix and the DTSTAMP.
func (b *Builder) BuildDocument(calendarName string, events []EventInput) string {
	var sb strings.Builder

	header := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + ProdID,
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"X-WR-CALNAME:" + calendarName,
		"X-WR-TIMEZONE:UTC",
	}
	sb.WriteString(strings.Join(header, CRLF))
	sb.WriteString(CRLF)

	for _, ev := range events {
		sb.WriteString(b.buildEvent(ev))
		sb.WriteString(CRLF)
	}

	sb.WriteString("END:VCALENDAR")
	return sb.String()
}

func (b *Builder) buildEvent(ev EventInput) string {
	start := ev.Date
	end := start.AddDate(0, 0, 1) // all-day convention: DTEND is exclusive

	prefix := ev.UIDPrefix
	if prefix == "" {
		prefix = "event"
	}
	uid := prefix + "-" + start.Format(time.DateOnly) + "-" + b.uid()

	reminder := ev.ReminderText
	if reminder == "" {
		reminder = DefaultReminderText
	}

	// Reminder fires at 08:00 on the event's start date.
	alarmAt := time.Date(start.Year(), start.Month(), start.Day(), ReminderHour, 0, 0, 0, time.UTC)

	lines := []string{
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTAMP:" + b.now().Format(dateTimeLayout),
		"DTSTART;VALUE=DATE:" + start.Format(dateLayout),
		"DTEND;VALUE=DATE:" + end.Format(dateLayout),
		"SUMMARY:" + ev.Title,
		"DESCRIPTION:" + escapeText(ev.Description),
		"CATEGORIES:" + strings.Join(ev.Categories, ","),
		"BEGIN:VALARM",
		"ACTION:DISPLAY",
		"DESCRIPTION:" + reminder,
		"TRIGGER;VALUE=DATE-TIME:" + alarmAt.Format(dateTimeLayout),
		"END:VALARM",
		"END:VEVENT",
	}
	return strings.Join(lines, CRLF)
}

// escapeText escapes TEXT values per RFC 5545 §3.3.11: backslash, then
// newline (to the two characters backslash-n), then semicolon and comma.
func escapeText(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		"\r\n", "\\n",
		"\n", "\\n",
		";", "\\;",
		",", "\\,",
	)
	return r.Replace(s)
}
