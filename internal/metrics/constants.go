package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNamePanchangamLookups  = "panchangam_lookups_total"
	MetricNameAuspiciousSearches = "auspicious_searches_total"
	MetricNameCalendarExports    = "calendar_exports_total"
	MetricNameScoreRPCCalls      = "score_rpc_calls_total"
	MetricNameScoreCacheHits     = "score_cache_hits_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextPanchangamLookups  = "Total number of daily panchangam lookups"
	HelpTextAuspiciousSearches = "Total number of auspicious time searches"
	HelpTextCalendarExports    = "Total number of ICS calendar exports"
	HelpTextScoreRPCCalls      = "Total number of personal score backend calls"
	HelpTextScoreCacheHits     = "Total number of personal score cache hits"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelActivity = "activity"
	LabelKind     = "kind"
	LabelResult   = "result"
)

// ============================================================================
// Metric Label Values
// ============================================================================

const (
	ResultOK    = "ok"
	ResultError = "error"

	ExportKindAuspicious = "auspicious"
	ExportKindPersonal   = "personal"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
