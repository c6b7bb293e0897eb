package pipeline

// Warning codes reported through the Recorder.
const (
	WarnUnsupportedLanguage = "unsupported_language"
	WarnUnsupportedLink     = "unsupported_link"
	WarnDeepNesting         = "deep_nesting"
	WarnFrontmatter         = "frontmatter"
)

// Warning is a non-fatal condition noticed during conversion. Warnings are
// collected, never printed: the caller decides how to surface them.
type Warning struct {
	Code   string
	Detail string
}

// Recorder accumulates warnings across pipeline stages.
type Recorder struct {
	warnings []Warning
}

// Add records one warning.
func (r *Recorder) Add(code, detail string) {
	r.warnings = append(r.warnings, Warning{Code: code, Detail: detail})
}

// Warnings returns everything recorded so far, in order.
func (r *Recorder) Warnings() []Warning {
	return r.warnings
}
