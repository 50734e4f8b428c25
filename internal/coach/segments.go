package coach

import "strings"

// Section markers the feedback prompt instructs the model to emit. Parsing
// keys off these exact strings, so they must stay in sync with the prompt.
const (
	MarkerObservation = "Good Observation!"
	MarkerDeepDive    = "Let's Dig Deeper... 🤔"
	MarkerProTip      = "Pro Tip 💡"
)

// markers in the order the prompt requests them.
var markers = []string{MarkerObservation, MarkerDeepDive, MarkerProTip}

// headings maps each marker to its display form.
var headings = map[string]string{
	MarkerObservation: "✅ **Good Observation!**",
	MarkerDeepDive:    "🤔 **Let's Dig Deeper...**",
	MarkerProTip:      "💡 **Pro Tip**",
}

// Segment is one labeled portion of a feedback response.
type Segment struct {
	// Label is the marker that opened the segment
	Label string

	// Body is the text between this marker and the next one
	Body string
}

// ParseSegments splits a model response into the text before the first
// marker and the ordered list of labeled segments. Markers the model
// omitted simply produce no segment.
func ParseSegments(text string) (prefix string, segments []Segment) {
	type hit struct {
		label string
		start int
		end   int
	}

	var hits []hit
	for _, m := range markers {
		if i := strings.Index(text, m); i >= 0 {
			hits = append(hits, hit{label: m, start: i, end: i + len(m)})
		}
	}
	if len(hits) == 0 {
		return text, nil
	}

	// Order by position in the response, not prompt order, so a model that
	// reorders sections still round-trips faithfully.
	for i := 0; i < len(hits); i++ {
		for j := i + 1; j < len(hits); j++ {
			if hits[j].start < hits[i].start {
				hits[i], hits[j] = hits[j], hits[i]
			}
		}
	}

	prefix = text[:hits[0].start]
	for i, h := range hits {
		bodyEnd := len(text)
		if i+1 < len(hits) {
			bodyEnd = hits[i+1].start
		}
		segments = append(segments, Segment{Label: h.label, Body: text[h.end:bodyEnd]})
	}
	return prefix, segments
}

// FormatFeedback rewrites the raw model response for display: each marker
// becomes an emphasized heading, with a paragraph break inserted before the
// second and later segments. Responses without any marker pass through
// unchanged.
func FormatFeedback(text string) string {
	prefix, segments := ParseSegments(text)
	if len(segments) == 0 {
		return text
	}

	var b strings.Builder
	b.WriteString(prefix)
	for i, seg := range segments {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(headings[seg.Label])
		b.WriteString(seg.Body)
	}
	return b.String()
}
