package isoduration

import "regexp"

// iso8601Duration matches the full ISO 8601 duration grammar, anchored at
// both ends. Designator order is fixed: Y, M, W, D in the period segment
// and H, M, S after the T separator. Each digit run may be empty; the
// grammar admits a designator with no magnitude ("PY"), which the
// extractor later treats as absent.
var iso8601Duration = regexp.MustCompile(
	`^P(?:\d*Y)?(?:\d*M)?(?:\d*W)?(?:\d*D)?(?:T(?:\d*H)?(?:\d*M)?(?:\d*S)?)?$`,
)

// Valid reports whether duration conforms to the ISO 8601 duration
// grammar. A bare "P" and a trailing bare "T" conform; an empty string,
// extra characters, lowercase letters, or out-of-order designators do not.
// Valid never returns an error.
func Valid(duration string) bool {
	return iso8601Duration.MatchString(duration)
}
