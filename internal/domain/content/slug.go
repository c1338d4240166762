package content

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxSlugLength bounds every slug, suffixed candidates included.
const MaxSlugLength = 120

var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// NormalizeSlug folds text to lowercase ASCII words joined by single hyphens.
// Accents are decomposed and dropped ("Café" becomes "cafe"). Text with no
// usable characters yields "untitled-<unix millis of now>".
func NormalizeSlug(raw string, now time.Time) string {
	folded, _, err := transform.String(stripMarks, raw)
	if err != nil {
		folded = raw
	}

	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	slug := truncateSlug(b.String(), MaxSlugLength)
	if slug == "" {
		return "untitled-" + strconv.FormatInt(now.UnixMilli(), 10)
	}
	return slug
}

// SlugCandidate returns root for n == 0 and "root-n" otherwise, shortening
// root so the result never exceeds MaxSlugLength.
func SlugCandidate(root string, n int) string {
	if n <= 0 {
		return truncateSlug(root, MaxSlugLength)
	}
	suffix := "-" + strconv.Itoa(n)
	return truncateSlug(root, MaxSlugLength-len(suffix)) + suffix
}

func truncateSlug(s string, max int) string {
	if len(s) > max {
		s = s[:max]
	}
	return strings.Trim(s, "-")
}
