package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
	allowedImageExts    = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
)

// SanitizeFilename reduces a client supplied filename to a token safe to use
// in a blob name: ASCII only, no path separators, words joined by "_", and
// only [A-Za-z0-9_.-]. The result may be empty.
func SanitizeFilename(filename string) string {
	decomposed := norm.NFKD.String(filename)
	var b strings.Builder
	for _, r := range decomposed {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}
	ascii := strings.NewReplacer("/", " ", "\\", " ").Replace(b.String())
	joined := strings.Join(strings.Fields(ascii), "_")
	return strings.Trim(unsafeFilenameChars.ReplaceAllString(joined, ""), "._")
}

// IsAllowedImage checks the extension only, case-insensitively. File content
// is not inspected.
func IsAllowedImage(filename string) bool {
	lower := strings.ToLower(filename)
	for _, ext := range allowedImageExts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
