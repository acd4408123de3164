package storage

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var (
	unsafeChars     = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)
	repeatedDashes  = regexp.MustCompile(`-{2,}`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
	leadingTrailing = "-._"
)

// ObjectName sanitises a user-supplied filename and prefixes it with a
// timestamp so repeated uploads of the same file never collide. Collision
// avoidance relies solely on this prefix; the store performs no server-side
// duplicate detection.
func ObjectName(prefix, filename string, now time.Time) string {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	stem = whitespaceRuns.ReplaceAllString(strings.TrimSpace(stem), "-")
	stem = unsafeChars.ReplaceAllString(stem, "-")
	stem = repeatedDashes.ReplaceAllString(stem, "-")
	stem = strings.Trim(stem, leadingTrailing)
	if stem == "" {
		stem = "file"
	}

	ext = strings.ToLower(unsafeChars.ReplaceAllString(ext, ""))
	if ext != "" {
		ext = "." + strings.TrimPrefix(ext, ".")
	}

	name := fmt.Sprintf("%d-%s%s", now.UnixMilli(), stem, ext)
	if prefix == "" {
		return name
	}
	return strings.Trim(prefix, "/") + "/" + name
}
