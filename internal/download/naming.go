package download

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Output template handed to the fetcher inside the target directory
const OutputTemplate = "%(title)s.%(ext)s"

// MaxListedConflicts is how many conflicting names the confirmation shows
const MaxListedConflicts = 3

var illegalTitleChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// SanitizeTitle replaces characters that are not allowed in folder names with '_'.
func SanitizeTitle(title string) string {
	return illegalTitleChars.ReplaceAllString(title, "_")
}

// TargetDirectory returns the per-title folder under root
func TargetDirectory(title, root string) string {
	return filepath.Join(root, SanitizeTitle(title))
}

// OutputPath returns the fetcher output template placing files in targetDir
func OutputPath(targetDir string) string {
	return filepath.Join(targetDir, OutputTemplate)
}

// MatchConflicts returns the names that share the raw title as base name
// with any extension, keeping the order of names.
func MatchConflicts(title string, names []string) []string {
	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(title) + `\..+$`)

	var matched []string
	for _, name := range names {
		if pattern.MatchString(name) {
			matched = append(matched, name)
		}
	}
	return matched
}

// conflictPrompt builds the overwrite question shown for existing files
func conflictPrompt(folder string, conflicts []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d existing file(s) in '%s':", len(conflicts), folder)
	for i, name := range conflicts {
		if i == MaxListedConflicts {
			fmt.Fprintf(&b, "\n...and %d others.", len(conflicts)-MaxListedConflicts)
			break
		}
		fmt.Fprintf(&b, "\n• %s", name)
	}
	b.WriteString("\n\nDo you want to DELETE these files and download again?")
	return b.String()
}
