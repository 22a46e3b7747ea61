package utils

import (
	"regexp"
	"strings"
)

const (
	// MaxBranchNameByteLength is the maximum length for a branch name.
	// Git refs have a max length of 256 bytes, minus 11 for "refs/heads/".
	MaxBranchNameByteLength = 245
)

var (
	// BranchNameReplaceRegex matches characters that are not valid in branch names
	// Valid characters: letters, numbers, -, _, /, .
	BranchNameReplaceRegex = regexp.MustCompile(`[^-_/.a-zA-Z0-9]+`)

	// BranchNameIgnoreRegex matches trailing slashes and dots that should be removed
	BranchNameIgnoreRegex = regexp.MustCompile(`[/.]*$`)

	hyphenRegex      = regexp.MustCompile(`-+`)
	dotRunRegex      = regexp.MustCompile(`\.{2,}`)
	slashRunRegex    = regexp.MustCompile(`/{2,}`)
	leadingDotsRegex = regexp.MustCompile(`(^|/)\.+`)
)

// SanitizeBranchName turns free text into a name git accepts as a branch.
// Runs of invalid characters become a single hyphen; the result may be
// empty when nothing usable is left.
func SanitizeBranchName(name string) string {
	name = strings.TrimSpace(name)

	// Replace invalid characters with hyphens
	name = BranchNameReplaceRegex.ReplaceAllString(name, "-")
	name = hyphenRegex.ReplaceAllString(name, "-")

	// git rejects "..", "//" and components starting with a dot
	name = dotRunRegex.ReplaceAllString(name, ".")
	name = slashRunRegex.ReplaceAllString(name, "/")
	name = leadingDotsRegex.ReplaceAllString(name, "$1")

	name = BranchNameIgnoreRegex.ReplaceAllString(name, "")
	name = strings.TrimSuffix(name, ".lock")
	name = strings.Trim(name, "-/")

	if len(name) > MaxBranchNameByteLength {
		name = name[:MaxBranchNameByteLength]
		name = strings.TrimRight(name, "-/.")
	}

	return name
}
