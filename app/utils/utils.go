package utils

import (
	"cmp"
	"slices"
	"strings"

	"github.com/charmbracelet/x/ansi"
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

// HasName is an interface for types that expose a Name method.
// Used to generically sort any slice of such types.
type HasName interface {
	Name() string
}

// TruncateText shortens the given text to fit within maxWidth cells.
// If the text exceeds maxWidth, it appends "..." (if possible).
func TruncateText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	if ansi.StringWidth(text) <= maxWidth {
		return text
	}

	if maxWidth > 3 {
		return ansi.Truncate(text, maxWidth, "...")
	}

	// No space for "..."
	return ansi.Truncate(text, maxWidth, "")
}

// SortSliceAsc sorts a slice of items that implement HasName
// in ascending (case-insensitive) order.
func SortSliceAsc[T HasName](slice []T) {
	slices.SortFunc(slice, func(i, j T) int {
		return strings.Compare(strings.ToLower(i.Name()), strings.ToLower(j.Name()))
	})
}

// Clamp limits v to the range [low, high]
func Clamp[T cmp.Ordered](v, low, high T) T {
	if high < low {
		return low
	}
	return min(max(v, low), high)
}

// DiffStat counts the runes added to and removed from oldStr to get
// newStr
func DiffStat(oldStr string, newStr string) (added int, removed int) {
	if oldStr == newStr {
		return 0, 0
	}

	d := dmp.New()
	diffs := d.DiffCleanupSemantic(d.DiffMain(oldStr, newStr, false))

	for _, diff := range diffs {
		switch diff.Type {
		case dmp.DiffInsert:
			added += len([]rune(diff.Text))
		case dmp.DiffDelete:
			removed += len([]rune(diff.Text))
		}
	}

	return added, removed
}
