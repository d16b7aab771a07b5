package easycurry

import (
	"github.com/lunfardo314/unitrie/common"
)

// PlaceholderMarker is implemented by values which mark an unfilled argument slot.
// Any type can act as a placeholder, so placeholders coming from another copy
// of the package are still recognized
type PlaceholderMarker interface {
	FunctionalPlaceholder() bool
}

type placeholder struct{}

// Placeholder is the gap marker. g(Placeholder, 2)(1) is the same as g(1, 2)
var Placeholder PlaceholderMarker = placeholder{}

func (placeholder) FunctionalPlaceholder() bool {
	return true
}

func (placeholder) String() string {
	return "__"
}

func IsPlaceholder(x any) bool {
	if p, ok := x.(PlaceholderMarker); ok {
		if common.IsNil(x) {
			return false
		}
		return p.FunctionalPlaceholder()
	}
	return false
}

func countPlaceholders(args []any) int {
	ret := 0
	for _, a := range args {
		if IsPlaceholder(a) {
			ret++
		}
	}
	return ret
}
