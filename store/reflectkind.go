package store

import "github.com/corestore-go/corestore/internal/kindof"

// funcShapedByReflection reports whether v's dynamic type is some kind of
// function value, regardless of its exact signature. Used by NewStore to
// reject an ambiguous function-shaped preloadedState (SPEC_FULL.md §9).
func funcShapedByReflection(v any) bool {
	return kindof.Of(v) == kindof.KindFunc
}
