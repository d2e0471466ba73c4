// Package coll provides non-empty-container conditions in the whatif style.
// A nil container and an empty container take the identical (negative)
// branch; the positive branch always receives a non-empty container.
//
// Per-shape helpers cover the common containers:
// - Slice/DoubleSlice for slices
// - Map/DoubleMap for maps
// - Str/DoubleStr for strings
//
// NotEmpty/DoubleNotEmpty are the collapsed generic forms, parameterized by
// an emptiness predicate, for container types the per-shape helpers do not
// cover.
package coll
