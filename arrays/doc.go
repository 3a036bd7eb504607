// Package arrays collects slice helpers: element access and mutation with
// explicit bounds handling, linear scans, in-place transformations, prefix
// sums, and 2D matrix traversals.
//
// Mutating helpers (InsertAt, DeleteAt, Reverse, RotateRight) follow
// append/slices semantics: they return the resulting slice and may reuse the
// input's backing array.
//
// Errors
//
//   - ErrIndexOutOfRange : InsertAt/DeleteAt index outside the valid range.
//   - ErrEmpty           : Max/Min on an empty slice.
package arrays
