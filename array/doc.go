// Package array describes fixed-width integer arrays as the kernels see them:
// an element type, a length, an offset into shared buffers, a little-endian
// values buffer and an optional validity bitmap.
//
// Data is a borrowed view. It never owns more than the slices it points at,
// and slicing shares buffers with the parent.
//
//	d := array.MustFromJSON(array.Int16, "[0, null, 127]")
//	codes := array.Int16s(d) // []int16{0, <unspecified>, 127}
//	d.IsValid(1)             // false
package array
