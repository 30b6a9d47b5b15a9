// Package conv provides checked integer conversions for values read from or
// written to block headers.
//
// Every failure wraps ErrOverflow. Conversions that are safe by construction
// (loop indices, bounded counters) should stay plain casts.
package conv
