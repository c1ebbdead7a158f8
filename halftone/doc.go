// Package halftone implements 3×3 ordered-dither halftoning.
//
// Each source pixel is reduced to one of ten intensity levels (0..9) and
// replaced by a 3×3 block of dots. Level k turns on exactly k dots, and every
// level's pattern contains the previous one, so tone increases monotonically:
//
//	level:  1     2     3     4     5     6     7     8     9
//	       .#.   .#.   ##.   ##.   ###   ###   ###   ###   ###
//	       ...   ...   ...   ...   ...   ..#   ..#   #.#   ###
//	       ...   ..#   ..#   #.#   #.#   #.#   ###   ###   ###
//
// The output is 3× taller and 3× wider than the input, with "on" dots at 255.
package halftone
