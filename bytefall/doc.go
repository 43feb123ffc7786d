// Package bytefall routes across a square memory space while bytes fall into
// it and turn cells into walls.
//
// The space is size×size, entered at the top-left corner (0,0) and left at
// the bottom-right corner. Bytes are given as "x,y" lines, x being the column.
// Every move costs one step; turns are free.
//
//   - ShortestSteps answers how far the exit is after a number of bytes.
//   - FirstBlocking finds the byte that first cuts the exit off. It keeps the
//     current route and only searches again when a byte lands on it.
package bytefall
