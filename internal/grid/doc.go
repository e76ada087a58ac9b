// Package grid owns the fixed-shape three-dimensional container that the
// roll operations act on.
//
// Responsibilities: shape bookkeeping, flat row-major storage, and copying
// 2-D planes in and out along axis 2.
// Key types: Grid, Plane.
//
// Dependency rule: grid has no dependencies on other internal packages.
package grid
