// Package roll implements circular shifts of grid planes along axis 1.
//
// RollAxis walks axis 2 of a grid and rolls each plane by its own shift
// amount. RollLattice adds a second roll along axis 0; fed the D2Q9X and
// D2Q9Y presets it is the streaming step of a D2Q9 lattice Boltzmann
// solver. RollDense and Stream cover the float64 populations such a solver
// carries.
package roll
