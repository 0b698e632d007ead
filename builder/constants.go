// SPDX-License-Identifier: MIT

package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	MethodSimplicialSphere = "SimplicialSphere"
	MethodCircle           = "Circle"
	MethodCellularSphere   = "CellularSphere"
	MethodEquispacedCircle = "EquispacedCircle"
	MethodRandomSphere     = "RandomSphere"
	MethodGaussian         = "Gaussian"
	MethodRandomTorus      = "RandomTorus"
	MethodRandomFigure8    = "RandomFigure8"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinCircleVertices is the smallest m for which Circle(m) is a simplicial circle.
const MinCircleVertices = 3

// MinCellularSphereDim is the smallest dimension CellularSphere accepts; a
// 0-cell cannot be attached to a point.
const MinCellularSphereDim = 1
