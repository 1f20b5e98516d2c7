package core

// Kinetic holds the continuous motion state of a body in pixel space
type Kinetic struct {
	// X and Y are positions in pixels; Y grows downward and 0 is the table surface
	X, Y float64
	// VX and VY are velocities in pixels per second
	VX, VY float64
	// Angle is rotation in radians, AngularVel in radians per second
	Angle, AngularVel float64
}
