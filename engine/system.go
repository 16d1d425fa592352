// Package engine runs game phases in a fixed order once per rendered frame.
// Phases that must advance at a steady rate are grouped behind a Timestep,
// which decides how many times they run in a given frame.
package engine

// System is a single phase of a frame. Systems keep whatever state they need
// between frames in their own fields.
type System interface {
	Execute(frame *Frame)
}
