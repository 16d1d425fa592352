package engine

// Frame is passed to every system executed during one Scheduler.Once call.
type Frame struct {
	// DeltaTime is the frame time in seconds for every-frame systems, and the
	// timestep period for systems registered behind a Timestep.
	DeltaTime float64
	// Step counts the fixed steps already taken by the current stage this frame.
	Step     int
	Commands *Commands
}

func newFrame(dt float64) *Frame {
	return &Frame{
		DeltaTime: dt,
		Commands:  newCommands(),
	}
}
