package ecs

// System is one step of a frame. Exported Query and Singleton fields are bound
// to the scheduler's storage when the system is registered; any other fields
// keep their values between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
