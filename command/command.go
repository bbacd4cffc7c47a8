// Package command defines the inbound instruction vocabulary of the
// simulation: immutable messages the presentation layer submits through
// the facade, routed by kind to exactly one handler.
package command

// Kind identifies the type of an inbound command
type Kind int

const (
	KindSetVelocity Kind = iota + 1
	KindSetPosition
	KindStartSharpening
	KindCancelSharpening
	KindSetHeatLevel
	KindPlaceFoodOnBurner
	KindRemoveFoodFromBurner
	KindStartChopping
	KindCancelChopping
)

// Command is one immutable inbound instruction
// Payload holds a pointer to the kind's payload struct
type Command struct {
	Kind    Kind
	Payload any
}
