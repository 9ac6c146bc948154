// Package viz hosts the widgets in the terminal using Bubble Tea.
//
//   - [WizardModel]: stand-alone progress wizard
//   - [FieldModel]: one field puzzle with a text input and a number pad
//   - [DrillModel]: several puzzles in a row under a progress wizard
//
// Pulse expirations are scheduled through [sched.Tea], so they are delivered
// as messages and run inside Update like every other event.
//
// # Key Bindings
//
//	enter - submit the response / next puzzle
//	tab   - toggle the number pad (a digit answers and submits)
//	space - toggle the selected wizard step
//	esc   - quit
package viz
