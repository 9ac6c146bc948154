// Package field implements the counting puzzle: a grid of marked and empty
// cubes that the learner counts before typing an answer.
//
// A [Puzzle] is single use. It moves through three states:
//
//	Rendering -> AwaitingResponse -> Submitted
//
// Every response edit is forwarded to the [Host] log hook, and the one
// permitted submission reports its verdict through [Host.Finish].
package field
