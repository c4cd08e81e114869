// Package calc implements the pocket-calculator state-transition engine.
//
// The engine is a pure reducer: every transition takes the current State by
// value and returns a new State. Nothing is mutated in place, nothing is
// retained between calls, and no function returns an error. The single
// domain error (a non-finite result) is carried in State.Err and rendered as
// "Error" on the display.
//
// ARCHITECTURE:
//
// Modes:
// The fields of State encode four modes, reported by State.Mode():
// - Entering: typing the first operand (or looking at a result)
// - OperatorPending: an operator is staged, the second operand is being typed
// - PercentStaged: a percent value is waiting to be consumed as right operand
// - Error: the last computation was non-finite
//
// Any fresh input while in Error returns Initial(). Errors are never
// recovered mid-expression.
//
// Evaluation Order:
// Evaluate checks its four cases in a fixed order (percent with operator,
// bare percent, plain operator, repeat-last-op). Preview reports which case
// would fire and its result without committing, so a caller can phrase a
// history entry without repeating the arithmetic; Evaluate is built on it.
package calc
