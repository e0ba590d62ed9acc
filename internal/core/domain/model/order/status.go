package order

import (
	"fmt"
	"slices"

	"restaurant/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Cooking ──> Ready ──> Delivered
//
// The chain only moves forward one step at a time. Delivered is terminal.
// Repeating the current status, skipping a step and going back are all rejected.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly placed order.
	Pending

	// Cooking means the kitchen is preparing the order.
	Cooking

	// Ready means the order waits to be handed over.
	Ready

	// Delivered means the order reached the customer. It counts towards sales.
	Delivered
)

// getStatusStrings returns the wire names of all statuses.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Cooking:   "cooking",
		Ready:     "ready",
		Delivered: "delivered",
	}
}

// getTransitions returns the transition table: status → statuses it may move to.
// A fresh map is built per call so no caller can alter the workflow.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Cooking},
		Cooking:   {Ready},
		Ready:     {Delivered},
		Delivered: {},
	}
}

// ParseStatus maps a wire name ("pending", "cooking", "ready", "delivered")
// to its Status. Any other input, including "unknown", is a validation error.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks that s is one of the four workflow statuses.
func (s Status) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	next, ok := getTransitions()[s]
	return ok && len(next) == 0
}

// NextStatuses lists the statuses s may move to.
func (s Status) NextStatuses() []Status {
	return getTransitions()[s]
}

// CanTransitionTo reports whether the table allows s → next.
func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(getTransitions()[s], next)
}

// TransitionTo returns next when s → next is allowed and a
// StatusTransitionIsInvalidError otherwise.
//
// Example:
//
//	newStatus, err := order.Pending.TransitionTo(order.Cooking) // Cooking, nil
//	_, err = order.Pending.TransitionTo(order.Ready)            // error: skipping Cooking
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewStatusTransitionIsInvalidError(s.String(), next.String())
	}
	return next, nil
}
