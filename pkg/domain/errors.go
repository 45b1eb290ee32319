package domain

import "errors"

// ErrInvalidDiscount is returned when the discount factor is outside [0, 1].
var ErrInvalidDiscount = errors.New("discount factor must be a floating point number within the interval [0, 1]")

// ErrMalformedTriple is returned when a state's transition list cannot be
// decoded as (action, destination, probability) triples.
var ErrMalformedTriple = errors.New("malformed action triple")

// ErrUnknownDestination is returned when an action references a
// destination state that is absent from the model.
var ErrUnknownDestination = errors.New("unknown destination state")

// ErrPlanNotFound is returned when a plan ID cannot be found in the store.
var ErrPlanNotFound = errors.New("plan not found")
