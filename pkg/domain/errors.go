package domain

import "errors"

// ErrMissingChannel is returned when an engine lacks a channel the host depends on.
var ErrMissingChannel = errors.New("engine is missing a required channel")

// ErrNotAttached is returned when a host operation needs a mounted engine.
var ErrNotAttached = errors.New("host is not attached")

// ErrAlreadyAttached is returned when a host is attached twice without detaching.
var ErrAlreadyAttached = errors.New("host is already attached")

// ErrUnknownChannel is returned when dispatching on a channel the engine does not expose.
var ErrUnknownChannel = errors.New("unknown channel")
