package errs

import "errors"

// FileSet boundary violations. Both must leave prior state unchanged.
var (
	DuplicateName     = errors.New("file name already in use")
	EmptyFileName     = errors.New("file name must not be empty")
	LastFileProtected = errors.New("cannot remove the last remaining file")
)

// Local pre-flight failures, checked before any network call.
var (
	AuthMissing    = errors.New("not authenticated")
	ContextMissing = errors.New("no problem loaded")
	ActionInFlight = errors.New("another action is still in flight")
)

// Judge request failures. Both are the same reportable class for the console;
// the sentinels stay distinguishable for diagnostics.
var (
	TransportFailure   = errors.New("judge unreachable")
	ApplicationFailure = errors.New("judge reported failure")
)
