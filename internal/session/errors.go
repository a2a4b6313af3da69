package session

import "errors"

// Sentinel errors for the tailoring session. All are unrecoverable at the
// point raised: the caller aborts the in-progress operation, nothing is
// retried.
var (
	// ErrConstruction is returned when a session is started with a nil
	// policy, profile, or benchmark reference.
	ErrConstruction = errors.New("tailoring session construction")

	// ErrInconsistentState is returned when a selection override was
	// written but does not read back with the written value, meaning the
	// profile/policy overlay mechanism is broken.
	ErrInconsistentState = errors.New("tailoring state inconsistent")

	// ErrNoEditableText is returned when a title or description edit was
	// requested but the profile exposes no text entry to edit; the model
	// cannot synthesize a new language entry.
	ErrNoEditableText = errors.New("no editable text entry")
)
