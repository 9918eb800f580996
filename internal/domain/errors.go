package domain

import "errors"

var (
	// ErrTemplateLoad indicates the template could not be read or the client
	// has no template. Fatal to the session.
	ErrTemplateLoad = errors.New("template load failed")

	// ErrHistoryRead indicates prior history could not be read while
	// preparing drafts. Callers treat it as "no prior history".
	ErrHistoryRead = errors.New("history read failed")

	// ErrPersistence indicates the history store could not be read or
	// written while saving.
	ErrPersistence = errors.New("history persistence failed")

	// ErrValidation indicates user-facing input that cannot be logged.
	ErrValidation = errors.New("validation failed")

	// ErrAccessDenied indicates an unknown client or a wrong access code.
	ErrAccessDenied = errors.New("invalid client code")
)
