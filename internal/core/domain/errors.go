package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent failures at the collaborator boundary.
// The line matcher itself never fails; every error here originates in
// configuration loading, file reading or settings persistence.
var (
	// ErrConfiguration indicates the invocation could not be configured.
	// The search is never started when this is returned.
	ErrConfiguration = errors.New("configuration error")

	// ErrMissingQuery indicates no query argument was supplied.
	ErrMissingQuery = fmt.Errorf("%w: didn't get a query string", ErrConfiguration)

	// ErrMissingFilename indicates no filename argument was supplied.
	ErrMissingFilename = fmt.Errorf("%w: didn't get a filename string", ErrConfiguration)

	// ErrRead indicates the text source could not be read.
	ErrRead = errors.New("read failed")

	// ErrInvalidEncoding indicates the text source is not valid UTF-8.
	ErrInvalidEncoding = fmt.Errorf("%w: stream did not contain valid UTF-8", ErrRead)

	// ErrSourceRemoved indicates a watched file was deleted or renamed.
	ErrSourceRemoved = errors.New("source removed")

	// ErrWatchUnavailable indicates no file watcher is configured.
	ErrWatchUnavailable = errors.New("file watcher unavailable")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSetting indicates an unknown settings key or a bad value.
	ErrInvalidSetting = errors.New("invalid setting")
)
