// Package services implements the driving port interfaces.
// Services orchestrate the line matcher and the driven ports
// (text source, result writer, file watcher, config store).
//
// Services are pure Go with no CGO. External dependencies are limited to
// report IDs (uuid) and watch re-run throttling (x/time/rate).
package services
