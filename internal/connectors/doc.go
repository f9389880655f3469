// Package connectors provides the text sources minigrep can read from.
// Each connector knows how to fetch a text body from one kind of
// source. Only the local filesystem is supported.
package connectors
