// Package matcher implements the line matcher: it splits a text body
// into lines and keeps those containing a query, under a case policy.
//
// Every function here is pure. Returned lines are substrings of the
// body passed in and share its memory; nothing is copied, and the
// garbage collector keeps the body alive for as long as any returned
// line is referenced.
//
// Lines are separated by "\n". A "\r" directly before the "\n" is
// part of the terminator and is dropped. A trailing terminator does
// not produce an extra empty line, and an empty body has no lines.
package matcher
