// Package logger is a small event logging framework for shell sessions.
//
// Programs report what they did through a Recorder; the text recorder writes
// one line per event to a standard library logger and the session recorder
// keeps a running Report of the events it has seen.
package logger
