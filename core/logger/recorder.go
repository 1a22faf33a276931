package logger

import (
	"encoding/json"
	"log"
	"sync"
)

// Recorder stores events in an external sink.
type Recorder interface {
	Record(event Event) error
}

// RecorderFunc adapts a function to a Recorder.
type RecorderFunc func(event Event) error

func (f RecorderFunc) Record(event Event) error {
	return f(event)
}

var _ Recorder = (RecorderFunc)(nil)

// NewTextRecorder creates a Recorder that prints each event on its own line.
func NewTextRecorder(l *log.Logger) Recorder {
	return RecorderFunc(func(event Event) error {
		l.Println(event.String())
		return nil
	})
}

// NewNopRecorder creates a Recorder that drops every event.
func NewNopRecorder() Recorder {
	return RecorderFunc(func(Event) error {
		return nil
	})
}

// SessionRecorder forwards events to another Recorder and tallies them.
type SessionRecorder struct {
	next Recorder

	mu     sync.Mutex
	report *Report
}

var _ Recorder = (*SessionRecorder)(nil)

// NewSessionRecorder wraps next, keeping a Report of every event.
func NewSessionRecorder(next Recorder) *SessionRecorder {
	return &SessionRecorder{
		next:   next,
		report: NewReport(),
	}
}

func (s *SessionRecorder) Record(event Event) error {
	s.mu.Lock()
	s.report.Update(event)
	s.mu.Unlock()

	return s.next.Record(event)
}

// ReportJSON returns the session report as a JSON document.
func (s *SessionRecorder) ReportJSON() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return json.Marshal(s.report)
}
