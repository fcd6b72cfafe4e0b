package services

import (
	"log"
	"sync"
)

type StatusLevel string

const (
	StatusInfo    StatusLevel = "info"
	StatusSuccess StatusLevel = "success"
	StatusFailure StatusLevel = "error"
)

// StatusNotifier receives human-readable progress updates of an analysis.
type StatusNotifier interface {
	Notify(level StatusLevel, message string)
}

type logNotifier struct{}

func NewLogNotifier() StatusNotifier {
	return logNotifier{}
}

func (logNotifier) Notify(level StatusLevel, message string) {
	switch level {
	case StatusSuccess:
		log.Printf("✅ %s\n", message)
	case StatusFailure:
		log.Printf("❌ %s\n", message)
	default:
		log.Printf("🤖 %s\n", message)
	}
}

// StatusEvent is one recorded notification.
type StatusEvent struct {
	Level   StatusLevel
	Message string
}

// StatusRecorder keeps notifications in order and forwards them to next, if set.
type StatusRecorder struct {
	mu     sync.Mutex
	events []StatusEvent
	next   StatusNotifier
}

func NewStatusRecorder(next StatusNotifier) *StatusRecorder {
	return &StatusRecorder{next: next}
}

func (r *StatusRecorder) Notify(level StatusLevel, message string) {
	r.mu.Lock()
	r.events = append(r.events, StatusEvent{Level: level, Message: message})
	r.mu.Unlock()

	if r.next != nil {
		r.next.Notify(level, message)
	}
}

func (r *StatusRecorder) Events() []StatusEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]StatusEvent(nil), r.events...)
}
