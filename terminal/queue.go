package terminal

import "io"

type queued struct {
	ev  Event
	err error
}

// EventQueue is an EventSource that replays pushed events in order and
// reports io.EOF when drained.
type EventQueue struct {
	items []queued
}

func NewEventQueue(events ...Event) *EventQueue {
	q := &EventQueue{}
	q.Push(events...)
	return q
}

func (q *EventQueue) Push(events ...Event) {
	for _, ev := range events {
		q.items = append(q.items, queued{ev: ev})
	}
}

// PushError queues a read failure.
func (q *EventQueue) PushError(err error) {
	q.items = append(q.items, queued{err: err})
}

func (q *EventQueue) Len() int { return len(q.items) }

func (q *EventQueue) PollEvent() (Event, error) {
	if len(q.items) == 0 {
		return nil, io.EOF
	}
	it := q.items[0]
	q.items = q.items[1:]
	return it.ev, it.err
}

// Keys converts a string into one KeyEvent per rune.
func Keys(s string) []Event {
	out := make([]Event, 0, len(s))
	for _, r := range s {
		out = append(out, KeyEvent{Key: KeyRune, Rune: r})
	}
	return out
}

// Ctrl returns the Ctrl+r key event.
func Ctrl(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r, Mod: ModCtrl}
}
