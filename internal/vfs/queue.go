// Copyright (c) Svelte Language Tools contributors.
// SPDX-License-Identifier: MIT

package vfs

// queuedEvent is one deferred notification. Cancelled entries stay in
// the queue and are skipped on drain; removal in place would invalidate
// positions of entries queued behind them.
type queuedEvent struct {
	ev        Event
	cancelled bool
}

// eventQueue defers change notifications so that a write or delete
// returns before its watchers run, mirroring how a real host delivers
// filesystem events on a later turn of the scheduler. FIFO order keeps
// per-path delivery in operation order.
type eventQueue struct {
	entries []*queuedEvent
}

func (q *eventQueue) push(ev Event) {
	q.entries = append(q.entries, &queuedEvent{ev: ev})
}

// pop returns the next non-cancelled event, or false when the queue is
// drained.
func (q *eventQueue) pop() (Event, bool) {
	for len(q.entries) > 0 {
		head := q.entries[0]
		q.entries = q.entries[1:]
		if head.cancelled {
			continue
		}
		return head.ev, true
	}
	return Event{}, false
}

// cancelPath marks every pending event for path as cancelled.
func (q *eventQueue) cancelPath(path string) {
	for _, entry := range q.entries {
		if entry.ev.Path == path {
			entry.cancelled = true
		}
	}
}

// pending counts events not yet delivered nor cancelled.
func (q *eventQueue) pending() int {
	n := 0
	for _, entry := range q.entries {
		if !entry.cancelled {
			n++
		}
	}
	return n
}
