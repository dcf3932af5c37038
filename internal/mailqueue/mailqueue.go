// Package mailqueue defines the outbound-notification surface pytableaux's
// service layer could push build-completion notices through: a single
// interface plus a discard implementation, since no concrete mail backend
// is in scope here.
package mailqueue

import "context"

// Notification is one outbound message a caller wants queued.
type Notification struct {
	To      string
	Subject string
	Body    string
}

// Queue accepts Notifications for eventual delivery.
type Queue interface {
	Enqueue(ctx context.Context, n Notification) error
}

// Discard returns a Queue that accepts every Notification and drops it.
func Discard() Queue { return discardQueue{} }

type discardQueue struct{}

func (discardQueue) Enqueue(context.Context, Notification) error { return nil }
