package models

import "sync"

// ObserverFunc receives store notifications. Dispatch is synchronous and
// in subscription order, so a handler observing a notification sees the
// store already consistent for it.
type ObserverFunc[T any] func(tag UpdateType, payload T)

// Notifier is the multi-subscriber notification primitive shared by the
// stores. It is an explicit subscriber list, not an event bus: handlers
// are identified by the id returned from Subscribe.
type Notifier[T any] struct {
	mu       sync.Mutex
	nextID   int
	order    []int
	handlers map[int]ObserverFunc[T]
}

// Subscribe registers fn and returns an id usable with Unsubscribe.
func (n *Notifier[T]) Subscribe(fn ObserverFunc[T]) int {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.handlers == nil {
		n.handlers = make(map[int]ObserverFunc[T])
	}

	id := n.nextID
	n.nextID++
	n.order = append(n.order, id)
	n.handlers[id] = fn

	return id
}

// Unsubscribe removes the handler registered under id. Unknown ids are
// ignored.
func (n *Notifier[T]) Unsubscribe(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.handlers[id]; !ok {
		return
	}
	delete(n.handlers, id)

	for i, subscribed := range n.order {
		if subscribed == id {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
}

// notify calls every subscriber in registration order. The handler list
// is snapshotted first so handlers may subscribe or unsubscribe without
// deadlocking.
func (n *Notifier[T]) notify(tag UpdateType, payload T) {
	n.mu.Lock()
	snapshot := make([]ObserverFunc[T], 0, len(n.order))
	for _, id := range n.order {
		snapshot = append(snapshot, n.handlers[id])
	}
	n.mu.Unlock()

	for _, fn := range snapshot {
		fn(tag, payload)
	}
}
