package engine

// Event is a multicast callback list. Input actions and scene reloads use
// it so gameplay code can subscribe instead of polling.
type Event struct {
	listeners []func()
}

// AddListener registers a callback; nil callbacks are ignored.
func (e *Event) AddListener(callback func()) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

// RemoveAllListeners clears the list.
func (e *Event) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls every registered listener in registration order.
func (e *Event) Invoke() {
	for _, listener := range e.listeners {
		listener()
	}
}

// EventWithArg is Event with one typed argument.
type EventWithArg[T any] struct {
	listeners []func(T)
}

func (e *EventWithArg[T]) AddListener(callback func(T)) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, listener := range e.listeners {
		listener(arg)
	}
}

// ListenerCount reports how many listeners are registered.
func (e *EventWithArg[T]) ListenerCount() int {
	return len(e.listeners)
}
