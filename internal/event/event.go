// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event carries a payload from one of the types.go structs.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener receives the events it subscribed to.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher delivers events synchronously, in subscription order.
//
// Listener lists are copy-on-write: Subscribe and Unsubscribe install a new slice
// and never touch the one a running Dispatch is iterating. A listener may therefore
// subscribe or unsubscribe (itself or others) from inside OnEvent. The change applies
// from the next Dispatch on.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe adds listener for every given type.
func (d *Dispatcher) Subscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		old := d.listeners[t]
		next := make([]Listener, len(old), len(old)+1)
		copy(next, old)
		d.listeners[t] = append(next, listener)
	}
}

// Unsubscribe removes the first registration of listener for each given type.
func (d *Dispatcher) Unsubscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		old := d.listeners[t]
		for i, l := range old {
			if l != listener {
				continue
			}
			if len(old) == 1 {
				delete(d.listeners, t)
				break
			}
			next := make([]Listener, 0, len(old)-1)
			next = append(next, old[:i]...)
			d.listeners[t] = append(next, old[i+1:]...)
			break
		}
	}
}

// Dispatch — отправка события всем подписчикам, снимок списка берётся до первого вызова
func (d *Dispatcher) Dispatch(event Event) {
	for _, l := range d.listeners[event.Type] {
		l.OnEvent(event)
	}
}

// Listeners returns how many listeners are subscribed to t.
func (d *Dispatcher) Listeners(t EventType) int {
	return len(d.listeners[t])
}
