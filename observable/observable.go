// Package observable is the publish/subscribe base shared by every model.
//
// Each Observable owns its listener table. Two models never share listeners,
// so publishing on one model cannot reach the subscribers of another.
package observable

import (
	"github.com/google/uuid"
)

// Listener is implemented by anything that wants to observe an Observable.
type Listener interface {
	// OnUpdate is called synchronously from Publish. The source argument is
	// the value given to New, usually the model embedding the Observable.
	OnUpdate(source any, ev Event)
}

// Observable keeps a set of listeners and notifies them of events.
type Observable struct {
	source    any
	listeners map[uuid.UUID]Listener

	// subscription ids in registration order
	order []uuid.UUID
}

// New creates an Observable that reports source as the origin of its events.
func New(source any) *Observable {
	return &Observable{
		source:    source,
		listeners: make(map[uuid.UUID]Listener),
	}
}

// Subscribe registers the listener. The returned id can be used with
// Unsubscribe. Subscription fails, returning false, if the listener is nil.
func (o *Observable) Subscribe(l Listener) (uuid.UUID, bool) {
	if l == nil {
		return uuid.Nil, false
	}
	id := uuid.New()
	o.listeners[id] = l
	o.order = append(o.order, id)
	return id, true
}

// Unsubscribe removes the listener registered under id. It returns false if
// no such listener exists.
func (o *Observable) Unsubscribe(id uuid.UUID) bool {
	if _, ok := o.listeners[id]; !ok {
		return false
	}
	delete(o.listeners, id)
	for i := range o.order {
		if o.order[i] == id {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of registered listeners.
func (o *Observable) Len() int {
	return len(o.listeners)
}

// Publish delivers ev to every listener, most recently registered first.
// Listeners added during delivery are first called on the next Publish.
// Listeners removed during delivery are not called again.
func (o *Observable) Publish(ev Event) {
	if len(o.order) == 0 {
		return
	}
	order := make([]uuid.UUID, len(o.order))
	copy(order, o.order)

	for i := len(order) - 1; i >= 0; i-- {
		if l, ok := o.listeners[order[i]]; ok {
			l.OnUpdate(o.source, ev)
		}
	}
}
