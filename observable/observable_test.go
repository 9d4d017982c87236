package observable_test

import (
	"testing"

	"github.com/mo-shahab/go-pong-mvc/observable"
	"github.com/mo-shahab/go-pong-mvc/test"
)

type delivery struct {
	name   string
	source any
	ev     observable.Event
}

type recorder struct {
	name string
	log  *[]delivery
}

func (r *recorder) OnUpdate(source any, ev observable.Event) {
	*r.log = append(*r.log, delivery{name: r.name, source: source, ev: ev})
}

func TestSubscribeNil(t *testing.T) {
	o := observable.New(nil)
	_, ok := o.Subscribe(nil)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, o.Len(), 0)

	// publishing with no listeners is not an error
	o.Publish(observable.StateChanged{Running: true})
}

func TestPublishReverseOrder(t *testing.T) {
	owner := &struct{ n int }{}
	o := observable.New(owner)

	var log []delivery
	for _, n := range []string{"a", "b", "c"} {
		_, ok := o.Subscribe(&recorder{name: n, log: &log})
		test.ExpectSuccess(t, ok)
	}

	ev := observable.PositionChanged{Axis: observable.AxisY, Value: 7}
	o.Publish(ev)

	test.ExpectEquality(t, len(log), 3)
	test.ExpectEquality(t, log[0].name, "c")
	test.ExpectEquality(t, log[1].name, "b")
	test.ExpectEquality(t, log[2].name, "a")
	for _, d := range log {
		test.ExpectEquality(t, d.source, any(owner))
		test.ExpectEquality(t, d.ev, observable.Event(ev))
	}
}

func TestUnsubscribe(t *testing.T) {
	o := observable.New(nil)

	var log []delivery
	a, _ := o.Subscribe(&recorder{name: "a", log: &log})
	_, _ = o.Subscribe(&recorder{name: "b", log: &log})

	test.ExpectSuccess(t, o.Unsubscribe(a))
	test.ExpectFailure(t, o.Unsubscribe(a))
	test.ExpectEquality(t, o.Len(), 1)

	o.Publish(observable.StateChanged{})
	test.ExpectEquality(t, len(log), 1)
	test.ExpectEquality(t, log[0].name, "b")
}

func TestListenersAreNotShared(t *testing.T) {
	first := observable.New("first")
	second := observable.New("second")

	var log []delivery
	first.Subscribe(&recorder{name: "a", log: &log})

	second.Publish(observable.StateChanged{Running: true})
	test.ExpectEquality(t, len(log), 0)

	first.Publish(observable.StateChanged{Running: true})
	test.ExpectEquality(t, len(log), 1)
	test.ExpectEquality(t, log[0].source, any("first"))
}

func TestUnsubscribeDuringPublish(t *testing.T) {
	o := observable.New(nil)

	var log []delivery
	first, _ := o.Subscribe(&recorder{name: "first", log: &log})

	// the most recent subscriber runs first and removes the older one
	o.Subscribe(listenerFunc(func(source any, ev observable.Event) {
		o.Unsubscribe(first)
	}))

	o.Publish(observable.StateChanged{})
	test.ExpectEquality(t, len(log), 0)
	test.ExpectEquality(t, o.Len(), 1)
}

type listenerFunc func(source any, ev observable.Event)

func (f listenerFunc) OnUpdate(source any, ev observable.Event) {
	f(source, ev)
}
