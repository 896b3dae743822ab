package scrollspytest

import (
	"slices"
	"sync"

	"github.com/wongchisum/memo/scrollspy"
)

type targetState struct {
	el           *Element
	reported     bool
	intersecting bool
	index        int
}

// Observer is a simulated IntersectionObserver that also records how it was
// used.
type Observer struct {
	page     *Page
	callback func([]scrollspy.Entry)

	// Options are the options the observer was created with.
	Options scrollspy.Options

	mu          sync.Mutex
	targets     []*targetState
	disconnects int
	deliveries  int
}

// Observe implements scrollspy.Observer. Observing the same element twice
// has no effect. The first notification for a new target is delivered on the
// next Flush.
func (o *Observer) Observe(el scrollspy.Element) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.disconnects > 0 {
		return
	}
	var sim *Element
	switch v := el.(type) {
	case *Element:
		sim = v
	default:
		sim = &Element{id: el.ID()}
	}
	for _, t := range o.targets {
		if t.el == sim {
			return
		}
	}
	o.targets = append(o.targets, &targetState{el: sim})
}

// Disconnect implements scrollspy.Observer.
func (o *Observer) Disconnect() {
	o.mu.Lock()
	o.disconnects++
	o.targets = nil
	o.mu.Unlock()
}

// Targets returns the ids being observed, in observation order.
func (o *Observer) Targets() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	ids := make([]string, len(o.targets))
	for i, t := range o.targets {
		ids[i] = t.el.id
	}
	return ids
}

// Disconnects returns how many times Disconnect was called.
func (o *Observer) Disconnects() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.disconnects
}

// Deliveries returns how many batches reached the callback.
func (o *Observer) Deliveries() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.deliveries
}

// Fire delivers a hand-built batch to the callback, bypassing geometry. It
// does nothing on a disconnected observer.
func (o *Observer) Fire(entries ...scrollspy.Entry) {
	o.deliver(slices.Clone(entries))
}

// Intersecting builds an entry for a fully visible target.
func Intersecting(id string) scrollspy.Entry {
	return scrollspy.Entry{Target: &Element{id: id}, IsIntersecting: true, IntersectionRatio: 1}
}

// Leaving builds an entry for a target that no longer intersects.
func Leaving(id string) scrollspy.Entry {
	return scrollspy.Entry{Target: &Element{id: id}}
}

func (o *Observer) disconnected() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.disconnects > 0
}

func (o *Observer) deliver(entries []scrollspy.Entry) {
	o.mu.Lock()
	if o.disconnects > 0 {
		o.mu.Unlock()
		return
	}
	o.deliveries++
	cb := o.callback
	o.mu.Unlock()
	cb(entries)
}

// pending collects entries for targets whose state changed since the last
// report. Called with page.mu held.
func (o *Observer) pending(p *Page) []scrollspy.Entry {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.disconnects > 0 {
		return nil
	}
	var entries []scrollspy.Entry
	for _, t := range o.targets {
		intersecting, ratio := p.measure(t.el, o.Options)
		idx := thresholdIndex(o.Options.Threshold, ratio)
		if t.reported && t.intersecting == intersecting && t.index == idx {
			continue
		}
		t.reported, t.intersecting, t.index = true, intersecting, idx
		entries = append(entries, scrollspy.Entry{
			Target:            t.el,
			IsIntersecting:    intersecting,
			IntersectionRatio: ratio,
		})
	}
	return entries
}
