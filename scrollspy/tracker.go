package scrollspy

import (
	"slices"
	"sync"
)

// Tracker reports the active heading of a page.
//
// One observer exists per (ids, options) pair while mounted; it is always
// disconnected before a replacement is created and on Unmount.
type Tracker struct {
	host Host

	mu       sync.Mutex
	ids      []string
	opts     Options
	mounted  bool
	observer Observer
	observed []string
	gen      uint64
	activeID string
	hasID    bool

	listeners map[uint64]func(activeID string)
	nextSub   uint64
}

// New returns an unmounted Tracker bound to host.
func New(host Host) *Tracker {
	return &Tracker{host: host, listeners: make(map[uint64]func(string))}
}

// Mount starts observing ids with opts. Calling Mount on a mounted tracker
// behaves like Update.
func (t *Tracker) Mount(ids []string, opts Options) {
	t.mu.Lock()
	if t.mounted {
		t.mu.Unlock()
		t.Update(ids, opts)
		return
	}
	t.ids = slices.Clone(ids)
	t.opts = opts.clone()
	t.mounted = true
	t.mu.Unlock()

	t.attach()
}

// Update replaces the watched ids and options. Nothing happens when both are
// equal by value to the current ones. On a change the previous observer is
// disconnected and a fresh one watches the newly resolved elements. Before
// Mount the inputs are only recorded.
func (t *Tracker) Update(ids []string, opts Options) {
	t.mu.Lock()
	if slices.Equal(t.ids, ids) && t.opts.Equal(opts) {
		t.mu.Unlock()
		return
	}
	t.ids = slices.Clone(ids)
	t.opts = opts.clone()
	mounted := t.mounted
	t.mu.Unlock()

	if mounted {
		t.attach()
	}
}

// Unmount releases the observer and discards the active heading.
// Subscribers are told with an empty id if a heading was active.
func (t *Tracker) Unmount() {
	t.mu.Lock()
	if !t.mounted {
		t.mu.Unlock()
		return
	}
	t.mounted = false
	old := t.detachLocked()
	var fns []func(string)
	if t.hasID {
		fns = t.listenersLocked()
	}
	t.activeID, t.hasID = "", false
	t.mu.Unlock()

	if old != nil {
		old.Disconnect()
	}
	for _, fn := range fns {
		fn("")
	}
}

// PageHide handles the document being hidden. A page entering the
// back/forward cache keeps its observer; any other hide unmounts.
func (t *Tracker) PageHide(persisted bool) {
	if !persisted {
		t.Unmount()
	}
}

// PageShow handles the document being shown. A page restored from the
// back/forward cache is mounted again with its last ids and options if it
// is not mounted any more.
func (t *Tracker) PageShow(persisted bool) {
	if !persisted {
		return
	}
	t.mu.Lock()
	ids, opts := slices.Clone(t.ids), t.opts.clone()
	t.mu.Unlock()
	t.Mount(ids, opts)
}

// ActiveID returns the most recently reported intersecting heading. ok is
// false until the first qualifying notification.
func (t *Tracker) ActiveID() (id string, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.activeID, t.hasID
}

// Observed returns the ids whose elements are currently watched, in the
// order they were supplied.
func (t *Tracker) Observed() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.observed)
}

// Subscribe registers fn to run whenever the active heading changes. The
// returned function removes it.
func (t *Tracker) Subscribe(fn func(activeID string)) (cancel func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nextSub++
	key := t.nextSub
	t.listeners[key] = fn
	return func() {
		t.mu.Lock()
		delete(t.listeners, key)
		t.mu.Unlock()
	}
}

// attach disconnects any current observer and subscribes to the current
// inputs.
func (t *Tracker) attach() {
	t.mu.Lock()
	old := t.detachLocked()
	t.gen++
	gen := t.gen
	ids := slices.Clone(t.ids)
	opts := t.opts.clone()
	t.mu.Unlock()

	if old != nil {
		old.Disconnect()
	}

	var targets []Element
	var resolved []string
	for _, id := range ids {
		el := t.host.ElementByID(id)
		if el == nil {
			continue
		}
		targets = append(targets, el)
		resolved = append(resolved, id)
	}

	obs := t.host.NewObserver(func(entries []Entry) {
		t.handle(gen, entries)
	}, opts)

	t.mu.Lock()
	if t.gen != gen || !t.mounted {
		// Superseded while resolving.
		t.mu.Unlock()
		obs.Disconnect()
		return
	}
	t.observer = obs
	t.observed = resolved
	t.mu.Unlock()

	for _, el := range targets {
		obs.Observe(el)
	}
}

func (t *Tracker) detachLocked() Observer {
	old := t.observer
	t.observer = nil
	t.observed = nil
	return old
}

func (t *Tracker) handle(gen uint64, entries []Entry) {
	t.mu.Lock()
	if gen != t.gen || !t.mounted {
		t.mu.Unlock()
		return
	}
	prev, prevOK := t.activeID, t.hasID
	for _, e := range entries {
		if e.IsIntersecting && e.Target != nil {
			t.activeID = e.Target.ID()
			t.hasID = true
		}
	}
	var fns []func(string)
	if t.hasID != prevOK || t.activeID != prev {
		fns = t.listenersLocked()
	}
	active := t.activeID
	t.mu.Unlock()

	for _, fn := range fns {
		fn(active)
	}
}

// listenersLocked returns the subscribers in registration order.
func (t *Tracker) listenersLocked() []func(string) {
	keys := make([]uint64, 0, len(t.listeners))
	for k := range t.listeners {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	fns := make([]func(string), 0, len(keys))
	for _, k := range keys {
		fns = append(fns, t.listeners[k])
	}
	return fns
}
