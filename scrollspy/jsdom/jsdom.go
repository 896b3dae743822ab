//go:build js && wasm

// Package jsdom runs scrollspy against the browser DOM through syscall/js,
// backed by document.getElementById and IntersectionObserver.
package jsdom

import (
	"syscall/js"

	"github.com/wongchisum/memo/scrollspy"
)

// Element wraps a DOM element.
type Element struct {
	Value js.Value
}

// ID implements scrollspy.Element.
func (e Element) ID() string {
	return e.Value.Get("id").String()
}

// Host is a scrollspy.Host over a DOM document.
type Host struct {
	doc js.Value
}

// New returns a Host for the global document.
func New() *Host {
	return &Host{doc: js.Global().Get("document")}
}

// ElementByID implements scrollspy.Host.
func (h *Host) ElementByID(id string) scrollspy.Element {
	v := h.doc.Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return Element{Value: v}
}

// NewObserver implements scrollspy.Host. If the browser rejects the options
// the returned observer does nothing.
func (h *Host) NewObserver(callback func([]scrollspy.Entry), opts scrollspy.Options) (o scrollspy.Observer) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		list := args[0]
		n := list.Length()
		entries := make([]scrollspy.Entry, 0, n)
		for i := 0; i < n; i++ {
			e := list.Index(i)
			entries = append(entries, scrollspy.Entry{
				Target:            Element{Value: e.Get("target")},
				IsIntersecting:    e.Get("isIntersecting").Bool(),
				IntersectionRatio: e.Get("intersectionRatio").Float(),
			})
		}
		callback(entries)
		return nil
	})

	defer func() {
		// IntersectionObserver throws a SyntaxError on a malformed rootMargin.
		if r := recover(); r != nil {
			fn.Release()
			o = nopObserver{}
		}
	}()

	thresholds := make([]any, len(opts.Threshold))
	for i, t := range opts.Threshold {
		thresholds[i] = t
	}
	init := map[string]any{"rootMargin": opts.RootMargin}
	if len(thresholds) > 0 {
		init["threshold"] = thresholds
	}
	obs := js.Global().Get("IntersectionObserver").New(fn, init)
	return &observer{obs: obs, fn: fn}
}

type observer struct {
	obs  js.Value
	fn   js.Func
	done bool
}

func (o *observer) Observe(el scrollspy.Element) {
	if o.done {
		return
	}
	if e, ok := el.(Element); ok {
		o.obs.Call("observe", e.Value)
	}
}

func (o *observer) Disconnect() {
	if o.done {
		return
	}
	o.done = true
	o.obs.Call("disconnect")
	o.fn.Release()
}

type nopObserver struct{}

func (nopObserver) Observe(scrollspy.Element) {}
func (nopObserver) Disconnect()               {}
