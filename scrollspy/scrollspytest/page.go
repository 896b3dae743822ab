// Package scrollspytest provides a simulated page for exercising
// scrollspy.Tracker without a browser. Elements have a vertical position and
// height; scrolling the viewport produces intersection notifications the way
// IntersectionObserver does.
package scrollspytest

import (
	"math"
	"slices"
	"sync"

	"github.com/wongchisum/memo/scrollspy"
)

// Element is a simulated document element.
type Element struct {
	id     string
	Top    float64
	Height float64
}

// ID implements scrollspy.Element.
func (e *Element) ID() string { return e.id }

// Page is a scrollspy.Host with a vertical viewport.
type Page struct {
	mu        sync.Mutex
	width     float64
	height    float64
	scrollY   float64
	elements  map[string]*Element
	observers []*Observer
}

// NewPage returns an empty page with the given viewport size.
func NewPage(width, height float64) *Page {
	return &Page{width: width, height: height, elements: make(map[string]*Element)}
}

// AddElement places an element with the given id at top (document
// coordinates) and returns it.
func (p *Page) AddElement(id string, top, height float64) *Element {
	p.mu.Lock()
	defer p.mu.Unlock()
	el := &Element{id: id, Top: top, Height: height}
	p.elements[id] = el
	return el
}

// RemoveElement deletes the element with the given id from the document.
// Observers already watching it keep their reference, as browsers do.
func (p *Page) RemoveElement(id string) {
	p.mu.Lock()
	delete(p.elements, id)
	p.mu.Unlock()
}

// ElementByID implements scrollspy.Host.
func (p *Page) ElementByID(id string) scrollspy.Element {
	p.mu.Lock()
	defer p.mu.Unlock()
	el, ok := p.elements[id]
	if !ok {
		return nil
	}
	return el
}

// NewObserver implements scrollspy.Host.
func (p *Page) NewObserver(callback func([]scrollspy.Entry), opts scrollspy.Options) scrollspy.Observer {
	p.mu.Lock()
	defer p.mu.Unlock()
	o := &Observer{page: p, callback: callback, Options: opts}
	p.observers = append(p.observers, o)
	return o
}

// Observers returns every observer created on the page, including
// disconnected ones, in creation order.
func (p *Page) Observers() []*Observer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.observers)
}

// Live returns the observers that have not been disconnected.
func (p *Page) Live() []*Observer {
	p.mu.Lock()
	defer p.mu.Unlock()
	var live []*Observer
	for _, o := range p.observers {
		if !o.disconnected() {
			live = append(live, o)
		}
	}
	return live
}

// ScrollTo moves the viewport top to y and delivers pending notifications.
func (p *Page) ScrollTo(y float64) {
	p.mu.Lock()
	p.scrollY = y
	p.mu.Unlock()
	p.Flush()
}

// Flush computes intersection changes for every live observer and delivers
// one batch per observer that has entries. Callbacks run on the calling
// goroutine.
func (p *Page) Flush() {
	type delivery struct {
		o       *Observer
		entries []scrollspy.Entry
	}
	p.mu.Lock()
	var batches []delivery
	for _, o := range p.observers {
		if entries := o.pending(p); len(entries) > 0 {
			batches = append(batches, delivery{o, entries})
		}
	}
	p.mu.Unlock()

	for _, b := range batches {
		b.o.deliver(b.entries)
	}
}

// measure returns intersection state for el under opts. Called with p.mu held.
func (p *Page) measure(el *Element, opts scrollspy.Options) (intersecting bool, ratio float64) {
	m, err := scrollspy.ParseRootMargin(opts.RootMargin)
	if err != nil {
		m = scrollspy.Margin{}
	}
	r := m.Resolve(p.width, p.height)
	rootTop := p.scrollY - r.Top
	rootBottom := p.scrollY + p.height + r.Bottom

	top, bottom := el.Top, el.Top+el.Height
	if el.Height <= 0 {
		if top >= rootTop && top <= rootBottom {
			return true, 1
		}
		return false, 0
	}
	overlap := math.Min(bottom, rootBottom) - math.Max(top, rootTop)
	if overlap <= 0 {
		return false, 0
	}
	return true, math.Min(1, overlap/el.Height)
}

func thresholdIndex(thresholds []float64, ratio float64) int {
	if len(thresholds) == 0 {
		thresholds = []float64{0}
	}
	n := 0
	for _, t := range thresholds {
		if ratio >= t {
			n++
		}
	}
	return n
}
