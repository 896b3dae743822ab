package scrollspy_test

import (
	"slices"
	"testing"

	"github.com/wongchisum/memo/scrollspy"
	"github.com/wongchisum/memo/scrollspy/scrollspytest"
)

func newPage(ids ...string) *scrollspytest.Page {
	p := scrollspytest.NewPage(1024, 800)
	for i, id := range ids {
		p.AddElement(id, float64(i)*1000, 40)
	}
	return p
}

func onlyObserver(t *testing.T, p *scrollspytest.Page) *scrollspytest.Observer {
	t.Helper()
	live := p.Live()
	if len(live) != 1 {
		t.Fatalf("live observers = %d, want 1", len(live))
	}
	return live[0]
}

func TestActiveIDBeforeFirstCallback(t *testing.T) {
	p := newPage("a", "b")
	tr := scrollspy.New(p)
	tr.Mount([]string{"a", "b"}, scrollspy.DefaultOptions())

	if id, ok := tr.ActiveID(); ok || id != "" {
		t.Fatalf("ActiveID() = %q, %v before any callback", id, ok)
	}
}

func TestSingleIntersectingEntry(t *testing.T) {
	p := newPage("a", "b", "c")
	tr := scrollspy.New(p)
	tr.Mount([]string{"a", "b", "c"}, scrollspy.DefaultOptions())

	onlyObserver(t, p).Fire(scrollspytest.Intersecting("b"))

	if id, ok := tr.ActiveID(); !ok || id != "b" {
		t.Fatalf("ActiveID() = %q, %v, want b", id, ok)
	}
}

func TestLastIntersectingEntryWins(t *testing.T) {
	tests := []struct {
		name  string
		batch []scrollspy.Entry
		want  string
	}{
		{
			name:  "delivery order not document order",
			batch: []scrollspy.Entry{scrollspytest.Intersecting("c"), scrollspytest.Intersecting("a")},
			want:  "a",
		},
		{
			name:  "trailing non-intersecting entry ignored",
			batch: []scrollspy.Entry{scrollspytest.Intersecting("b"), scrollspytest.Leaving("c")},
			want:  "b",
		},
		{
			name: "three intersecting",
			batch: []scrollspy.Entry{
				scrollspytest.Intersecting("a"),
				scrollspytest.Intersecting("b"),
				scrollspytest.Intersecting("c"),
			},
			want: "c",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPage("a", "b", "c")
			tr := scrollspy.New(p)
			tr.Mount([]string{"a", "b", "c"}, scrollspy.DefaultOptions())

			onlyObserver(t, p).Fire(tt.batch...)

			if id, _ := tr.ActiveID(); id != tt.want {
				t.Fatalf("ActiveID() = %q, want %q", id, tt.want)
			}
		})
	}
}

func TestBatchWithoutIntersectionKeepsActive(t *testing.T) {
	p := newPage("a", "b")
	tr := scrollspy.New(p)
	tr.Mount([]string{"a", "b"}, scrollspy.DefaultOptions())
	obs := onlyObserver(t, p)

	obs.Fire(scrollspytest.Intersecting("a"))
	obs.Fire(scrollspytest.Leaving("a"), scrollspytest.Leaving("b"))

	if id, ok := tr.ActiveID(); !ok || id != "a" {
		t.Fatalf("ActiveID() = %q, %v, want a", id, ok)
	}
}

func TestChangingIDsReplacesObserver(t *testing.T) {
	p := newPage("a", "b", "c", "d")
	tr := scrollspy.New(p)
	tr.Mount([]string{"a", "b"}, scrollspy.DefaultOptions())
	old := onlyObserver(t, p)

	tr.Update([]string{"c", "d"}, scrollspy.DefaultOptions())

	if got := old.Disconnects(); got != 1 {
		t.Fatalf("old observer disconnects = %d, want 1", got)
	}
	old.Fire(scrollspytest.Intersecting("a"))
	if got := old.Deliveries(); got != 0 {
		t.Fatalf("old observer delivered %d batches after change", got)
	}
	if _, ok := tr.ActiveID(); ok {
		t.Fatalf("stale observer changed the active heading")
	}

	cur := onlyObserver(t, p)
	if cur == old {
		t.Fatalf("no new observer created")
	}
	if got := cur.Targets(); !slices.Equal(got, []string{"c", "d"}) {
		t.Fatalf("new observer targets = %v, want [c d]", got)
	}
	if got := tr.Observed(); !slices.Equal(got, []string{"c", "d"}) {
		t.Fatalf("Observed() = %v, want [c d]", got)
	}
}

func TestEqualInputsDoNotResubscribe(t *testing.T) {
	p := newPage("a", "b")
	tr := scrollspy.New(p)
	tr.Mount([]string{"a", "b"}, scrollspy.DefaultOptions())

	// Fresh slices with the same values.
	tr.Update([]string{"a", "b"}, scrollspy.Options{RootMargin: "0px 0px 0px 0px", Threshold: []float64{1}})

	if got := len(p.Observers()); got != 1 {
		t.Fatalf("observers created = %d, want 1", got)
	}
}

func TestChangingOptionsReplacesObserver(t *testing.T) {
	p := newPage("a")
	tr := scrollspy.New(p)
	tr.Mount([]string{"a"}, scrollspy.DefaultOptions())
	old := onlyObserver(t, p)

	opts := scrollspy.Options{RootMargin: "-10% 0px", Threshold: []float64{0, 0.5, 1}}
	tr.Update([]string{"a"}, opts)

	if old.Disconnects() != 1 {
		t.Fatalf("old observer not disconnected")
	}
	cur := onlyObserver(t, p)
	if !cur.Options.Equal(opts) {
		t.Fatalf("new observer options = %+v, want %+v", cur.Options, opts)
	}
}

func TestMissingElementsAreSkipped(t *testing.T) {
	p := newPage("a", "c")
	tr := scrollspy.New(p)
	tr.Mount([]string{"a", "missing", "c"}, scrollspy.DefaultOptions())

	obs := onlyObserver(t, p)
	if got := obs.Targets(); !slices.Equal(got, []string{"a", "c"}) {
		t.Fatalf("targets = %v, want [a c]", got)
	}
	obs.Fire(scrollspytest.Intersecting("c"))
	if id, _ := tr.ActiveID(); id != "c" {
		t.Fatalf("ActiveID() = %q, want c", id)
	}
}

func TestEmptyIDs(t *testing.T) {
	p := newPage()
	tr := scrollspy.New(p)
	tr.Mount(nil, scrollspy.DefaultOptions())
	p.Flush()

	if _, ok := tr.ActiveID(); ok {
		t.Fatalf("active heading reported for empty outline")
	}
	tr.Unmount()
	if got := p.Observers()[0].Disconnects(); got != 1 {
		t.Fatalf("disconnects = %d, want 1", got)
	}
}

func TestUnmountDisconnectsOnce(t *testing.T) {
	p := newPage("a", "b")
	tr := scrollspy.New(p)
	var notified []string
	tr.Subscribe(func(id string) { notified = append(notified, id) })
	tr.Mount([]string{"a", "b"}, scrollspy.DefaultOptions())
	obs := onlyObserver(t, p)
	obs.Fire(scrollspytest.Intersecting("a"))

	tr.Unmount()
	tr.Unmount()

	if got := obs.Disconnects(); got != 1 {
		t.Fatalf("disconnects = %d, want 1", got)
	}
	if !slices.Equal(notified, []string{"a", ""}) {
		t.Fatalf("notifications = %q, want [a \"\"]", notified)
	}
	if len(p.Live()) != 0 {
		t.Fatalf("observers still live after unmount")
	}
	if _, ok := tr.ActiveID(); ok {
		t.Fatalf("active heading kept after unmount")
	}
	obs.Fire(scrollspytest.Intersecting("b"))
	if _, ok := tr.ActiveID(); ok {
		t.Fatalf("callback after unmount changed state")
	}
}

func TestUnmountWithoutActiveDoesNotNotify(t *testing.T) {
	p := newPage("a")
	tr := scrollspy.New(p)
	calls := 0
	tr.Subscribe(func(string) { calls++ })
	tr.Mount([]string{"a"}, scrollspy.DefaultOptions())
	tr.Unmount()

	if calls != 0 {
		t.Fatalf("listener called %d times, want 0", calls)
	}
}

func TestPageHideIntoCacheKeepsObserver(t *testing.T) {
	p := newPage("a", "b")
	tr := scrollspy.New(p)
	tr.Mount([]string{"a", "b"}, scrollspy.DefaultOptions())
	obs := onlyObserver(t, p)
	obs.Fire(scrollspytest.Intersecting("a"))

	tr.PageHide(true)
	tr.PageShow(true)

	if got := onlyObserver(t, p); got != obs {
		t.Fatalf("observer replaced across a cached hide")
	}
	if obs.Disconnects() != 0 {
		t.Fatalf("observer disconnected on a cached hide")
	}
	obs.Fire(scrollspytest.Intersecting("b"))
	if id, _ := tr.ActiveID(); id != "b" {
		t.Fatalf("ActiveID() = %q after restore, want b", id)
	}
}

func TestPageHideUnmounts(t *testing.T) {
	p := newPage("a")
	tr := scrollspy.New(p)
	tr.Mount([]string{"a"}, scrollspy.DefaultOptions())
	obs := onlyObserver(t, p)

	tr.PageHide(false)
	if obs.Disconnects() != 1 || len(p.Live()) != 0 {
		t.Fatalf("hide did not unmount: disconnects=%d live=%d", obs.Disconnects(), len(p.Live()))
	}
	tr.PageShow(false)
	if len(p.Live()) != 0 {
		t.Fatalf("a fresh show must not remount")
	}
}

func TestPageShowRestoresUnmountedTracker(t *testing.T) {
	p := newPage("a", "b")
	tr := scrollspy.New(p)
	opts := scrollspy.Options{RootMargin: "0px 0px -50% 0px", Threshold: []float64{0, 1}}
	tr.Mount([]string{"a", "b"}, opts)
	tr.Unmount()

	tr.PageShow(true)

	obs := onlyObserver(t, p)
	if got := obs.Targets(); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("targets = %v, want [a b]", got)
	}
	if !obs.Options.Equal(opts) {
		t.Fatalf("options = %+v, want %+v", obs.Options, opts)
	}
	tr.PageShow(true)
	if len(p.Observers()) != 2 {
		t.Fatalf("second show resubscribed: %d observers", len(p.Observers()))
	}
}

func TestUpdateBeforeMountOnlyRecords(t *testing.T) {
	p := newPage("a", "b")
	tr := scrollspy.New(p)
	tr.Update([]string{"b"}, scrollspy.DefaultOptions())

	if got := len(p.Observers()); got != 0 {
		t.Fatalf("observers before mount = %d, want 0", got)
	}
	tr.Mount([]string{"a"}, scrollspy.DefaultOptions())
	if got := onlyObserver(t, p).Targets(); !slices.Equal(got, []string{"a"}) {
		t.Fatalf("targets = %v, want [a]", got)
	}
}

func TestRemountAfterUnmount(t *testing.T) {
	p := newPage("a", "b")
	tr := scrollspy.New(p)
	tr.Mount([]string{"a"}, scrollspy.DefaultOptions())
	tr.Unmount()
	tr.Mount([]string{"b"}, scrollspy.DefaultOptions())

	obs := onlyObserver(t, p)
	if got := obs.Targets(); !slices.Equal(got, []string{"b"}) {
		t.Fatalf("targets = %v, want [b]", got)
	}
	obs.Fire(scrollspytest.Intersecting("b"))
	if id, _ := tr.ActiveID(); id != "b" {
		t.Fatalf("ActiveID() = %q, want b", id)
	}
}

func TestSubscribeNotifiesOnChange(t *testing.T) {
	p := newPage("a", "b")
	tr := scrollspy.New(p)
	var got []string
	cancel := tr.Subscribe(func(id string) { got = append(got, id) })
	tr.Mount([]string{"a", "b"}, scrollspy.DefaultOptions())
	obs := onlyObserver(t, p)

	obs.Fire(scrollspytest.Intersecting("a"), scrollspytest.Intersecting("b"))
	obs.Fire(scrollspytest.Intersecting("b"))
	obs.Fire(scrollspytest.Intersecting("a"))
	cancel()
	obs.Fire(scrollspytest.Intersecting("b"))

	if !slices.Equal(got, []string{"b", "a"}) {
		t.Fatalf("notifications = %v, want [b a]", got)
	}
}

func TestScrollingThroughDocument(t *testing.T) {
	p := scrollspytest.NewPage(1024, 800)
	p.AddElement("intro", 0, 40)
	p.AddElement("usage", 1000, 40)
	p.AddElement("faq", 2000, 40)

	tr := scrollspy.New(p)
	tr.Mount([]string{"intro", "usage", "faq"}, scrollspy.Options{RootMargin: "0px", Threshold: []float64{1}})

	p.ScrollTo(600)
	if id, _ := tr.ActiveID(); id != "usage" {
		t.Fatalf("after scrolling to usage, ActiveID() = %q", id)
	}

	p.ScrollTo(1600)
	if id, _ := tr.ActiveID(); id != "faq" {
		t.Fatalf("after scrolling to faq, ActiveID() = %q", id)
	}

	// Small scrolls that keep faq in view produce no new transitions.
	p.ScrollTo(1610)
	p.ScrollTo(1620)
	if id, _ := tr.ActiveID(); id != "faq" {
		t.Fatalf("usage reverted without a new event: ActiveID() = %q", id)
	}
}

func TestRootMarginShrinksViewport(t *testing.T) {
	p := scrollspytest.NewPage(1024, 800)
	p.AddElement("a", 0, 40)
	p.AddElement("b", 700, 40)

	tr := scrollspy.New(p)
	// Ignore the bottom half of the viewport.
	tr.Mount([]string{"a", "b"}, scrollspy.Options{RootMargin: "0px 0px -50% 0px", Threshold: []float64{1}})
	p.Flush()

	if id, _ := tr.ActiveID(); id != "a" {
		t.Fatalf("ActiveID() = %q, want a", id)
	}
}

func TestItems(t *testing.T) {
	headings := []scrollspy.Heading{
		{ID: "intro", Text: "Intro", Level: 2},
		{ID: "setup", Text: "Setup", Level: 3},
		{ID: "deep", Text: "Deep", Level: 4},
		{ID: "faq", Text: "FAQ", Level: 2},
	}
	items := scrollspy.Items(headings, "setup")

	wantIndent := []int{0, 1, 2, 0}
	active := 0
	for i, it := range items {
		if it.Indent != wantIndent[i] {
			t.Errorf("items[%d].Indent = %d, want %d", i, it.Indent, wantIndent[i])
		}
		if it.Active {
			active++
			if it.ID != "setup" {
				t.Errorf("active item = %q, want setup", it.ID)
			}
		}
	}
	if active != 1 {
		t.Fatalf("active items = %d, want 1", active)
	}

	for _, it := range scrollspy.Items(headings, "") {
		if it.Active {
			t.Fatalf("item %q active with no active id", it.ID)
		}
	}
}

func TestIDs(t *testing.T) {
	got := scrollspy.IDs([]scrollspy.Heading{{ID: "x"}, {ID: "y"}})
	if !slices.Equal(got, []string{"x", "y"}) {
		t.Fatalf("IDs() = %v", got)
	}
}
