//go:build js && wasm

// Command tocspy highlights the table-of-contents entry for the section
// being read. Build with GOOS=js GOARCH=wasm and load through tocspy.js.
//
// It looks for the markup rendered by views.TableOfContents:
//
//	<nav data-toc data-root-margin="0px" data-threshold="1" data-active-class="toc-active">
//	  <li data-toc-id="intro">...</li>
//	</nav>
package main

import (
	"syscall/js"

	"github.com/wongchisum/memo/scrollspy"
	"github.com/wongchisum/memo/scrollspy/jsdom"
)

func main() {
	doc := js.Global().Get("document")
	nav := doc.Call("querySelector", "nav[data-toc]")
	if nav.IsNull() {
		return
	}

	items := map[string]js.Value{}
	var ids []string
	nodes := nav.Call("querySelectorAll", "li[data-toc-id]")
	for i := 0; i < nodes.Length(); i++ {
		li := nodes.Index(i)
		id := li.Get("dataset").Get("tocId").String()
		items[id] = li
		ids = append(ids, id)
	}

	activeClass := dataString(nav, "activeClass", "toc-active")
	opts := scrollspy.Options{
		RootMargin: dataString(nav, "rootMargin", scrollspy.DefaultOptions().RootMargin),
		Threshold:  scrollspy.ParseThresholds(dataString(nav, "threshold", "1")),
	}

	tracker := scrollspy.New(jsdom.New())
	var current string
	tracker.Subscribe(func(id string) {
		if prev, ok := items[current]; ok {
			prev.Get("classList").Call("remove", activeClass)
			prev.Call("removeAttribute", "aria-current")
		}
		current = id
		if li, ok := items[id]; ok {
			li.Get("classList").Call("add", activeClass)
			li.Call("setAttribute", "aria-current", "location")
		}
	})
	tracker.Mount(ids, opts)

	// A page kept in the back/forward cache resumes where it was.
	js.Global().Call("addEventListener", "pagehide", js.FuncOf(func(_ js.Value, args []js.Value) any {
		tracker.PageHide(persisted(args))
		return nil
	}))
	js.Global().Call("addEventListener", "pageshow", js.FuncOf(func(_ js.Value, args []js.Value) any {
		tracker.PageShow(persisted(args))
		return nil
	}))

	select {}
}

func dataString(el js.Value, key, fallback string) string {
	v := el.Get("dataset").Get(key)
	if v.IsUndefined() || v.IsNull() || v.String() == "" {
		return fallback
	}
	return v.String()
}

func persisted(args []js.Value) bool {
	if len(args) == 0 {
		return false
	}
	v := args[0].Get("persisted")
	return v.Type() == js.TypeBoolean && v.Bool()
}
