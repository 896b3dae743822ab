package memo

import (
	"bytes"
	"image"
	"image/jpeg"
	"testing"

	glog "github.com/labstack/gommon/log"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Hello World", "hello-world"},
		{"  Go 1.24 -- notes ", "go-1-24-notes"},
		{"already-slugged", "already-slugged"},
		{"中文标题", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"https://example.com", nil, "https://example.com"},
		{"https://example.com/", []string{"blog", "a"}, "https://example.com/blog/a/"},
		{"https://example.com/root", []string{"feed.xml/"}, "https://example.com/root/feed.xml/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.want)
		}
	}
}

func TestFilterRelatedPosts(t *testing.T) {
	current := BlogPost{Slug: "a", Tags: []string{"Go", "web"}}
	posts := []BlogPost{
		current,
		{Slug: "b", Tags: []string{"go"}},
		{Slug: "c", Tags: []string{"life"}},
		{Slug: "d", Tags: []string{" WEB "}},
		{Slug: "e", Tags: []string{"go", "web"}},
	}
	if got := slugs(FilterRelatedPosts(current, posts, 0)); !equalStrings(got, []string{"b", "d", "e"}) {
		t.Errorf("unlimited = %v", got)
	}
	if got := slugs(FilterRelatedPosts(current, posts, 2)); !equalStrings(got, []string{"b", "d"}) {
		t.Errorf("limit 2 = %v", got)
	}
	if got := FilterRelatedPosts(BlogPost{Slug: "x"}, posts, 3); len(got) != 0 {
		t.Errorf("untagged post has related %v", got)
	}
}

func TestSafeRedirect(t *testing.T) {
	tests := map[string]string{
		"/about/":             "/about/",
		"/blog/a/?x=1":        "/blog/a/?x=1",
		"":                    "/",
		"about":               "/",
		"//evil.example":      "/",
		`/\evil.example`:      "/",
		"https://example.com": "/",
	}
	for in, want := range tests {
		if got := safeRedirect(in); got != want {
			t.Errorf("safeRedirect(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    glog.Lvl
		wantErr bool
	}{
		{"", glog.INFO, false},
		{"DEBUG", glog.DEBUG, false},
		{" warn ", glog.WARN, false},
		{"error", glog.ERROR, false},
		{"off", glog.OFF, false},
		{"verbose", glog.INFO, true},
	}
	for _, tt := range tests {
		got, err := parseLogLevel(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestResizeImageEncodesJPEG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 300))
	var src bytes.Buffer
	if err := jpeg.Encode(&src, img, nil); err != nil {
		t.Fatal(err)
	}
	data, contentType, err := resizeImage(&src, 128)
	if err != nil {
		t.Fatalf("resizeImage failed: %v", err)
	}
	if contentType != "image/jpeg" {
		t.Errorf("contentType = %q", contentType)
	}
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 128 || cfg.Height != 96 {
		t.Errorf("size = %dx%d, want 128x96", cfg.Width, cfg.Height)
	}
}

func TestResizeImageRejectsGarbage(t *testing.T) {
	if _, _, err := resizeImage(bytes.NewReader([]byte("not an image")), 64); err == nil {
		t.Fatal("expected decode error")
	}
}
