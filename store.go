package memo

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/wongchisum/memo/markdown"
)

// ErrNotFound is returned when a requested post or page does not exist.
var ErrNotFound = errors.New("memo: not found")

const (
	postsDir = "posts"
	pagesDir = "pages"
)

// Store reads posts and pages from a content filesystem:
//
//	posts/<slug>.md   front matter: title, date, tags, summary, slug, draft
//	pages/<name>.md   front matter: title
//
// Every read goes to the filesystem; use PostCache in front of it.
type Store struct {
	fsys fs.FS
}

// NewStore returns a Store over fsys.
func NewStore(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// ListPosts returns all published posts ordered by date descending.
// If tag is non-empty, results are filtered to posts containing that tag.
func (s *Store) ListPosts(tag string) ([]BlogPost, error) {
	files, err := fs.Glob(s.fsys, postsDir+"/*.md")
	if err != nil {
		return nil, err
	}
	normalized := normalizeTag(tag)
	var posts []BlogPost
	for _, name := range files {
		p, err := s.readPost(name)
		if err != nil {
			return nil, err
		}
		if p.Draft {
			continue
		}
		if normalized != "" && !hasTag(p, normalized) {
			continue
		}
		posts = append(posts, p)
	}
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].Date != posts[j].Date {
			return posts[i].Date > posts[j].Date
		}
		return posts[i].Slug < posts[j].Slug
	})
	return posts, nil
}

// ListTags returns a sorted, deduplicated slice of all tags from published posts.
func (s *Store) ListTags() ([]string, error) {
	posts, err := s.ListPosts("")
	if err != nil {
		return nil, err
	}
	return collectTags(posts), nil
}

// GetPost returns a single published post by slug.
func (s *Store) GetPost(slug string) (BlogPost, error) {
	posts, err := s.ListPosts("")
	if err != nil {
		return BlogPost{}, err
	}
	for _, p := range posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return BlogPost{}, ErrNotFound
}

// GetPage returns the page stored at pages/<name>.md.
func (s *Store) GetPage(name string) (Page, error) {
	if name == "" || strings.ContainsAny(name, "/\\") {
		return Page{}, ErrNotFound
	}
	src, err := fs.ReadFile(s.fsys, path.Join(pagesDir, name+".md"))
	if errors.Is(err, fs.ErrNotExist) {
		return Page{}, ErrNotFound
	}
	if err != nil {
		return Page{}, fmt.Errorf("memo: read page %s: %w", name, err)
	}
	doc, err := markdown.Render(src)
	if err != nil {
		return Page{}, fmt.Errorf("memo: page %s: %w", name, err)
	}
	return Page{
		Name:     name,
		Title:    metaString(doc.Meta, "title"),
		HTML:     doc.HTML,
		Headings: doc.Headings,
	}, nil
}

func (s *Store) readPost(name string) (BlogPost, error) {
	src, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return BlogPost{}, fmt.Errorf("memo: read post %s: %w", name, err)
	}
	doc, err := markdown.Render(src)
	if err != nil {
		return BlogPost{}, fmt.Errorf("memo: post %s: %w", name, err)
	}
	slug := metaString(doc.Meta, "slug")
	if slug == "" {
		base := strings.TrimSuffix(path.Base(name), ".md")
		if slug = Slugify(base); slug == "" {
			slug = base
		}
	}
	title := metaString(doc.Meta, "title")
	if title == "" {
		title = slug
	}
	draft, _ := doc.Meta["draft"].(bool)
	return BlogPost{
		Slug:     slug,
		Title:    title,
		Date:     metaString(doc.Meta, "date"),
		Tags:     metaTags(doc.Meta["tags"]),
		Summary:  metaString(doc.Meta, "summary"),
		Content:  stripFrontMatter(string(src)),
		HTML:     doc.HTML,
		Headings: doc.Headings,
		Link:     "/blog/" + slug,
		Draft:    draft,
	}, nil
}

func metaString(m map[string]interface{}, key string) string {
	switch v := m[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case time.Time:
		return v.Format("2006-01-02")
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// metaTags accepts either a YAML list or a comma-separated string.
func metaTags(v interface{}) []string {
	var raw []string
	switch t := v.(type) {
	case []interface{}:
		for _, x := range t {
			raw = append(raw, fmt.Sprint(x))
		}
	case string:
		raw = ParseTags(t)
	}
	var tags []string
	for _, t := range FilterEmpty(raw) {
		tags = append(tags, strings.ToLower(t))
	}
	return tags
}

func stripFrontMatter(src string) string {
	if !strings.HasPrefix(src, "---") {
		return src
	}
	rest := src[3:]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return src
	}
	body := rest[end+4:]
	return strings.TrimLeft(body, "\r\n")
}

func hasTag(p BlogPost, normalized string) bool {
	for _, t := range p.Tags {
		if normalizeTag(t) == normalized {
			return true
		}
	}
	return false
}

func collectTags(posts []BlogPost) []string {
	set := make(map[string]struct{})
	for _, p := range posts {
		for _, t := range p.Tags {
			set[normalizeTag(t)] = struct{}{}
		}
	}
	var result []string
	for t := range set {
		result = append(result, t)
	}
	sort.Strings(result)
	return result
}

// ParseTags splits a comma-delimited tag string (e.g. "go, web") into a slice.
func ParseTags(tagString string) []string {
	tagString = strings.Trim(tagString, ",")
	if tagString == "" {
		return nil
	}
	parts := strings.Split(tagString, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}
