package memo

import (
	"errors"
	"sync"
	"time"
)

// PostCache is an in-memory cache of published posts, tags, and pages with TTL.
type PostCache struct {
	mu      sync.RWMutex
	posts   []BlogPost
	tags    []string
	pages   map[string]Page
	fetched time.Time
	ttl     time.Duration
	store   *Store
}

// NewPostCache creates a PostCache backed by the given Store.
func NewPostCache(s *Store, ttl time.Duration) *PostCache {
	return &PostCache{store: s, ttl: ttl}
}

func (c *PostCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.tags = nil
	c.pages = nil
	c.mu.Unlock()
}

func (c *PostCache) load() error {
	if c.valid() {
		return nil
	}
	posts, err := c.store.ListPosts("")
	if err != nil {
		return err
	}
	if posts == nil {
		posts = []BlogPost{}
	}
	c.posts = posts
	c.tags = collectTags(posts)
	c.pages = make(map[string]Page)
	c.fetched = time.Now()
	return nil
}

// ensureLoaded returns cached posts and tags after ensuring the cache is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *PostCache) ensureLoaded() ([]BlogPost, []string, error) {
	c.mu.RLock()
	if c.valid() {
		posts, tags := c.posts, c.tags
		c.mu.RUnlock()
		return posts, tags, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, nil, err
	}
	return c.posts, c.tags, nil
}

// ListPosts returns published posts, optionally filtered by tag.
func (c *PostCache) ListPosts(tag string) ([]BlogPost, error) {
	posts, _, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	if tag == "" {
		return posts, nil
	}
	normalized := normalizeTag(tag)
	var filtered []BlogPost
	for _, p := range posts {
		if hasTag(p, normalized) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// ListTags returns all unique tags from published posts.
func (c *PostCache) ListTags() ([]string, error) {
	_, tags, err := c.ensureLoaded()
	return tags, err
}

// GetPost returns a single published post by slug from the cache.
func (c *PostCache) GetPost(slug string) (BlogPost, error) {
	posts, _, err := c.ensureLoaded()
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

// GetPage returns a page, reading it from the store on first use. Missing
// pages are not cached.
func (c *PostCache) GetPage(name string) (Page, error) {
	if _, _, err := c.ensureLoaded(); err != nil {
		return Page{}, err
	}
	c.mu.RLock()
	p, ok := c.pages[name]
	c.mu.RUnlock()
	if ok {
		return p, nil
	}

	p, err := c.store.GetPage(name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Page{}, ErrNotFound
		}
		return Page{}, err
	}
	c.mu.Lock()
	if c.pages != nil {
		c.pages[name] = p
	}
	c.mu.Unlock()
	return p, nil
}
