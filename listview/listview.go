// Package listview filters and paginates an in-memory dataset for list
// pages: free-text search, a category filter with an "all" sentinel, and
// page clamping so the view never points past the last page.
package listview

import (
	"strings"
	"sync"

	"github.com/servetdekorasyon/website/internal/logging"
	"github.com/servetdekorasyon/website/pkg/interfaces"
)

// DefaultPageSize matches the blog listing layout.
const DefaultPageSize = 6

// Config wires a Controller to its item type.
type Config[T any] struct {
	// PageSize is the number of items per page; DefaultPageSize when zero.
	PageSize int
	// CategoryAll is the sentinel category that disables category
	// filtering. Selecting it shows every category.
	CategoryAll string
	// SearchText extracts the strings the free-text search matches
	// against. Nil disables search.
	SearchText func(item T) []string
	// CategoryOf extracts an item's category. Nil disables the category
	// filter.
	CategoryOf func(item T) string
	// Logger records filter and page changes. Nil means no-op.
	Logger interfaces.Logger
}

// Controller holds the current dataset, filters, and page. Safe for
// concurrent use.
type Controller[T any] struct {
	mu       sync.Mutex
	cfg      Config[T]
	items    []T
	search   string
	category string
	page     int
}

// New constructs a Controller showing page 1 of an empty dataset with no
// filters active.
func New[T any](cfg Config[T]) *Controller[T] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NoOp()
	}
	return &Controller[T]{
		cfg:      cfg,
		category: cfg.CategoryAll,
		page:     1,
	}
}

// SetItems replaces the dataset. The current page is clamped so the view
// stays valid when the dataset shrinks.
func (c *Controller[T]) SetItems(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T(nil), items...)
	c.clampPageLocked()
}

// SetSearch updates the free-text query and returns to page 1.
func (c *Controller[T]) SetSearch(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = strings.TrimSpace(query)
	c.page = 1
	c.cfg.Logger.Debug("listview.search", "query", c.search)
}

// SetCategory updates the category filter and returns to page 1.
func (c *Controller[T]) SetCategory(category string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.category = category
	c.page = 1
	c.cfg.Logger.Debug("listview.category", "category", category)
}

// SetPage moves the view, clamping into [1, TotalPages].
func (c *Controller[T]) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page = page
	c.clampPageLocked()
}

// Page returns the current 1-based page number.
func (c *Controller[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// Search returns the active free-text query.
func (c *Controller[T]) Search() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.search
}

// Category returns the active category filter.
func (c *Controller[T]) Category() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.category
}

// TotalPages returns the page count for the filtered dataset, never less
// than 1.
func (c *Controller[T]) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPagesLocked()
}

// Filtered returns every item matching the active filters.
func (c *Controller[T]) Filtered() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filteredLocked()
}

// Visible returns the current page of the filtered dataset.
func (c *Controller[T]) Visible() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := c.filteredLocked()
	start := (c.page - 1) * c.cfg.PageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + c.cfg.PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

func (c *Controller[T]) filteredLocked() []T {
	query := strings.ToLower(c.search)
	var out []T
	for _, item := range c.items {
		if !c.matchesCategoryLocked(item) {
			continue
		}
		if query != "" && !c.matchesSearchLocked(item, query) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (c *Controller[T]) matchesCategoryLocked(item T) bool {
	if c.cfg.CategoryOf == nil || c.category == "" || c.category == c.cfg.CategoryAll {
		return true
	}
	return c.cfg.CategoryOf(item) == c.category
}

func (c *Controller[T]) matchesSearchLocked(item T, query string) bool {
	if c.cfg.SearchText == nil {
		return true
	}
	for _, text := range c.cfg.SearchText(item) {
		if strings.Contains(strings.ToLower(text), query) {
			return true
		}
	}
	return false
}

func (c *Controller[T]) totalPagesLocked() int {
	count := len(c.filteredLocked())
	if count == 0 {
		return 1
	}
	return (count + c.cfg.PageSize - 1) / c.cfg.PageSize
}

func (c *Controller[T]) clampPageLocked() {
	if c.page < 1 {
		c.page = 1
	}
	if total := c.totalPagesLocked(); c.page > total {
		c.page = total
	}
}
