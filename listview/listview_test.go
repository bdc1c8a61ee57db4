package listview_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/servetdekorasyon/website/content"
	"github.com/servetdekorasyon/website/listview"
	"github.com/servetdekorasyon/website/pkg/interfaces"
)

func newBlogController() *listview.Controller[content.Post] {
	return listview.New(listview.Config[content.Post]{
		PageSize:    listview.DefaultPageSize,
		CategoryAll: content.CategoryAll,
		SearchText: func(p content.Post) []string {
			return []string{p.Title, p.Excerpt}
		},
		CategoryOf: func(p content.Post) string {
			return p.Category
		},
	})
}

func makePosts(n int) []content.Post {
	posts := make([]content.Post, 0, n)
	categories := []string{"Dekorasyon", "Tadilat", "Bakım"}
	for i := 0; i < n; i++ {
		posts = append(posts, content.Post{
			ID:       fmt.Sprintf("post-%d", i),
			Title:    fmt.Sprintf("Yazı %d", i),
			Excerpt:  fmt.Sprintf("özet %d", i),
			Category: categories[i%len(categories)],
		})
	}
	return posts
}

func TestPaginationSplitsPages(t *testing.T) {
	c := newBlogController()
	c.SetItems(makePosts(7))

	if got := c.TotalPages(); got != 2 {
		t.Fatalf("expected 2 pages for 7 items, got %d", got)
	}
	if got := len(c.Visible()); got != 6 {
		t.Fatalf("expected 6 items on page 1, got %d", got)
	}

	c.SetPage(2)
	if got := len(c.Visible()); got != 1 {
		t.Fatalf("expected 1 item on page 2, got %d", got)
	}
}

func TestSetPageClampsOutOfRange(t *testing.T) {
	c := newBlogController()
	c.SetItems(makePosts(7))

	c.SetPage(99)
	if got := c.Page(); got != 2 {
		t.Fatalf("expected clamp to last page, got %d", got)
	}
	c.SetPage(-3)
	if got := c.Page(); got != 1 {
		t.Fatalf("expected clamp to first page, got %d", got)
	}
}

func TestShrinkingDatasetClampsPage(t *testing.T) {
	c := newBlogController()
	c.SetItems(makePosts(13))
	c.SetPage(3)

	c.SetItems(makePosts(4))
	if got := c.Page(); got != 1 {
		t.Fatalf("expected page clamped to 1, got %d", got)
	}
	if got := len(c.Visible()); got != 4 {
		t.Fatalf("expected all 4 items visible, got %d", got)
	}
}

func TestCategoryFilterResetsToFirstPage(t *testing.T) {
	c := newBlogController()
	c.SetItems(makePosts(13))
	c.SetPage(2)

	c.SetCategory("Tadilat")
	if got := c.Page(); got != 1 {
		t.Fatalf("expected page reset on filter change, got %d", got)
	}
	for _, post := range c.Filtered() {
		if post.Category != "Tadilat" {
			t.Fatalf("category filter leaked %q", post.Category)
		}
	}

	c.SetCategory(content.CategoryAll)
	if got := len(c.Filtered()); got != 13 {
		t.Fatalf("expected sentinel to disable filtering, got %d items", got)
	}
}

func TestSearchIsCaseInsensitiveAndIdempotent(t *testing.T) {
	c := newBlogController()
	c.SetItems([]content.Post{
		{ID: "a", Title: "Modern Banyo Trendleri", Excerpt: "banyo"},
		{ID: "b", Title: "Mutfak Dolapları", Excerpt: "mutfak"},
	})

	c.SetSearch("BANYO")
	first := c.Filtered()
	if len(first) != 1 || first[0].ID != "a" {
		t.Fatalf("unexpected search result: %+v", first)
	}

	c.SetSearch("BANYO")
	if diff := cmp.Diff(first, c.Filtered()); diff != "" {
		t.Fatalf("filter not idempotent (-first +second):\n%s", diff)
	}
}

func TestSearchAndCategoryCompose(t *testing.T) {
	c := newBlogController()
	c.SetItems([]content.Post{
		{ID: "a", Title: "Banyo Tadilatı", Category: "Tadilat"},
		{ID: "b", Title: "Banyo Dekorasyonu", Category: "Dekorasyon"},
		{ID: "c", Title: "Mutfak Tadilatı", Category: "Tadilat"},
	})

	c.SetCategory("Tadilat")
	c.SetSearch("banyo")

	filtered := c.Filtered()
	if len(filtered) != 1 || filtered[0].ID != "a" {
		t.Fatalf("expected composed filters to match one item, got %+v", filtered)
	}
}

func TestEmptyResultStillReportsOnePage(t *testing.T) {
	c := newBlogController()
	c.SetItems(makePosts(5))
	c.SetSearch("boyle-bir-sey-yok")

	if got := c.TotalPages(); got != 1 {
		t.Fatalf("expected 1 page for empty result, got %d", got)
	}
	if got := c.Visible(); got != nil {
		t.Fatalf("expected no visible items, got %+v", got)
	}
}

type countingLogger struct {
	debugCalls int
}

func (l *countingLogger) Trace(string, ...any)                          {}
func (l *countingLogger) Debug(string, ...any)                          { l.debugCalls++ }
func (l *countingLogger) Info(string, ...any)                           {}
func (l *countingLogger) Warn(string, ...any)                           {}
func (l *countingLogger) Error(string, ...any)                          {}
func (l *countingLogger) Fatal(string, ...any)                          {}
func (l *countingLogger) WithContext(context.Context) interfaces.Logger { return l }

func TestFilterChangesAreLogged(t *testing.T) {
	logger := &countingLogger{}
	c := listview.New(listview.Config[content.Post]{
		CategoryAll: content.CategoryAll,
		Logger:      logger,
	})

	c.SetSearch("banyo")
	c.SetCategory("Tadilat")

	if logger.debugCalls != 2 {
		t.Fatalf("expected 2 debug entries, got %d", logger.debugCalls)
	}
}
