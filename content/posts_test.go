package content_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/servetdekorasyon/website/content"
	"github.com/servetdekorasyon/website/gateway"
)

func fixedNow() time.Time {
	return time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
}

func newPostFixture(t *testing.T) (*content.PostService, *gateway.Memory) {
	t.Helper()
	gw := gateway.NewMemory()
	svc := content.NewPostService(gw, content.WithPostClock(fixedNow))
	return svc, gw
}

func seedPosts(t *testing.T, gw *gateway.Memory) {
	t.Helper()
	gw.Seed(content.CollectionPosts, []gateway.Record{
		{Fields: map[string]any{
			"title":      "Eski Yazı",
			"content":    "<p>eski</p>",
			"excerpt":    "eski",
			"category":   "Tadilat",
			"author":     "Servet Usta",
			"slug":       "eski-yazi",
			"published":  true,
			"created_at": "2025-01-01T10:00:00Z",
		}},
		{Fields: map[string]any{
			"title":      "Yeni Yazı",
			"content":    "<p>yeni</p><script>alert(1)</script>",
			"excerpt":    "yeni",
			"category":   "Dekorasyon",
			"author":     "Servet Usta",
			"slug":       "yeni-yazi",
			"published":  true,
			"created_at": "2025-02-01T10:00:00Z",
		}},
	})
}

func TestPostServiceListOrdersNewestFirst(t *testing.T) {
	svc, gw := newPostFixture(t)
	seedPosts(t, gw)

	posts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].Slug != "yeni-yazi" {
		t.Fatalf("expected newest first, got %q", posts[0].Slug)
	}
	if strings.Contains(posts[0].Content, "<script>") {
		t.Fatalf("expected sanitized content, got %q", posts[0].Content)
	}
}

func TestPostServiceListFallsBackWhenEmpty(t *testing.T) {
	svc, _ := newPostFixture(t)

	posts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(posts) != 6 {
		t.Fatalf("expected 6 demo posts, got %d", len(posts))
	}
	if posts[0].Slug != "modern-banyo-dekorasyon-trendleri-2024" {
		t.Fatalf("unexpected first demo post: %q", posts[0].Slug)
	}
	for i := 1; i < len(posts); i++ {
		if posts[i].CreatedAt.After(posts[i-1].CreatedAt) {
			t.Fatalf("demo posts out of order at %d", i)
		}
	}
}

func TestPostServiceListFallsBackOnBackendFailure(t *testing.T) {
	svc, gw := newPostFixture(t)
	seedPosts(t, gw)
	gw.FailNextWith(&gateway.NetworkError{Op: "fetch", Collection: content.CollectionPosts, Err: errors.New("dial timeout")})

	posts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(posts) != 6 {
		t.Fatalf("expected demo posts on failure, got %d", len(posts))
	}
}

func TestPostServicePreviewLimitsResults(t *testing.T) {
	svc, _ := newPostFixture(t)

	posts, err := svc.Preview(context.Background(), 3)
	if err != nil {
		t.Fatalf("preview posts: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 preview posts, got %d", len(posts))
	}
}

func TestPostServiceGetBySlug(t *testing.T) {
	svc, gw := newPostFixture(t)
	seedPosts(t, gw)

	post, err := svc.GetBySlug(context.Background(), "yeni-yazi")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if post.Title != "Yeni Yazı" {
		t.Fatalf("unexpected post: %q", post.Title)
	}
}

func TestPostServiceGetBySlugFallsBackToDemoPost(t *testing.T) {
	svc, _ := newPostFixture(t)

	post, err := svc.GetBySlug(context.Background(), "sihhi-tesisat-bakim-ipuclari")
	if err != nil {
		t.Fatalf("get demo post: %v", err)
	}
	if post.Category != "Bakım" {
		t.Fatalf("unexpected demo post category: %q", post.Category)
	}

	if _, err := svc.GetBySlug(context.Background(), "boyle-bir-yazi-yok"); !errors.Is(err, content.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostServiceCreateDerivesSlug(t *testing.T) {
	svc, _ := newPostFixture(t)

	post, err := svc.Create(context.Background(), content.CreatePostRequest{
		Title:    "Bathroom Renovation Tips",
		Content:  "<p>tips</p>",
		Excerpt:  "tips",
		Category: "Tadilat",
		Author:   "Servet Usta",
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if post.Slug != "bathroom-renovation-tips" {
		t.Fatalf("unexpected derived slug: %q", post.Slug)
	}
	if post.ID == "" {
		t.Fatal("expected assigned id")
	}
}

func TestPostServiceCreateRejectsDuplicateSlug(t *testing.T) {
	svc, gw := newPostFixture(t)
	seedPosts(t, gw)

	_, err := svc.Create(context.Background(), content.CreatePostRequest{
		Title:    "Başka Başlık",
		Content:  "<p>x</p>",
		Category: "Tadilat",
		Slug:     "yeni-yazi",
	})
	if !errors.Is(err, content.ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists, got %v", err)
	}
}

func TestPostServiceCreateValidation(t *testing.T) {
	svc, _ := newPostFixture(t)

	if _, err := svc.Create(context.Background(), content.CreatePostRequest{Title: "  "}); !errors.Is(err, content.ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}

	_, err := svc.Create(context.Background(), content.CreatePostRequest{
		Title:    "Valid Title",
		Content:  "<p>x</p>",
		Category: "Tadilat",
		Slug:     "Not A Slug",
	})
	if !errors.Is(err, content.ErrSlugInvalid) {
		t.Fatalf("expected ErrSlugInvalid, got %v", err)
	}
}

func TestPostServiceUpdateAndDelete(t *testing.T) {
	svc, gw := newPostFixture(t)
	seedPosts(t, gw)

	posts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	id := posts[0].ID

	title := "Güncellenmiş Başlık"
	if err := svc.Update(context.Background(), content.UpdatePostRequest{ID: id, Title: &title}); err != nil {
		t.Fatalf("update post: %v", err)
	}

	record, err := gw.ResolveOne(context.Background(), content.CollectionPosts, "id", id)
	if err != nil {
		t.Fatalf("resolve updated post: %v", err)
	}
	if record.String("title") != title {
		t.Fatalf("expected updated title, got %q", record.String("title"))
	}

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("delete post: %v", err)
	}
	if _, err := gw.ResolveOne(context.Background(), content.CollectionPosts, "id", id); !gateway.IsNotFound(err) {
		t.Fatalf("expected deleted post, got %v", err)
	}
}
