package carousel_test

import (
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/servetdekorasyon/website/carousel"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func waitForIndexChange(t *testing.T, c *carousel.Controller, from int) int {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if got := c.Index(); got != from {
			return got
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("index never advanced from %d", from)
	return 0
}

func TestManualNavigationWrapsCyclically(t *testing.T) {
	c := carousel.New(3, carousel.WithoutAutoplay())
	defer c.Close()

	if got := c.Next(); got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}
	c.Next()
	if got := c.Next(); got != 0 {
		t.Fatalf("expected wrap to 0, got %d", got)
	}
	if got := c.Previous(); got != 2 {
		t.Fatalf("expected wrap back to 2, got %d", got)
	}
}

func TestGoToIgnoresOutOfRange(t *testing.T) {
	c := carousel.New(4, carousel.WithoutAutoplay())
	defer c.Close()

	if got := c.GoTo(2); got != 2 {
		t.Fatalf("expected jump to 2, got %d", got)
	}
	if got := c.GoTo(9); got != 2 {
		t.Fatalf("expected out-of-range jump ignored, got %d", got)
	}
	if got := c.GoTo(-1); got != 2 {
		t.Fatalf("expected negative jump ignored, got %d", got)
	}
}

func TestAutoplayAdvances(t *testing.T) {
	c := carousel.New(3, carousel.WithInterval(10*time.Millisecond))
	defer c.Close()

	got := waitForIndexChange(t, c, 0)
	if got < 0 || got > 2 {
		t.Fatalf("autoplay moved out of range: %d", got)
	}
}

func TestManualNavigationDisablesAutoplay(t *testing.T) {
	c := carousel.New(3, carousel.WithInterval(10*time.Millisecond))
	defer c.Close()

	c.Next()
	if c.AutoplayEnabled() {
		t.Fatal("expected autoplay off after manual navigation")
	}

	at := c.Index()
	time.Sleep(40 * time.Millisecond)
	if got := c.Index(); got != at {
		t.Fatalf("autoplay kept running: index moved %d -> %d", at, got)
	}
}

func TestSetAutoplayRestartsAfterManualNavigation(t *testing.T) {
	c := carousel.New(3, carousel.WithInterval(10*time.Millisecond))
	defer c.Close()

	c.GoTo(1)
	c.SetAutoplay(true)
	if !c.AutoplayEnabled() {
		t.Fatal("expected autoplay re-enabled")
	}
	waitForIndexChange(t, c, 1)
}

func TestSetCountClampsIndex(t *testing.T) {
	c := carousel.New(5, carousel.WithoutAutoplay())
	defer c.Close()

	c.GoTo(4)
	c.SetCount(2)
	if got := c.Index(); got != 1 {
		t.Fatalf("expected index clamped to 1, got %d", got)
	}

	c.SetCount(0)
	if got := c.Index(); got != 0 {
		t.Fatalf("expected index reset for empty set, got %d", got)
	}
	if got := c.Next(); got != 0 {
		t.Fatalf("expected no-op navigation on empty set, got %d", got)
	}
}

func TestCloseStopsAutoplay(t *testing.T) {
	c := carousel.New(3, carousel.WithInterval(10*time.Millisecond))
	c.Close()

	at := c.Index()
	time.Sleep(30 * time.Millisecond)
	if got := c.Index(); got != at {
		t.Fatalf("carousel advanced after Close: %d -> %d", at, got)
	}
}
