package schema_test

import (
	"errors"
	"testing"

	"github.com/servetdekorasyon/website/internal/schema"
)

func TestValidatePayloadAcceptsCompletePost(t *testing.T) {
	err := schema.ValidatePayload("posts", map[string]any{
		"title":     "Modern Banyo Trendleri",
		"content":   "<p>İçerik</p>",
		"excerpt":   "Kısa özet",
		"category":  "Dekorasyon",
		"author":    "Servet Dekorasyon",
		"slug":      "modern-banyo-trendleri",
		"published": true,
	})
	if err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
}

func TestValidatePayloadRejectsBadSlug(t *testing.T) {
	err := schema.ValidatePayload("posts", map[string]any{
		"title":    "Başlık",
		"content":  "x",
		"excerpt":  "",
		"category": "Tadilat",
		"author":   "a",
		"slug":     "Büyük Harfli Slug",
	})
	if !errors.Is(err, schema.ErrPayloadInvalid) {
		t.Fatalf("expected payload error, got %v", err)
	}
}

func TestValidatePayloadRejectsUnknownIcon(t *testing.T) {
	err := schema.ValidatePayload("services", map[string]any{
		"title":       "Tadilat",
		"description": "Komple tadilat",
		"icon":        "Rocket",
		"order_index": 1,
	})
	if !errors.Is(err, schema.ErrPayloadInvalid) {
		t.Fatalf("expected enum rejection, got %v", err)
	}
}

func TestValidatePayloadAcceptsGoIntegers(t *testing.T) {
	err := schema.ValidatePayload("partners", map[string]any{
		"name":        "Vitra",
		"logo_url":    "https://example.com/vitra.png",
		"order_index": 3,
		"active":      true,
	})
	if err != nil {
		t.Fatalf("expected int normalisation to pass, got %v", err)
	}
}

func TestValidatePayloadUnknownCollection(t *testing.T) {
	err := schema.ValidatePayload("unknown", map[string]any{})
	if !errors.Is(err, schema.ErrUnknownCollection) {
		t.Fatalf("expected unknown collection error, got %v", err)
	}
}
