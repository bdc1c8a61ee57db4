package content

import (
	"bytes"
	"embed"
	"fmt"
	"sort"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/servetdekorasyon/website/internal/identity"
)

//go:embed fallback/*.md
var fallbackPostsFS embed.FS

type fallbackPostMeta struct {
	Title    string `yaml:"title"`
	Excerpt  string `yaml:"excerpt"`
	Category string `yaml:"category"`
	Author   string `yaml:"author"`
	Slug     string `yaml:"slug"`
	DaysAgo  int    `yaml:"days_ago"`
}

// FallbackPosts returns the built-in demo posts shown when the backend
// yields no usable data. Timestamps are relative to now so the listing
// always looks current; ids are deterministic so detail links stay stable.
func FallbackPosts(now time.Time) ([]Post, error) {
	entries, err := fallbackPostsFS.ReadDir("fallback")
	if err != nil {
		return nil, fmt.Errorf("content: read fallback posts: %w", err)
	}

	posts := make([]Post, 0, len(entries))
	for _, entry := range entries {
		raw, err := fallbackPostsFS.ReadFile("fallback/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("content: read %s: %w", entry.Name(), err)
		}

		var meta fallbackPostMeta
		body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
		if err != nil {
			return nil, fmt.Errorf("content: parse %s: %w", entry.Name(), err)
		}

		rendered, err := RenderMarkdown(string(body))
		if err != nil {
			return nil, fmt.Errorf("content: render %s: %w", entry.Name(), err)
		}

		published := now.Add(-time.Duration(meta.DaysAgo) * 24 * time.Hour)
		posts = append(posts, Post{
			ID:            identity.PostUUID(meta.Slug).String(),
			Title:         meta.Title,
			Content:       rendered,
			Excerpt:       meta.Excerpt,
			Category:      meta.Category,
			Author:        meta.Author,
			PublishedDate: published,
			Slug:          meta.Slug,
			Published:     true,
			CreatedAt:     published,
		})
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

// FallbackReferences returns the built-in portfolio entries.
func FallbackReferences(now time.Time) []Reference {
	entries := []Reference{
		{
			ImageURL:    "https://images.pexels.com/photos/1571460/pexels-photo-1571460.jpeg?auto=compress&cs=tinysrgb&w=800",
			Title:       "Modern Banyo Tasarımı",
			Description: "Vitra ürünleri ile modern ve şık banyo tasarımı",
		},
		{
			ImageURL:    "https://images.pexels.com/photos/1571468/pexels-photo-1571468.jpeg?auto=compress&cs=tinysrgb&w=800",
			Title:       "Lüks Banyo Dekorasyonu",
			Description: "Artema armatürleri ile lüks banyo dekorasyonu",
		},
		{
			ImageURL:    "https://images.pexels.com/photos/1571453/pexels-photo-1571453.jpeg?auto=compress&cs=tinysrgb&w=800",
			Title:       "Kompakt Banyo Çözümü",
			Description: "Küçük alanlarda maksimum verimlilik",
		},
		{
			ImageURL:    "https://images.pexels.com/photos/1571467/pexels-photo-1571467.jpeg?auto=compress&cs=tinysrgb&w=800",
			Title:       "Klasik Banyo Tasarımı",
			Description: "Zamansız elegans ve fonksiyonellik",
		},
	}
	for i := range entries {
		entries[i].ID = identity.ReferenceUUID(entries[i].Title).String()
		entries[i].CreatedAt = now.Add(-time.Duration(i) * 24 * time.Hour)
	}
	return entries
}

// FallbackOfferings returns the built-in service offerings.
func FallbackOfferings() []Offering {
	entries := []Offering{
		{
			Title:       "Banyo Tadilatı",
			Description: "Modern ve fonksiyonel banyo tasarımları ile hayalinizdeki banyoyu gerçeğe dönüştürüyoruz.",
			Icon:        IconBath,
			OrderIndex:  1,
		},
		{
			Title:       "Dekorasyon",
			Description: "Yaşam alanlarınızı estetik ve kullanışlı dekorasyon çözümleriyle yeniliyoruz.",
			Icon:        IconPalette,
			OrderIndex:  2,
		},
		{
			Title:       "Sıhhi Tesisat",
			Description: "Profesyonel sıhhi tesisat hizmetleri ile su ve ısıtma sistemlerinizi güvence altına alıyoruz.",
			Icon:        IconWrench,
			OrderIndex:  3,
		},
	}
	for i := range entries {
		entries[i].ID = identity.OfferingUUID(entries[i].Title).String()
	}
	return entries
}

// FallbackSettings returns the built-in site settings.
func FallbackSettings() []Setting {
	entries := []Setting{
		{Key: SettingCompanyName, Value: "Servet Dekorasyon", Type: SettingText, Description: "Şirket adı"},
		{Key: SettingWhatsAppNumber, Value: "905551234567", Type: SettingText, Description: "WhatsApp iletişim numarası"},
		{Key: SettingWhatsAppMessage, Value: "Merhaba! Web sitenizden geliyorum. Banyo tadilat/dekorasyon hizmetleriniz hakkında bilgi almak istiyorum.", Type: SettingText, Description: "WhatsApp karşılama mesajı"},
		{Key: SettingSiteLogo, Value: "", Type: SettingImageURL, Description: "Site logosu"},
	}
	for i := range entries {
		entries[i].ID = identity.SettingUUID(entries[i].Key).String()
	}
	return entries
}

// FallbackPartners returns the built-in partner logos.
func FallbackPartners() []Partner {
	names := []string{"Vitra", "Artema", "Grohe", "Hansgrohe", "Duravit"}
	logos := []string{
		"https://images.pexels.com/photos/6444/pencil-typography-black-design.jpg?auto=compress&cs=tinysrgb&w=200&h=100",
		"https://images.pexels.com/photos/267350/pexels-photo-267350.jpeg?auto=compress&cs=tinysrgb&w=200&h=100",
		"https://images.pexels.com/photos/1029757/pexels-photo-1029757.jpeg?auto=compress&cs=tinysrgb&w=200&h=100",
		"https://images.pexels.com/photos/1181467/pexels-photo-1181467.jpeg?auto=compress&cs=tinysrgb&w=200&h=100",
		"https://images.pexels.com/photos/1181533/pexels-photo-1181533.jpeg?auto=compress&cs=tinysrgb&w=200&h=100",
	}

	partners := make([]Partner, 0, len(names))
	for i, name := range names {
		partners = append(partners, Partner{
			ID:         identity.PartnerUUID(name).String(),
			Name:       name,
			LogoURL:    logos[i],
			OrderIndex: i + 1,
			Active:     true,
		})
	}
	return partners
}
