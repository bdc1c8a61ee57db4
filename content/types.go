package content

import (
	"time"

	"github.com/servetdekorasyon/website/gateway"
)

// Collection names as exposed by the remote backend.
const (
	CollectionPosts      = "posts"
	CollectionReferences = "references"
	CollectionOfferings  = "services"
	CollectionContacts   = "contacts"
	CollectionSettings   = "settings"
	CollectionPartners   = "partners"
)

// CategoryAll is the sentinel that disables category filtering on list pages.
const CategoryAll = "Tümü"

// PostCategories is the fixed category set offered on the blog.
var PostCategories = []string{CategoryAll, "Dekorasyon", "Tadilat", "Bakım", "Tasarım", "Ürünler", "Aydınlatma"}

// Post is a blog entry. Content holds sanitized rich text ready for display.
type Post struct {
	ID            string
	Title         string
	Content       string
	Excerpt       string
	Category      string
	Author        string
	PublishedDate time.Time
	Slug          string
	Published     bool
	CreatedAt     time.Time
}

// Reference is one portfolio entry shown on the references page.
type Reference struct {
	ID          string
	ImageURL    string
	Title       string
	Description string
	CreatedAt   time.Time
}

// Offering is a service the company advertises. The backend collection is
// named "services"; the Go type avoids that overloaded word.
type Offering struct {
	ID          string
	Title       string
	Description string
	Icon        Icon
	OrderIndex  int
	CreatedAt   time.Time
}

// Contact is a contact-form submission.
type Contact struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Message   string
	CreatedAt time.Time
}

// SettingType distinguishes plain-text settings from image URLs.
type SettingType string

const (
	SettingText     SettingType = "text"
	SettingImageURL SettingType = "image_url"
)

// Setting is one key/value pair of site configuration stored remotely.
type Setting struct {
	ID          string
	Key         string
	Value       string
	Type        SettingType
	Description string
}

// Well-known setting keys.
const (
	SettingCompanyName     = "company_name"
	SettingWhatsAppNumber  = "whatsapp_number"
	SettingWhatsAppMessage = "whatsapp_message"
	SettingSiteLogo        = "site_logo"
)

// Partner is a brand logo shown in the partners strip.
type Partner struct {
	ID         string
	Name       string
	LogoURL    string
	WebsiteURL string
	OrderIndex int
	Active     bool
}

func postFromRecord(record gateway.Record) Post {
	return Post{
		ID:            record.ID,
		Title:         record.String("title"),
		Content:       record.String("content"),
		Excerpt:       record.String("excerpt"),
		Category:      record.String("category"),
		Author:        record.String("author"),
		PublishedDate: parseTime(record.String("published_date")),
		Slug:          record.String("slug"),
		Published:     record.Bool("published"),
		CreatedAt:     parseTime(record.String("created_at")),
	}
}

func referenceFromRecord(record gateway.Record) Reference {
	return Reference{
		ID:          record.ID,
		ImageURL:    record.String("image_url"),
		Title:       record.String("title"),
		Description: record.String("description"),
		CreatedAt:   parseTime(record.String("created_at")),
	}
}

func offeringFromRecord(record gateway.Record) Offering {
	return Offering{
		ID:          record.ID,
		Title:       record.String("title"),
		Description: record.String("description"),
		Icon:        ParseIcon(record.String("icon")),
		OrderIndex:  record.Int("order_index"),
		CreatedAt:   parseTime(record.String("created_at")),
	}
}

func contactFromRecord(record gateway.Record) Contact {
	return Contact{
		ID:        record.ID,
		Name:      record.String("name"),
		Email:     record.String("email"),
		Phone:     record.String("phone"),
		Message:   record.String("message"),
		CreatedAt: parseTime(record.String("created_at")),
	}
}

func settingFromRecord(record gateway.Record) Setting {
	settingType := SettingType(record.String("type"))
	if settingType == "" {
		settingType = SettingText
	}
	return Setting{
		ID:          record.ID,
		Key:         record.String("key"),
		Value:       record.String("value"),
		Type:        settingType,
		Description: record.String("description"),
	}
}

func partnerFromRecord(record gateway.Record) Partner {
	return Partner{
		ID:         record.ID,
		Name:       record.String("name"),
		LogoURL:    record.String("logo_url"),
		WebsiteURL: record.String("website_url"),
		OrderIndex: record.Int("order_index"),
		Active:     record.Bool("active"),
	}
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
