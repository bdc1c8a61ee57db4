package content

import "github.com/goliatone/go-slug"

// DeriveSlug builds a URL-safe slug from a human-entered post title, so
// Turkish characters in titles normalize the same way every time.
func DeriveSlug(title string) (string, error) {
	return slug.Normalize(title)
}

// IsValidSlug reports whether an admin-supplied slug is already in
// canonical form. Create rejects anything that is not.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}
