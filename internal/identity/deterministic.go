package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by collection).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// PostUUID derives the stable id used for fallback blog posts.
func PostUUID(slug string) uuid.UUID {
	return UUID("site:post:" + strings.ToLower(strings.TrimSpace(slug)))
}

// ReferenceUUID derives the stable id used for fallback portfolio entries.
func ReferenceUUID(title string) uuid.UUID {
	return UUID("site:reference:" + strings.ToLower(strings.TrimSpace(title)))
}

// OfferingUUID derives the stable id used for fallback service offerings.
func OfferingUUID(title string) uuid.UUID {
	return UUID("site:offering:" + strings.ToLower(strings.TrimSpace(title)))
}

// SettingUUID derives the stable id used for fallback site settings.
func SettingUUID(key string) uuid.UUID {
	return UUID("site:setting:" + strings.ToLower(strings.TrimSpace(key)))
}

// PartnerUUID derives the stable id used for fallback partner logos.
func PartnerUUID(name string) uuid.UUID {
	return UUID("site:partner:" + strings.ToLower(strings.TrimSpace(name)))
}
