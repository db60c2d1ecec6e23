package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
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

// DocumentUUID identifies a dialect document by its path.
func DocumentUUID(documentPath string) uuid.UUID {
	return UUID("go-tagdown:document:" + strings.TrimSpace(documentPath))
}

// PreviewUUID identifies the persisted preview row for a document. One row
// per document path; repeated renders upsert the same identity.
func PreviewUUID(documentPath string) uuid.UUID {
	return UUID("go-tagdown:preview:" + strings.TrimSpace(documentPath))
}
