package graph

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
)

// LinkID creates a deterministic, content-addressable id for a link.
// The id format is: {kind}:{base64url(sha256(canonical)[:12])} where the
// canonical string is "{kind}:{source}|{target}".
//
// The same (kind, source, target) triple always produces the same id, so
// link identity is stable across re-projections of an unchanged snapshot,
// and the two link kinds between the same pair of nodes get distinct ids.
func LinkID(kind Kind, source, target uuid.UUID) string {
	canonical := fmt.Sprintf("%s:%s|%s", kind, source, target)
	hash := sha256.Sum256([]byte(canonical))
	encoded := base64.RawURLEncoding.EncodeToString(hash[:12])
	return fmt.Sprintf("%s:%s", kind, encoded)
}
