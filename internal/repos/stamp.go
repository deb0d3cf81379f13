package repos

import (
	"time"

	"github.com/google/uuid"

	"hooksaurus/internal/domain"
	"hooksaurus/internal/platform/datetime"
)

// stamp assigns the identity and audit columns every insert needs.
func stamp(id *uuid.UUID, created, updated *time.Time, etag *domain.Etag) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
	now := datetime.Now()
	*created = now
	*updated = now
	*etag = domain.NewEtag()
}

// newestFirst is the listing order shared by every table; rowid breaks ties
// between rows created within the same second.
const newestFirst = ` ORDER BY created_at DESC, rowid DESC LIMIT ? OFFSET ?`
