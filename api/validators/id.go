package validators

import (
	"strings"

	"github.com/google/uuid"

	pkgerrors "github.com/mak-alamin/bestools-server/pkg/errors"
)

// ParseResourceID checks that a path-supplied identifier is a syntactically
// valid document id before any handler touches the store. Anything else is
// rejected with "Invalid ID" and never reaches a query.
func ParseResourceID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Invalid ID")
	}
	return id, nil
}
