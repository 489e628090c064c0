package lifecycle

import (
	"regexp"

	"github.com/jsamuelsen11/storefront-core/internal/domain"
	"github.com/jsamuelsen11/storefront-core/internal/domain/identifier"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,62}$`)

// ValidateID checks that id has the identifier kind used by k: roles are
// addressed by a lower-case slug, categories by a UUID.
func (k Kind) ValidateID(id identifier.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	switch k {
	case KindRole:
		slug, ok := id.TextValue()
		if !ok || !slugPattern.MatchString(slug) {
			return &domain.ValidationError{Fields: map[string]string{
				"id": "role id must be a lower-case slug (a-z, 0-9, '-')",
			}}
		}
	case KindCategory:
		if id.Kind() != identifier.KindUnique {
			return &domain.ValidationError{Fields: map[string]string{"id": "category id must be a UUID"}}
		}
	default:
		return &domain.ValidationError{Fields: map[string]string{"kind": "unknown kind"}}
	}
	return nil
}

// ParseID parses the external form of an id for kind k.
func (k Kind) ParseID(s string) (identifier.ID, error) {
	var (
		id  identifier.ID
		err error
	)
	if k == KindCategory {
		id, err = identifier.ParseUnique(s)
	} else {
		id = identifier.Text(s)
	}
	if err != nil {
		return identifier.ID{}, err
	}
	return id, k.ValidateID(id)
}
