// Package identifier defines ID, the value used to address documents and
// aggregates. An ID is a closed tagged union: either a textual key or a
// 128-bit unique value. The tag is decided once, at the boundary where the
// ID is constructed, so storage code never inspects dynamic types.
package identifier

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/storefront-core/internal/domain"
)

// Kind is the tag of an ID.
type Kind uint8

// Valid ID kinds. The zero Kind marks the zero (invalid) ID.
const (
	KindText Kind = iota + 1
	KindUnique
)

// String returns the lower-case label used in documents and storage keys.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindUnique:
		return "unique"
	default:
		return "invalid"
	}
}

// parseKind is the inverse of Kind.String for valid kinds.
func parseKind(s string) (Kind, bool) {
	switch s {
	case "text":
		return KindText, true
	case "unique":
		return KindUnique, true
	default:
		return 0, false
	}
}

// ID addresses a document or aggregate. It is comparable, so it can be used
// directly as a map key; two IDs are equal iff they have the same kind and
// the same underlying value.
type ID struct {
	kind   Kind
	text   string
	unique uuid.UUID
}

// Text returns a textual ID.
func Text(s string) ID {
	return ID{kind: KindText, text: s}
}

// Unique returns a 128-bit unique ID.
func Unique(u uuid.UUID) ID {
	return ID{kind: KindUnique, unique: u}
}

// NewUnique returns a freshly generated random (version 4) unique ID.
func NewUnique() ID {
	return Unique(uuid.New())
}

// Parse builds an ID from its rendered form. A string that parses as a UUID
// becomes a unique ID; any other non-blank string becomes a textual ID.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ID{}, &domain.ValidationError{Fields: map[string]string{"id": "must not be empty"}}
	}
	if u, err := uuid.Parse(s); err == nil {
		return Unique(u), nil
	}
	return Text(s), nil
}

// ParseUnique parses s strictly as a unique ID.
func ParseUnique(s string) (ID, error) {
	u, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return ID{}, &domain.ValidationError{Fields: map[string]string{"id": "must be a valid UUID"}}
	}
	return Unique(u), nil
}

// Kind returns the ID's tag.
func (id ID) Kind() Kind { return id.kind }

// IsZero reports whether id is the zero ID.
func (id ID) IsZero() bool { return id.kind == 0 }

// Equal reports whether id and other have the same kind and value.
func (id ID) Equal(other ID) bool { return id == other }

// TextValue returns the textual value and true when id is a textual ID.
func (id ID) TextValue() (string, bool) {
	return id.text, id.kind == KindText
}

// UniqueValue returns the unique value and true when id is a unique ID.
func (id ID) UniqueValue() (uuid.UUID, bool) {
	return id.unique, id.kind == KindUnique
}

// String renders the underlying value. The zero ID renders as "".
func (id ID) String() string {
	switch id.kind {
	case KindText:
		return id.text
	case KindUnique:
		return id.unique.String()
	default:
		return ""
	}
}

// Key renders the ID together with its tag ("text:admin",
// "unique:6ba7b810-..."), so textual and unique IDs with the same rendering
// never collide in a flat keyspace.
func (id ID) Key() string {
	return id.kind.String() + ":" + id.String()
}

// ParseKey is the inverse of Key.
func ParseKey(key string) (ID, error) {
	label, value, ok := strings.Cut(key, ":")
	if !ok {
		return ID{}, fmt.Errorf("identifier: malformed key %q", key)
	}
	kind, ok := parseKind(label)
	if !ok {
		return ID{}, fmt.Errorf("identifier: unknown kind %q in key %q", label, key)
	}
	return fromParts(kind, value)
}

// Validate returns a *domain.ValidationError when id cannot be used to
// address a document: the zero ID and blank textual IDs are rejected.
func (id ID) Validate() error {
	switch id.kind {
	case KindText:
		if strings.TrimSpace(id.text) == "" {
			return &domain.ValidationError{Fields: map[string]string{"id": "must not be empty"}}
		}
		return nil
	case KindUnique:
		return nil
	default:
		return &domain.ValidationError{Fields: map[string]string{"id": "is required"}}
	}
}

// wireID is the JSON form of an ID.
type wireID struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// MarshalJSON encodes the ID with its tag so documents round-trip the kind.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(wireID{Kind: id.kind.String(), Value: id.String()})
}

// UnmarshalJSON decodes the tagged form produced by MarshalJSON.
func (id *ID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ID{}
		return nil
	}
	var w wireID
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("identifier: decoding: %w", err)
	}
	kind, ok := parseKind(w.Kind)
	if !ok {
		return fmt.Errorf("identifier: unknown kind %q", w.Kind)
	}
	parsed, err := fromParts(kind, w.Value)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func fromParts(kind Kind, value string) (ID, error) {
	if kind == KindUnique {
		u, err := uuid.Parse(value)
		if err != nil {
			return ID{}, fmt.Errorf("identifier: invalid unique value %q: %w", value, err)
		}
		return Unique(u), nil
	}
	return Text(value), nil
}
