package uow

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/jsamuelsen11/storefront-core/internal/domain"
)

// DefaultPrefix namespaces collection names when no prefix is configured.
const DefaultPrefix = "storefront_"

var collectionNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// CollectionName derives the collection a document type is stored in:
// prefix followed by the lower-cased type name. Unnamed types (slices,
// maps, anonymous structs) and names that do not lower-case to
// [a-z0-9_]+ are rejected.
func CollectionName[T any](prefix string) (string, error) {
	return collectionName(reflect.TypeFor[T](), prefix)
}

func collectionName(t reflect.Type, prefix string) (string, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	base := t.Name()
	if strings.Contains(base, "[") {
		base = "" // instantiated generic types have no stable name
	}
	if base == "" {
		return "", &domain.ValidationError{Fields: map[string]string{
			"collection": fmt.Sprintf("type %s has no usable name", t),
		}}
	}
	name := prefix + strings.ToLower(base)
	if !collectionNamePattern.MatchString(name) {
		return "", &domain.ValidationError{Fields: map[string]string{
			"collection": fmt.Sprintf("%q must match [a-z0-9_]+", name),
		}}
	}
	return name, nil
}
