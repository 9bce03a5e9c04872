package proto

import (
	"strings"

	"github.com/pkg/errors"
)

// Namespace is a fully qualified MongoDB namespace split into its database
// and collection parts.
type Namespace struct {
	DB         string
	Collection string
}

// ParseNamespace splits ns on the first dot only. The collection part keeps
// any remaining dots verbatim, so "test.system.profile" parses as db "test",
// collection "system.profile". MongoDB namespaces always carry a database
// prefix; a string without a dot is an error.
func ParseNamespace(ns string) (Namespace, error) {
	m := strings.SplitN(ns, ".", 2)
	if len(m) < 2 {
		return Namespace{}, errors.Errorf("invalid namespace %q: it has no database prefix", ns)
	}
	return Namespace{DB: m[0], Collection: m[1]}, nil
}
