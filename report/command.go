package report

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

// Command is the typed payload of a profiled operation. It is a closed set:
// only the find, update and remove variants below implement it.
type Command interface {
	render(w io.Writer)
}

// FindCommand is the payload of an op: "query" record. Projection is nil
// when the profiled command had none.
type FindCommand struct {
	Filter     bson.D
	Projection bson.D
}

// UpdateCommand is the payload of an op: "update" record.
type UpdateCommand struct {
	Filter bson.D
	Update bson.D
	Multi  bool
	Upsert bool
}

// RemoveCommand is the payload of an op: "remove" record.
type RemoveCommand struct {
	Filter bson.D
}

// Decode validates the raw command payload against the shape its operation
// kind requires and returns the typed variant. Shape problems surface here,
// before any rendering starts. The server spells the update/remove filter as
// "q" and the update document as "u"; both spellings are accepted.
func Decode(op string, raw bson.Raw) (Command, error) {
	switch op {
	case "query":
		filter, ok, err := lookupDoc(raw, "filter", "q")
		if err != nil {
			return nil, errors.Wrap(err, "unrecognized find command shape")
		}
		if !ok {
			return nil, errors.New("unrecognized find command shape: it has no filter")
		}
		projection, _, err := lookupDoc(raw, "projection")
		if err != nil {
			return nil, errors.Wrap(err, "unrecognized find command shape")
		}
		return FindCommand{Filter: filter, Projection: projection}, nil
	case "update":
		filter, ok, err := lookupDoc(raw, "q", "filter")
		if err != nil {
			return nil, errors.Wrap(err, "unrecognized update command shape")
		}
		if !ok {
			return nil, errors.New("unrecognized update command shape: it has no filter")
		}
		update, ok, err := lookupDoc(raw, "u", "update")
		if err != nil {
			return nil, errors.Wrap(err, "unrecognized update command shape")
		}
		if !ok {
			return nil, errors.New("unrecognized update command shape: it has no update document")
		}
		multi, err := lookupBool(raw, "multi")
		if err != nil {
			return nil, errors.Wrap(err, "unrecognized update command shape")
		}
		upsert, err := lookupBool(raw, "upsert")
		if err != nil {
			return nil, errors.Wrap(err, "unrecognized update command shape")
		}
		return UpdateCommand{Filter: filter, Update: update, Multi: multi, Upsert: upsert}, nil
	case "remove":
		filter, ok, err := lookupDoc(raw, "q", "filter")
		if err != nil {
			return nil, errors.Wrap(err, "unrecognized remove command shape")
		}
		if !ok {
			return nil, errors.New("unrecognized remove command shape: it has no filter")
		}
		return RemoveCommand{Filter: filter}, nil
	}
	return nil, errors.Errorf("unsupported operation kind %q", op)
}

func (c FindCommand) render(w io.Writer) {
	fmt.Fprintf(w, "FILTER: %s\n", extJSON(c.Filter))
	if c.Projection != nil {
		fmt.Fprintf(w, "PROJECTION: %s\n", extJSON(c.Projection))
	}
}

func (c UpdateCommand) render(w io.Writer) {
	fmt.Fprintf(w, "FILTER: %s\n", extJSON(c.Filter))
	fmt.Fprintf(w, "UPDATE: %s\n", extJSON(c.Update))
	fmt.Fprintf(w, "MULTI: %t\n", c.Multi)
	fmt.Fprintf(w, "UPSERT: %t\n", c.Upsert)
}

func (c RemoveCommand) render(w io.Writer) {
	fmt.Fprintf(w, "FILTER: %s\n", extJSON(c.Filter))
}

// extJSON renders a document in relaxed extended JSON: plain JSON for the
// value types a filter or update carries, keys in document order, no
// indentation.
func extJSON(d bson.D) string {
	if d == nil {
		d = bson.D{}
	}
	buf, err := bson.MarshalExtJSON(d, false, false)
	if err != nil {
		return fmt.Sprintf("%v", d)
	}
	return string(buf)
}

// lookupDoc returns the first of keys present in raw, decoded as a document.
// The second return value is false when none of the keys exist.
func lookupDoc(raw bson.Raw, keys ...string) (bson.D, bool, error) {
	for _, key := range keys {
		val, err := raw.LookupErr(key)
		if err != nil {
			continue
		}
		doc, ok := val.DocumentOK()
		if !ok {
			return nil, false, errors.Errorf("field %q is not a document", key)
		}
		var d bson.D
		if err := bson.Unmarshal(doc, &d); err != nil {
			return nil, false, errors.Wrapf(err, "cannot decode field %q", key)
		}
		if d == nil {
			d = bson.D{} // present but empty, e.g. projection: {}
		}
		return d, true, nil
	}
	return nil, false, nil
}

func lookupBool(raw bson.Raw, key string) (bool, error) {
	val, err := raw.LookupErr(key)
	if err != nil {
		return false, errors.Errorf("it has no %q field", key)
	}
	b, ok := val.BooleanOK()
	if !ok {
		return false, errors.Errorf("field %q is not a boolean", key)
	}
	return b, nil
}
