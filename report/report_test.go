package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/percona/pt-mongodb-slow-query-check/proto"
)

func TestWriteEmptyReport(t *testing.T) {
	buf := &bytes.Buffer{}
	found, err := Builder{}.Write(buf, nil)
	require.NoError(t, err)

	assert.False(t, found)
	assert.Equal(t, "No slow queries identified\n", buf.String())
}

func TestWriteSingularCountLine(t *testing.T) {
	ops := []Operation{
		{Op: "remove", Ns: "test.foo", Command: RemoveCommand{Filter: bson.D{{Key: "a", Value: 1}}}},
	}

	buf := &bytes.Buffer{}
	found, err := Builder{}.Write(buf, ops)
	require.NoError(t, err)

	assert.True(t, found)
	assert.True(t, strings.HasPrefix(buf.String(), "Identified 1 slow query\n"))
}

func TestWriteReport(t *testing.T) {
	ops := []Operation{
		{
			Op: "update",
			Ns: "test.people",
			Command: UpdateCommand{
				Filter: bson.D{{Key: "name", Value: "Miles"}},
				Update: bson.D{{Key: "$set", Value: bson.D{{Key: "instrument", Value: "trumpet"}}}},
				Multi:  true,
				Upsert: false,
			},
		},
		{
			Op:      "remove",
			Ns:      "test.system.users",
			Command: RemoveCommand{Filter: bson.D{{Key: "name", Value: "Monk"}}},
		},
	}

	buf := &bytes.Buffer{}
	found, err := Builder{}.Write(buf, ops)
	require.NoError(t, err)
	assert.True(t, found)

	want := `Identified 2 slow queries
====================
OP:         update
DB:         test
COLLECTION: people
FILTER: {"name":"Miles"}
UPDATE: {"$set":{"instrument":"trumpet"}}
MULTI: true
UPSERT: false
====================
OP:         remove
DB:         test
COLLECTION: system.users
FILTER: {"name":"Monk"}
`
	if got := buf.String(); got != want {
		t.Errorf("unexpected report: %v", pretty.Diff(want, got))
	}
}

func TestWriteReportBadNamespace(t *testing.T) {
	ops := []Operation{
		{Op: "remove", Ns: "nodot", Command: RemoveCommand{Filter: bson.D{}}},
	}

	_, err := Builder{}.Write(&bytes.Buffer{}, ops)
	assert.Error(t, err)
}

func TestWriteReportWithStats(t *testing.T) {
	ops := []Operation{
		{Op: "remove", Ns: "test.a", Millis: 10, Command: RemoveCommand{Filter: bson.D{}}},
		{Op: "remove", Ns: "test.b", Millis: 30, Command: RemoveCommand{Filter: bson.D{}}},
	}

	buf := &bytes.Buffer{}
	found, err := Builder{ShowStats: true}.Write(buf, ops)
	require.NoError(t, err)
	assert.True(t, found)

	assert.Contains(t, buf.String(), "EXEC TIME MS: total 40, min 10, max 30, avg 20, 95% 30\n")
}

func TestFromProfile(t *testing.T) {
	docs := []proto.ProfiledOperation{
		{
			Op:      "query",
			Ns:      "test.foo",
			Millis:  12,
			Command: rawDoc(t, bson.D{{Key: "find", Value: "foo"}, {Key: "filter", Value: bson.D{{Key: "a", Value: 1}}}}),
		},
		{
			Op:      "remove",
			Ns:      "test.bar",
			Millis:  7,
			Command: rawDoc(t, bson.D{{Key: "q", Value: bson.D{{Key: "b", Value: 2}}}, {Key: "limit", Value: 0}}),
		},
	}

	ops, err := FromProfile(docs)
	require.NoError(t, err)
	require.Len(t, ops, 2)

	// arrival order is preserved
	assert.Equal(t, "test.foo", ops[0].Ns)
	assert.IsType(t, FindCommand{}, ops[0].Command)
	assert.Equal(t, "test.bar", ops[1].Ns)
	assert.IsType(t, RemoveCommand{}, ops[1].Command)
}

func TestFromProfileMalformedCommand(t *testing.T) {
	docs := []proto.ProfiledOperation{
		{Op: "update", Ns: "test.foo", Command: rawDoc(t, bson.D{{Key: "q", Value: bson.D{}}})},
	}

	_, err := FromProfile(docs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test.foo")
}
