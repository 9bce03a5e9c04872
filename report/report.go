package report

import (
	"fmt"
	"io"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"

	"github.com/percona/pt-mongodb-slow-query-check/proto"
)

const blockSeparator = "===================="

// Operation is a profiling log record ready to be rendered: the identity
// fields of the raw document plus its decoded command.
type Operation struct {
	Op      string
	Ns      string
	Millis  int
	Command Command
}

// FromProfile converts raw profiling log records into renderable operations.
// Command payloads are validated here, at the boundary, so a malformed
// document fails the whole report instead of breaking half way through it.
func FromProfile(docs []proto.ProfiledOperation) ([]Operation, error) {
	ops := make([]Operation, 0, len(docs))
	for _, doc := range docs {
		cmd, err := Decode(doc.Op, doc.Command)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid profiling record for %s", doc.Ns)
		}
		ops = append(ops, Operation{
			Op:      doc.Op,
			Ns:      doc.Ns,
			Millis:  doc.Millis,
			Command: cmd,
		})
	}
	return ops, nil
}

// Builder renders the slow queries report.
type Builder struct {
	// ShowStats appends an execution time summary after the blocks.
	ShowStats bool
}

// Write renders the report for ops, in arrival order, and returns whether
// anything was identified. An empty input produces the single
// "No slow queries identified" line.
func (b Builder) Write(w io.Writer, ops []Operation) (bool, error) {
	if len(ops) == 0 {
		fmt.Fprintln(w, "No slow queries identified")
		return false, nil
	}

	noun := "queries"
	if len(ops) == 1 {
		noun = "query"
	}
	fmt.Fprintf(w, "Identified %d slow %s\n", len(ops), noun)

	for _, op := range ops {
		ns, err := proto.ParseNamespace(op.Ns)
		if err != nil {
			return true, err
		}
		fmt.Fprintln(w, blockSeparator)
		fmt.Fprintf(w, "OP:         %s\n", op.Op)
		fmt.Fprintf(w, "DB:         %s\n", ns.DB)
		fmt.Fprintf(w, "COLLECTION: %s\n", ns.Collection)
		op.Command.render(w)
	}

	if b.ShowStats {
		writeStats(w, ops)
	}
	return true, nil
}

func writeStats(w io.Writer, ops []Operation) {
	millis := make([]float64, len(ops))
	for i, op := range ops {
		millis[i] = float64(op.Millis)
	}
	total, _ := stats.Sum(millis)
	min, _ := stats.Min(millis)
	max, _ := stats.Max(millis)
	avg, _ := stats.Mean(millis)
	pct95, _ := stats.Percentile(millis, 95)

	fmt.Fprintln(w, blockSeparator)
	fmt.Fprintf(w, "EXEC TIME MS: total %.0f, min %.0f, max %.0f, avg %.0f, 95%% %.0f\n",
		total, min, max, avg, pct95)
}
