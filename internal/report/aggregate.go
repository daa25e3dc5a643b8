package report

import (
	"sort"

	"github.com/ppiankov/s3reach/internal/input"
	"github.com/ppiankov/s3reach/internal/probe"
)

// Aggregate joins probe results back to their input records and produces
// report rows in original line order. Result IDs are indexes into records.
// Records that never normalized carry their own malformed outcome and need
// no entry in results.
func Aggregate(records []input.Record, results []probe.Result) ([]Row, Summary) {
	outcomes := make(map[int]probe.Outcome, len(results))
	for _, res := range results {
		outcomes[res.ID] = res.Outcome
	}

	rows := make([]Row, 0, len(records))
	summary := Summary{Total: len(records)}

	for i, rec := range records {
		var outcome probe.Outcome
		switch {
		case rec.Err != nil:
			outcome = probe.Malformed(rec.Err)
		default:
			var ok bool
			outcome, ok = outcomes[i]
			if !ok {
				// The runner guarantees one outcome per task; a hole here
				// means the record was never submitted.
				outcome = probe.Outcome{
					Address:        rec.Address,
					Classification: probe.TransportError,
					Detail:         "no outcome recorded",
				}
			}
		}

		row := Row{
			LineNumber:     rec.LineNumber,
			OriginalDomain: rec.Raw,
			Accessible:     outcome.Reachable,
			Type:           rowType(rec, outcome),
			Message:        outcome.Detail,
		}
		if rec.Err == nil {
			row.URL = rec.Address.URL()
			row.Bucket = rec.Address.Bucket
			row.Key = rec.Address.Key
		}

		if row.Accessible {
			summary.Accessible++
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].LineNumber < rows[j].LineNumber
	})

	return rows, summary
}

// rowType mirrors the classic checker taxonomy: bucket/object for rows that
// reached a verdict, invalid for unparseable input, error for transport
// failures.
func rowType(rec input.Record, outcome probe.Outcome) string {
	switch outcome.Classification {
	case probe.MalformedInput:
		return "invalid"
	case probe.TransportError:
		return "error"
	default:
		if rec.Address.IsObject() {
			return "object"
		}
		return "bucket"
	}
}
