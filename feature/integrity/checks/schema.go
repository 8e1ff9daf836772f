package checks

import (
	"fmt"
	"sort"
)

// Verifier reports the expected columns missing from each table it owns.
type Verifier interface {
	Verify() (map[string][]string, error)
}

// SchemaReport strictly types the result of a schema check.
type SchemaReport struct {
	Matched bool          `json:"matched"`
	Tables  []TableReport `json:"tables"`
}

// TableReport lists the missing columns of one table.
type TableReport struct {
	Table          string   `json:"table"`
	MissingColumns []string `json:"missing_columns"`
}

// CheckSchema runs the verifier and sorts its findings by table name.
func CheckSchema(v Verifier) (*SchemaReport, error) {
	if v == nil {
		return nil, fmt.Errorf("no schema verifier configured")
	}

	missing, err := v.Verify()
	if err != nil {
		return nil, fmt.Errorf("failed to verify schema: %w", err)
	}

	report := &SchemaReport{Matched: len(missing) == 0, Tables: []TableReport{}}
	for table, cols := range missing {
		report.Tables = append(report.Tables, TableReport{Table: table, MissingColumns: cols})
	}
	sort.Slice(report.Tables, func(i, j int) bool {
		return report.Tables[i].Table < report.Tables[j].Table
	})

	return report, nil
}
