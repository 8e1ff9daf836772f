package history

import (
	"encoding/json"
	"strings"
	"time"

	"config-diff/core/diff"
	"config-diff/feature/compare"
)

// folderSeparator joins folder paths in a single column.
const folderSeparator = "\n"

// Run is one persisted comparison run.
type Run struct {
	ID             string      `gorm:"primaryKey;size:36" json:"id"`
	HelpFolder     string      `gorm:"size:1024" json:"help_folder"`
	Folders        string      `gorm:"type:text" json:"-"`
	ReportPath     string      `gorm:"size:1024" json:"report_path"`
	Files          int         `json:"files"`
	Keys           int         `json:"keys"`
	Differing      int         `json:"differing"`
	Undocumented   int         `json:"undocumented"`
	MissingSources int         `json:"missing_sources"`
	StartedAt      time.Time   `gorm:"index" json:"started_at"`
	DurationMs     int64       `json:"duration_ms"`
	Rows           []RowRecord `gorm:"foreignKey:RunID" json:"rows,omitempty"`
}

// TableName overrides the table name used by Run.
func (Run) TableName() string {
	return "comparison_runs"
}

// FolderList returns the compared folders in source order.
func (r Run) FolderList() []string {
	if r.Folders == "" {
		return nil
	}
	return strings.Split(r.Folders, folderSeparator)
}

// RowRecord is one persisted diff row.
type RowRecord struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	RunID        string  `gorm:"size:36;index" json:"run_id"`
	Position     int     `json:"position"`
	File         string  `gorm:"size:512" json:"file"`
	GroupName    string  `gorm:"size:512" json:"group"`
	KeyName      string  `gorm:"size:512" json:"key"`
	Help         *string `gorm:"type:text" json:"help"`
	DefaultValue *string `gorm:"type:text" json:"default"`
	Differs      bool    `json:"differs"`
	Source       int     `json:"source"`
	ValuesJSON   string  `gorm:"type:text" json:"-"`
}

// TableName overrides the table name used by RowRecord.
func (RowRecord) TableName() string {
	return "comparison_rows"
}

// Row converts the record back into a diff row.
func (r RowRecord) Row() (diff.Row, error) {
	row := diff.Row{
		File:    r.File,
		Group:   r.GroupName,
		Key:     r.KeyName,
		Help:    r.Help,
		Default: r.DefaultValue,
		Differs: r.Differs,
		Source:  r.Source,
	}
	if err := json.Unmarshal([]byte(r.ValuesJSON), &row.Values); err != nil {
		return diff.Row{}, err
	}
	return row, nil
}

// RunColumns and RowColumns list the columns Verify expects.
var (
	RunColumns = []string{"id", "help_folder", "folders", "report_path", "files", "keys", "differing",
		"undocumented", "missing_sources", "started_at", "duration_ms"}
	RowColumns = []string{"id", "run_id", "position", "file", "group_name", "key_name", "help",
		"default_value", "differs", "source", "values_json"}
)

// newRun maps a comparison result to its persisted form.
func newRun(res *compare.Result, reportPath string) (Run, []RowRecord, error) {
	run := Run{
		ID:             res.RunID,
		HelpFolder:     res.HelpFolder,
		Folders:        strings.Join(res.Folders, folderSeparator),
		ReportPath:     reportPath,
		Files:          len(res.Files),
		Keys:           res.Summary.Keys,
		Differing:      res.Summary.Differing,
		Undocumented:   res.Summary.Undocumented,
		MissingSources: res.Summary.MissingSources,
		StartedAt:      res.StartedAt,
		DurationMs:     res.Duration.Milliseconds(),
	}

	rows := res.Rows()
	records := make([]RowRecord, 0, len(rows))
	for i, row := range rows {
		values, err := json.Marshal(row.Values)
		if err != nil {
			return Run{}, nil, err
		}
		records = append(records, RowRecord{
			RunID:        res.RunID,
			Position:     i,
			File:         row.File,
			GroupName:    row.Group,
			KeyName:      row.Key,
			Help:         row.Help,
			DefaultValue: row.Default,
			Differs:      row.Differs,
			Source:       row.Source,
			ValuesJSON:   string(values),
		})
	}

	return run, records, nil
}
