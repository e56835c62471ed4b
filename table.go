package cproject

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// leader columns present in every table, ahead of the observed field columns
var tableLeaders = []string{"ctree", "plugin", "type"}

// Table is the flattened row-per-record, column-per-field view of a project.
// Columns are the outer-join union of field names observed across all records;
// rows missing a field carry an empty value.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Table flattens all loaded records into a table. The project is not mutated.
func (r *Project) Table() *Table {
	records := r.Results()

	// * collect the union of observed field names
	observed := make(map[string]bool)
	for _, record := range records {
		for field := range record.Fields {
			observed[field] = true
		}
	}

	// * leaders first, then observed fields in sorted order
	columns := append([]string{}, tableLeaders...)
	extras := make([]string, 0, len(observed))
	for field := range observed {
		if field == "ctree" || field == "plugin" || field == "type" {
			continue
		}
		extras = append(extras, field)
	}
	sort.Strings(extras)
	columns = append(columns, extras...)

	// * build rows
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		row := make([]string, 0, len(columns))
		row = append(row, *record.CTree, *record.Plugin, *record.Query)
		for _, field := range extras {
			row = append(row, record.Fields[field])
		}
		rows = append(rows, row)
	}

	return &Table{
		Columns: columns,
		Rows:    rows,
	}
}

// Maps returns the table as one flat map per row.
func (r *Table) Maps() []map[string]string {
	maps := make([]map[string]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		m := make(map[string]string, len(r.Columns))
		for i, column := range r.Columns {
			m[column] = row[i]
		}
		maps = append(maps, m)
	}
	return maps
}

// WriteJSON serializes the table as an array of flat objects, one per record.
func (r *Table) WriteJSON(writer io.Writer) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.Maps()); err != nil {
		return fmt.Errorf("failed to encode table json: %w", err)
	}
	return nil
}

// WriteCSV serializes the table with a header row.
func (r *Table) WriteCSV(writer io.Writer) error {
	w := csv.NewWriter(writer)

	if err := w.Write(r.Columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range r.Rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
