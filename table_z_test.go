package cproject

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableColumns(t *testing.T) {
	project, err := New(newFixtureProject(t), "malaria")
	require.NoError(t, err)

	table := project.Table()

	// * leaders first, then the union of observed fields sorted
	assert.Equal(t, []string{"ctree", "plugin", "type", "count", "exact", "post", "pre"}, table.Columns)
	assert.Len(t, table.Rows, 8)

	// * every row matches the column count
	for _, row := range table.Rows {
		assert.Len(t, row, len(table.Columns))
	}
}

func TestTableMissingFields(t *testing.T) {
	project, err := New(newFixtureProject(t), "malaria")
	require.NoError(t, err)

	rows := project.Table().Maps()

	for _, row := range rows {
		if row["exact"] == "TP53" {
			// * gene records never carried pre/post, cells stay empty
			assert.Equal(t, "", row["pre"])
			assert.Equal(t, "", row["post"])
			assert.Equal(t, "2", row["count"])
		}
		if row["exact"] == "Aedes aegypti" {
			assert.Equal(t, "", row["count"])
			assert.Equal(t, "species", row["plugin"])
			assert.Equal(t, "binomial", row["type"])
		}
	}
}

func TestTableJSONRoundTrip(t *testing.T) {
	project, err := New(newFixtureProject(t), "malaria")
	require.NoError(t, err)

	var buffer bytes.Buffer
	require.NoError(t, project.Table().WriteJSON(&buffer))

	var decoded []map[string]string
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &decoded))

	// * re-parsed rows match the in-memory table exactly
	assert.Equal(t, project.Table().Maps(), decoded)
}

func TestTableWriteCSV(t *testing.T) {
	project, err := New(newFixtureProject(t), "malaria")
	require.NoError(t, err)

	var buffer bytes.Buffer
	require.NoError(t, project.Table().WriteCSV(&buffer))

	records, err := csv.NewReader(&buffer).ReadAll()
	require.NoError(t, err)

	// * header plus one line per record
	require.Len(t, records, 9)
	assert.Equal(t, project.Table().Columns, records[0])
}
