package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableData(t *testing.T) {
	table := NewTableData("Dir", "Blocks")

	assert.Equal(t, []string{"Dir", "Blocks"}, table.Headers())
	assert.Empty(t, table.Rows())

	table.AddRow("/data/dn1", "4")
	table.AddRow("/data/dn2", "3")

	rows := table.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"/data/dn1", "4"}, rows[0])
	assert.Equal(t, []string{"/data/dn2", "3"}, rows[1])
}

func TestPrintTable(t *testing.T) {
	table := NewTableData("Name", "Value")
	table.AddRow("key1", "value1")
	table.AddRow("key2", "value2")

	var buf bytes.Buffer
	err := PrintTable(&buf, table)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "VALUE")
	assert.Contains(t, out, "key1")
	assert.Contains(t, out, "value2")
}

func TestPrintTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := PrintTable(&buf, NewTableData("Only", "Headers"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "ONLY")
}
