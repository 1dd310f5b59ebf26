package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/blockgen/internal/cli/output"
	"github.com/marmos91/blockgen/pkg/datanode"
)

func TestPlanTable(t *testing.T) {
	plan := planTable{
		{StorageDir: "/data/dn1", StartID: 1000000, Count: 4},
		{StorageDir: "/data/dn2", StartID: 1000004, Count: 3},
	}

	assert.Equal(t, []string{"STORAGE DIR", "START ID", "END ID", "BLOCKS"}, plan.Headers())

	rows := plan.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"/data/dn1", "1000000", "1000003", "4"}, rows[0])
	assert.Equal(t, []string{"/data/dn2", "1000004", "1000006", "3"}, rows[1])
}

func TestPlanTable_Render(t *testing.T) {
	plan := planTable(datanode.BuildPlan([]string{"/d1", "/d2", "/d3"}, 10, 1000))

	var buf bytes.Buffer
	require.NoError(t, output.PrintTable(&buf, plan))

	out := buf.String()
	assert.Contains(t, out, "/d1")
	assert.Contains(t, out, "/d3")
	// Remainder row for the first directory
	assert.Contains(t, out, "1009")
}

func TestInjectCmd_RequiredFlags(t *testing.T) {
	for _, flag := range []string{"bpid", "numblocks", "block", "meta"} {
		f := injectCmd.Flags().Lookup(flag)
		require.NotNil(t, f, "flag %s", flag)
		required := f.Annotations[cobra.BashCompOneRequiredFlag]
		require.NotEmpty(t, required, "flag %s should be required", flag)
		assert.Equal(t, "true", required[0])
	}
}
