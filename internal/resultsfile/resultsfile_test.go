package resultsfile_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvstrip/spp/internal/bench"
	"github.com/mvstrip/spp/internal/resultsfile"
)

func TestWriteHeaderAndRow(t *testing.T) {
	rows := []bench.Row{
		{
			N: 3, ConBound: 2, FirstBound: 3,
			ExactHeight: 3, ExactTime: 1500 * time.Microsecond,
			HWHeight: 4, HWTime: 0,
		},
	}

	var buf strings.Builder
	require.NoError(t, resultsfile.Write(&buf, rows))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, resultsfile.Header, lines[0])

	fields := strings.Fields(lines[1])
	require.Len(t, fields, 19)
	assert.Equal(t, "3", fields[0])
	assert.Equal(t, "2", fields[1])
	assert.Equal(t, "3", fields[2])
	assert.Equal(t, "3", fields[3])
	assert.Equal(t, "0.00150", fields[4])
	assert.Equal(t, "4", fields[5])
	assert.Equal(t, "0.00000", fields[6])
	// Every uncomputed strategy field is zero.
	assert.Equal(t, "0", fields[7])
}

func TestWriteEmptyRowsStillEmitsHeader(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, resultsfile.Write(&buf, nil))
	assert.Equal(t, resultsfile.Header+"\n", buf.String())
}
