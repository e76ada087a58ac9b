package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/axisroll/internal/grid"
)

func TestGrid(t *testing.T) {
	g, err := grid.Labeled(2, 2, 2)
	require.NoError(t, err)

	tests := []struct {
		name string
		rows int
		want string
	}{
		{
			name: "all rows",
			rows: 0,
			want: "[[['000' '001']\n  ['010' '011']]\n\n [['100' '101']\n  ['110' '111']]]\n",
		},
		{
			name: "prefix",
			rows: 1,
			want: "[[['000' '001']\n  ['010' '011']]]\n",
		},
		{
			name: "rows beyond extent",
			rows: 5,
			want: "[[['000' '001']\n  ['010' '011']]\n\n [['100' '101']\n  ['110' '111']]]\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Grid(&buf, g, tt.rows))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestSeparator(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Separator(&buf, 60))
	assert.Equal(t, strings.Repeat("=", 60)+"\n", buf.String())

	buf.Reset()
	require.NoError(t, Separator(&buf, -1))
	assert.Equal(t, "\n", buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestGrid_WriteError(t *testing.T) {
	g, err := grid.Labeled(1, 1, 1)
	require.NoError(t, err)
	assert.Error(t, Grid(failWriter{}, g, 1))
}
