package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ahmedm-02/OUSD-Literacy-Disparities/pkg/zone"
)

func testSummary(t *testing.T) *Summary {
	t.Helper()
	d := newTestDriver(tableLoader{"edi-interest.csv": interestRows()}, 1)
	s, err := d.Rankings(zone.Interest, 0)
	require.NoError(t, err)
	return s
}

func TestRenderPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPNG(&buf, testSummary(t)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "interest.png")
	require.NoError(t, SavePNG(path, testSummary(t)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSaveWorkbook(t *testing.T) {
	s := testSummary(t)
	path := filepath.Join(t.TempDir(), "interest.xlsx")
	require.NoError(t, SaveWorkbook(path, s))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	require.Len(t, rows, 16)
	assert.Equal(t, []string{"Zone", "Size", "Ready", "Middle", "Not Ready", "Mean"}, rows[0])
	assert.Equal(t, "Zone 1", rows[1][0])
	assert.Equal(t, "100", rows[1][1])
	assert.Equal(t, "0.8", rows[1][2])
}

func TestCategoryColor(t *testing.T) {
	assert.Equal(t, "3caa57", categoryColor(zone.Ready))
	assert.Equal(t, "fb3640", categoryColor(zone.NotReady))
	assert.Equal(t, "a0a0a0", categoryColor("Other"))
}
