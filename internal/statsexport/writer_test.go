package statsexport_test

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"folio/internal/statsexport"
)

func TestWriteUsageWorkbook(t *testing.T) {
	rows := []statsexport.UsageRow{
		{Day: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), PromptType: "popo", Count: 5},
		{Day: time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC), PromptType: "chat_answers", Count: 2},
	}

	data, err := statsexport.WriteUsageWorkbook(rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"AI Usage"}, f.GetSheetList())

	cells, err := f.GetRows("AI Usage")
	require.NoError(t, err)
	require.Len(t, cells, 4)

	assert.Equal(t, []string{"Date", "Prompt Type", "Invocations"}, cells[0])
	assert.Equal(t, []string{"2026-08-20", "popo", "5"}, cells[1])
	assert.Equal(t, []string{"2026-08-21", "chat_answers", "2"}, cells[2])
	assert.Equal(t, "Total", cells[3][0])
	assert.Equal(t, "7", cells[3][2])
}

func TestWriteUsageWorkbook_Empty(t *testing.T) {
	data, err := statsexport.WriteUsageWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	cells, err := f.GetRows("AI Usage")
	require.NoError(t, err)
	require.Len(t, cells, 2)
	assert.Equal(t, "Total", cells[1][0])
	assert.Equal(t, "0", cells[1][2])
}

func TestBuildFilename(t *testing.T) {
	want := fmt.Sprintf("ai_usage_%s.xlsx", time.Now().Format("2006-01-02"))
	assert.Equal(t, want, statsexport.BuildFilename())
}
