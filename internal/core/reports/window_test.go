package reports_test

import (
	"testing"

	"github.com/FinHubBR/finhub_backend/internal/core/domain"
	"github.com/FinHubBR/finhub_backend/internal/core/reports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYearMonth(t *testing.T) {
	cases := []struct {
		date  string
		year  int
		month int
		ok    bool
	}{
		{"2025-03-15", 2025, 3, true},
		{"2025-12", 2025, 12, true},
		{"1999-01-01", 1999, 1, true},
		{"2025-13-01", 0, 0, false},
		{"2025-00-01", 0, 0, false},
		{"2025/03/15", 0, 0, false},
		{"notadate", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tc := range cases {
		y, m, ok := reports.ParseYearMonth(tc.date)
		assert.Equal(t, tc.ok, ok, "date %q", tc.date)
		assert.Equal(t, tc.year, y, "date %q", tc.date)
		assert.Equal(t, tc.month, m, "date %q", tc.date)
	}
}

func TestInMonth(t *testing.T) {
	assert.True(t, reports.InMonth("2025-03-15", 3, 2025))
	assert.False(t, reports.InMonth("2025-03-15", 4, 2025))
	assert.False(t, reports.InMonth("2024-03-15", 3, 2025))
	assert.False(t, reports.InMonth("garbage", 3, 2025))
}

func TestFilterMonth(t *testing.T) {
	txs := []domain.Transaction{
		{ID: "in", Date: "2025-03-01"},
		{ID: "out", Date: "2025-04-01"},
		{ID: "bad", Date: "not-a-date"},
	}

	got := reports.FilterMonth(txs, 3, 2025)

	require.Len(t, got, 1)
	assert.Equal(t, "in", got[0].ID)
}
