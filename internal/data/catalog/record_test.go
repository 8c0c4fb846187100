package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-reservation/internal/data/entity"
)

func TestParseRecord_ValidRow(t *testing.T) {
	record, err := ParseRecord("AAA|Inception|4/1/2025|Morning|100|80|12.50|English|Sci-Fi", "|")
	require.NoError(t, err)

	assert.Equal(t, "AAA", record.Code)
	assert.Equal(t, "Inception", record.Title)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), record.Date)
	assert.Equal(t, entity.TimeOfDayMorning, record.TimeOfDay)
	assert.Equal(t, 100, record.TotalSeats)
	assert.Equal(t, 80, record.AvailableSeats)
	assert.Equal(t, 12.50, record.Price)
	assert.Equal(t, "English", record.Language)
	assert.Equal(t, "Sci-Fi", record.Genre)
}

func TestParseRecord_TrimsFieldsAndIgnoresLabelCase(t *testing.T) {
	record, err := ParseRecord("  aaa | Inception | 4/1/2025 |  EVENING | 100 | 80 | 12.50 | English | Sci-Fi ", "|")
	require.NoError(t, err)

	// case normalization of the code is the registry's job, not the parser's
	assert.Equal(t, "aaa", record.Code)
	assert.Equal(t, "Inception", record.Title)
	assert.Equal(t, entity.TimeOfDayEvening, record.TimeOfDay)
}

func TestParseRecord_Failures(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{
			name:    "too few fields",
			line:    "AAA|Inception|4/1/2025",
			wantErr: ErrMalformedRow,
		},
		{
			name:    "blank line",
			line:    "",
			wantErr: ErrMalformedRow,
		},
		{
			name:    "ISO date instead of M/d/yyyy",
			line:    "AAA|Inception|2025-04-01|Morning|100|80|12.50|English|Sci-Fi",
			wantErr: ErrInvalidDate,
		},
		{
			name:    "unknown time slot",
			line:    "AAA|Inception|4/1/2025|Midnight|100|80|12.50|English|Sci-Fi",
			wantErr: ErrInvalidTimeSlot,
		},
		{
			name:    "non-numeric total seats",
			line:    "AAA|Inception|4/1/2025|Morning|lots|80|12.50|English|Sci-Fi",
			wantErr: ErrInvalidNumber,
		},
		{
			name:    "non-numeric available seats",
			line:    "AAA|Inception|4/1/2025|Morning|100|some|12.50|English|Sci-Fi",
			wantErr: ErrInvalidNumber,
		},
		{
			name:    "non-numeric price",
			line:    "AAA|Inception|4/1/2025|Morning|100|80|cheap|English|Sci-Fi",
			wantErr: ErrInvalidNumber,
		},
		{
			name:    "available exceeds total",
			line:    "AAA|Inception|4/1/2025|Morning|100|120|12.50|English|Sci-Fi",
			wantErr: ErrInvalidNumber,
		},
		{
			name:    "negative available seats",
			line:    "AAA|Inception|4/1/2025|Morning|100|-5|12.50|English|Sci-Fi",
			wantErr: ErrInvalidNumber,
		},
		{
			name:    "negative price",
			line:    "AAA|Inception|4/1/2025|Morning|100|80|-1.00|English|Sci-Fi",
			wantErr: ErrInvalidNumber,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			record, err := ParseRecord(tc.line, "|")
			assert.Nil(t, record)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
