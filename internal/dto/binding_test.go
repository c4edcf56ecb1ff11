package dto_test

import (
	"testing"
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "full RFC 3339 timestamp",
			value: "2024-01-15T09:30:00Z",
			want:  time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
		},
		{
			name:  "timestamp with offset normalizes to UTC",
			value: "2024-01-15T10:30:00+01:00",
			want:  time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
		},
		{
			name:  "bare calendar date",
			value: "2024-01-15",
			want:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "slash-separated date rejected",
			value:   "15/01/2024",
			wantErr: true,
		},
		{
			name:    "empty string rejected",
			value:   "",
			wantErr: true,
		},
		{
			name:    "free text rejected",
			value:   "yesterday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dto.ParseTransactionDate(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}
