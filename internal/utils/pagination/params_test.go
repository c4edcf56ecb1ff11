package pagination_test

import (
	"testing"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
	"github.com/fintrackr/finance_tracker_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		name       string
		offset     string
		limit      string
		defLimit   int
		maxLimit   int
		want       pagination.Params
		wantErr    bool
	}{
		{
			name:     "defaults when both absent",
			defLimit: 10,
			maxLimit: 100,
			want:     pagination.Params{Offset: 0, Limit: 10},
		},
		{
			name:     "limit parsed from its own parameter, not offset",
			offset:   "20",
			limit:    "5",
			defLimit: 10,
			maxLimit: 100,
			want:     pagination.Params{Offset: 20, Limit: 5},
		},
		{
			name:     "offset alone keeps default limit",
			offset:   "30",
			defLimit: 10,
			maxLimit: 100,
			want:     pagination.Params{Offset: 30, Limit: 10},
		},
		{
			name:     "zero default limit means unbounded",
			defLimit: 0,
			maxLimit: 100,
			want:     pagination.Params{Offset: 0, Limit: 0},
		},
		{
			name:     "limit capped at max",
			limit:    "500",
			defLimit: 10,
			maxLimit: 100,
			want:     pagination.Params{Offset: 0, Limit: 100},
		},
		{
			name:     "negative offset rejected",
			offset:   "-1",
			defLimit: 10,
			wantErr:  true,
		},
		{
			name:     "zero limit rejected",
			limit:    "0",
			defLimit: 10,
			wantErr:  true,
		},
		{
			name:     "negative limit rejected",
			limit:    "-5",
			defLimit: 10,
			wantErr:  true,
		},
		{
			name:     "malformed offset rejected",
			offset:   "abc",
			defLimit: 10,
			wantErr:  true,
		},
		{
			name:     "malformed limit rejected",
			limit:    "ten",
			defLimit: 10,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := pagination.ParseParams(tt.offset, tt.limit, tt.defLimit, tt.maxLimit)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidQuery)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, params)
		})
	}
}
