package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(hour, minute int) time.Time {
	return time.Date(2026, time.March, 10, hour, minute, 0, 0, time.UTC)
}

func TestNewInterval_NormalizesToUTC(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)
	start := time.Date(2026, time.March, 10, 13, 0, 0, 0, msk)
	end := time.Date(2026, time.March, 10, 14, 0, 0, 0, msk)

	iv := NewInterval(start, end)

	require.Equal(t, time.UTC, iv.Start.Location())
	require.Equal(t, time.UTC, iv.End.Location())
	assert.True(t, iv.Start.Equal(ts(10, 0)))
	assert.True(t, iv.End.Equal(ts(11, 0)))
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "identical intervals overlap",
			a:    NewInterval(ts(10, 0), ts(11, 0)),
			b:    NewInterval(ts(10, 0), ts(11, 0)),
			want: true,
		},
		{
			name: "partial overlap at the tail",
			a:    NewInterval(ts(10, 0), ts(11, 0)),
			b:    NewInterval(ts(10, 30), ts(11, 30)),
			want: true,
		},
		{
			name: "partial overlap at the head",
			a:    NewInterval(ts(10, 30), ts(11, 30)),
			b:    NewInterval(ts(10, 0), ts(11, 0)),
			want: true,
		},
		{
			name: "containment overlaps",
			a:    NewInterval(ts(10, 0), ts(12, 0)),
			b:    NewInterval(ts(10, 30), ts(11, 0)),
			want: true,
		},
		{
			name: "touching boundary does not overlap",
			a:    NewInterval(ts(10, 0), ts(11, 0)),
			b:    NewInterval(ts(11, 0), ts(12, 0)),
			want: false,
		},
		{
			name: "touching boundary reversed does not overlap",
			a:    NewInterval(ts(11, 0), ts(12, 0)),
			b:    NewInterval(ts(10, 0), ts(11, 0)),
			want: false,
		},
		{
			name: "disjoint intervals do not overlap",
			a:    NewInterval(ts(9, 0), ts(10, 0)),
			b:    NewInterval(ts(12, 0), ts(13, 0)),
			want: false,
		},
		{
			name: "one minute shared overlaps",
			a:    NewInterval(ts(10, 0), ts(11, 1)),
			b:    NewInterval(ts(11, 0), ts(12, 0)),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Предикат симметричен
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestInterval_Validate(t *testing.T) {
	now := ts(9, 0)

	tests := []struct {
		name    string
		iv      Interval
		wantErr error
	}{
		{
			name:    "valid future interval",
			iv:      NewInterval(ts(10, 0), ts(11, 0)),
			wantErr: nil,
		},
		{
			name:    "start equals now is valid",
			iv:      NewInterval(ts(9, 0), ts(10, 0)),
			wantErr: nil,
		},
		{
			name:    "start equals end is invalid",
			iv:      NewInterval(ts(10, 0), ts(10, 0)),
			wantErr: ErrInvalidInterval,
		},
		{
			name:    "start after end is invalid",
			iv:      NewInterval(ts(11, 0), ts(10, 0)),
			wantErr: ErrInvalidInterval,
		},
		{
			name:    "start in the past",
			iv:      NewInterval(ts(8, 0), ts(10, 0)),
			wantErr: ErrPastStart,
		},
		{
			name:    "inverted interval in the past reports invalid interval first",
			iv:      NewInterval(ts(8, 0), ts(7, 0)),
			wantErr: ErrInvalidInterval,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.iv.Validate(now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestInterval_Duration(t *testing.T) {
	iv := NewInterval(ts(10, 0), ts(11, 30))
	assert.Equal(t, 90*time.Minute, iv.Duration())
}

func TestBooking_Blocks(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{StatusConfirmed, true},
		{StatusPending, false},
		{StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.want, b.Blocks())
		})
	}
}

func TestBookingStatus_IsValid(t *testing.T) {
	assert.True(t, StatusConfirmed.IsValid())
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, BookingStatus("archived").IsValid())
	assert.False(t, BookingStatus("").IsValid())
}
