package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindow(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Window
		wantErr bool
	}{
		{name: "today", input: "today", want: WindowToday},
		{name: "week", input: "week", want: WindowWeek},
		{name: "month", input: "month", want: WindowMonth},
		{name: "unknown", input: "year", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWindow(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWindowBounds(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2024-01-17 is a Wednesday.
	wednesday := time.Date(2024, 1, 17, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		now       time.Time
		loc       *time.Location
		wantStart time.Time
		wantEnd   time.Time
		name      string
		window    Window
	}{
		{
			name:      "today",
			window:    WindowToday,
			now:       wednesday,
			loc:       time.UTC,
			wantStart: time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "week starts Monday",
			window:    WindowWeek,
			now:       wednesday,
			loc:       time.UTC,
			wantStart: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "week on a Sunday still belongs to the Monday week",
			window:    WindowWeek,
			now:       time.Date(2024, 1, 21, 10, 0, 0, 0, time.UTC),
			loc:       time.UTC,
			wantStart: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "week on a Monday starts that day",
			window:    WindowWeek,
			now:       time.Date(2024, 1, 15, 0, 0, 1, 0, time.UTC),
			loc:       time.UTC,
			wantStart: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "month",
			window:    WindowMonth,
			now:       wednesday,
			loc:       time.UTC,
			wantStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "today respects the user's timezone",
			window:    WindowToday,
			now:       time.Date(2024, 1, 15, 0, 30, 0, 0, time.UTC), // still Jan 14 in New York
			loc:       newYork,
			wantStart: time.Date(2024, 1, 14, 0, 0, 0, 0, newYork),
			wantEnd:   time.Date(2024, 1, 15, 0, 0, 0, 0, newYork),
		},
		{
			name:      "nil location falls back to UTC",
			window:    WindowToday,
			now:       wednesday,
			loc:       nil,
			wantStart: time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.window.Bounds(tt.now, tt.loc)
			assert.True(t, start.Equal(tt.wantStart), "start: got %v, want %v", start, tt.wantStart)
			assert.True(t, end.Equal(tt.wantEnd), "end: got %v, want %v", end, tt.wantEnd)
		})
	}
}
