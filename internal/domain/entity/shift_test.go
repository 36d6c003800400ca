package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftWindowAt_Morning(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC)
	w := ShiftWindowAt(now)

	assert.Equal(t, ShiftMorning, w.Type)
	assert.Equal(t, time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2026, 3, 10, 19, 0, 0, 0, time.UTC), w.End)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), w.Date)
	assert.True(t, w.Contains(now))
}

func TestShiftWindowAt_NightBeforeMidnight(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC)
	w := ShiftWindowAt(now)

	assert.Equal(t, ShiftNight, w.Type)
	assert.Equal(t, time.Date(2026, 3, 10, 19, 0, 0, 0, time.UTC), w.Start)
	// Window end falls on the following calendar day.
	assert.Equal(t, time.Date(2026, 3, 11, 7, 0, 0, 0, time.UTC), w.End)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), w.Date)
}

func TestShiftWindowAt_NightAfterMidnight(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 11, 3, 0, 0, 0, time.UTC)
	w := ShiftWindowAt(now)

	// Early morning still belongs to the shift that started the evening before.
	assert.Equal(t, ShiftNight, w.Type)
	assert.Equal(t, time.Date(2026, 3, 10, 19, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2026, 3, 11, 7, 0, 0, 0, time.UTC), w.End)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), w.Date)
}

func TestShiftWindowAt_Boundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		now      time.Time
		wantType ShiftType
		wantDate time.Time
	}{
		{
			name:     "exactly 07:00 opens the morning shift",
			now:      time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC),
			wantType: ShiftMorning,
			wantDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "exactly 19:00 opens the night shift",
			now:      time.Date(2026, 3, 10, 19, 0, 0, 0, time.UTC),
			wantType: ShiftNight,
			wantDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "one second before 07:00 is still the previous night",
			now:      time.Date(2026, 3, 10, 6, 59, 59, 0, time.UTC),
			wantType: ShiftNight,
			wantDate: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "midnight belongs to the previous day's night shift",
			now:      time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
			wantType: ShiftNight,
			wantDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := ShiftWindowAt(tt.now)
			assert.Equal(t, tt.wantType, w.Type)
			assert.Equal(t, tt.wantDate, w.Date)
			assert.True(t, w.Contains(tt.now))
		})
	}
}

func TestShiftWindow_Contains(t *testing.T) {
	t.Parallel()

	w := ShiftWindowAt(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))

	assert.True(t, w.Contains(w.Start))
	assert.False(t, w.Contains(w.End))
	assert.False(t, w.Contains(w.Start.Add(-time.Second)))
}

func TestOperationDuration(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	op := &Operation{Status: OperationActive, StartTime: start}

	require.Equal(t, 90*time.Minute, op.Duration(start.Add(90*time.Minute)))

	end := start.Add(time.Hour)
	op.EndTime = &end
	// Closed operations ignore the supplied clock.
	require.Equal(t, time.Hour, op.Duration(start.Add(5*time.Hour)))
}

func TestNotificationContentHash_Deterministic(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	first := NotificationContentHash(userID, NotificationMachineStatus, "mensagem")
	second := NotificationContentHash(userID, NotificationMachineStatus, "mensagem")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, NotificationContentHash(userID, NotificationMachineStatus, "outra"))
	assert.NotEqual(t, first, NotificationContentHash(userID, NotificationOperationStarted, "mensagem"))
}
