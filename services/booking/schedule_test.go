package booking

import (
	"testing"
	"time"

	"cleansync/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// now is fixed at 09:00 so the whole 10-17 window of the same day is open.
var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func TestPickDate(t *testing.T) {
	idle := models.ScheduleSelection{State: models.ScheduleIdle}

	t.Run("future date accepted", func(t *testing.T) {
		sel, err := PickDate(idle, "2026-03-11", testNow)
		require.NoError(t, err)
		assert.Equal(t, models.ScheduleDatePicked, sel.State)
		assert.Equal(t, "2026-03-11", sel.Date)
		assert.Nil(t, sel.At)
	})

	t.Run("today accepted", func(t *testing.T) {
		sel, err := PickDate(idle, "2026-03-10", testNow)
		require.NoError(t, err)
		assert.Equal(t, models.ScheduleDatePicked, sel.State)
	})

	t.Run("past date rejected", func(t *testing.T) {
		sel, err := PickDate(idle, "2026-03-09", testNow)
		assert.Error(t, err)
		assert.True(t, IsBookingError(err))
		assert.Equal(t, idle, sel)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		sel, err := PickDate(idle, "11/03/2026", testNow)
		assert.Error(t, err)
		assert.Equal(t, idle, sel)
	})

	t.Run("repicking a date discards the committed instant", func(t *testing.T) {
		at := time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC)
		complete := models.ScheduleSelection{State: models.ScheduleComplete, Date: "2026-03-11", At: &at}
		sel, err := PickDate(complete, "2026-03-12", testNow)
		require.NoError(t, err)
		assert.Equal(t, models.ScheduleDatePicked, sel.State)
		assert.Nil(t, sel.At)
	})
}

func TestPickHour(t *testing.T) {
	picked := models.ScheduleSelection{State: models.ScheduleDatePicked, Date: "2026-03-10"}

	t.Run("hour inside window commits with zero minutes", func(t *testing.T) {
		sel, err := PickHour(picked, 14, 10, 17, testNow)
		require.NoError(t, err)
		assert.Equal(t, models.ScheduleComplete, sel.State)
		require.NotNil(t, sel.At)
		assert.Equal(t, 14, sel.At.Hour())
		assert.Equal(t, 0, sel.At.Minute())
	})

	t.Run("window boundaries accepted", func(t *testing.T) {
		for _, hour := range []int{10, 17} {
			sel, err := PickHour(picked, hour, 10, 17, testNow)
			require.NoError(t, err)
			assert.Equal(t, hour, sel.At.Hour())
		}
	})

	t.Run("hour before window rejected", func(t *testing.T) {
		sel, err := PickHour(picked, 9, 10, 17, testNow)
		assert.Error(t, err)
		assert.True(t, IsBookingError(err))
		assert.Equal(t, picked, sel)
	})

	t.Run("hour after window rejected", func(t *testing.T) {
		sel, err := PickHour(picked, 18, 10, 17, testNow)
		assert.Error(t, err)
		assert.Equal(t, picked, sel)
	})

	t.Run("instant not in the future rejected", func(t *testing.T) {
		lateNow := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
		sel, err := PickHour(picked, 14, 10, 17, lateNow)
		assert.Error(t, err)
		assert.Equal(t, picked, sel)
	})

	t.Run("requires a picked date first", func(t *testing.T) {
		idle := models.ScheduleSelection{State: models.ScheduleIdle}
		sel, err := PickHour(idle, 14, 10, 17, testNow)
		assert.Error(t, err)
		assert.Equal(t, idle, sel)
	})

	t.Run("complete selection must be reset before repicking", func(t *testing.T) {
		at := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
		complete := models.ScheduleSelection{State: models.ScheduleComplete, Date: "2026-03-10", At: &at}
		sel, err := PickHour(complete, 15, 10, 17, testNow)
		assert.Error(t, err)
		assert.Equal(t, complete, sel)
	})
}

func TestResetSchedule(t *testing.T) {
	sel := ResetSchedule()
	assert.Equal(t, models.ScheduleIdle, sel.State)
	assert.Empty(t, sel.Date)
	assert.Nil(t, sel.At)
}

func TestValidateScheduledAt(t *testing.T) {
	tests := []struct {
		name        string
		scheduledAt string
		want        string
		wantErr     bool
	}{
		{name: "valid instant", scheduledAt: "2026-03-11 14:00", want: "2026-03-11 14:00"},
		{name: "minutes normalized to zero", scheduledAt: "2026-03-11 14:30", want: "2026-03-11 14:00"},
		{name: "hour before window", scheduledAt: "2026-03-11 09:00", wantErr: true},
		{name: "hour after window", scheduledAt: "2026-03-11 18:00", wantErr: true},
		{name: "past instant", scheduledAt: "2026-03-09 14:00", wantErr: true},
		{name: "malformed", scheduledAt: "tomorrow at noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateScheduledAt(tt.scheduledAt, 10, 17, testNow)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, IsBookingError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
