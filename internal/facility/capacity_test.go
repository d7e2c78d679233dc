package facility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/pkg/types"
)

func TestOverlaps(t *testing.T) {
	ts := types.MustTimeString

	tests := []struct {
		name           string
		s1, e1, s2, e2 string
		want           bool
	}{
		{name: "same window", s1: "10:00", e1: "11:00", s2: "10:00", e2: "11:00", want: true},
		{name: "adjacent windows do not overlap", s1: "10:00", e1: "11:00", s2: "11:00", e2: "12:00", want: false},
		{name: "contained", s1: "09:00", e1: "12:00", s2: "10:00", e2: "11:00", want: true},
		{name: "partial", s1: "10:00", e1: "12:00", s2: "11:00", e2: "13:00", want: true},
		{name: "disjoint", s1: "08:00", e1: "09:00", s2: "15:00", e2: "16:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(ts(tt.s1), ts(tt.e1), ts(tt.s2), ts(tt.e2)))
			assert.Equal(t, tt.want, Overlaps(ts(tt.s2), ts(tt.e2), ts(tt.s1), ts(tt.e1)))
		})
	}
}

func TestOccupancyOf_SharedCountsUnits(t *testing.T) {
	pool := mustLookup(domain.FacilitySwimmingPool)
	slot := Slot{Start: types.MustTimeString("14:00"), End: types.MustTimeString("15:00")}

	cancelled := booking(4, "14:00", "15:00", 9)
	cancelled.Status = domain.StatusCancelled

	bookings := []*domain.Booking{
		booking(1, "14:00", "15:00", 10),
		booking(2, "14:00", "15:00", 5),
		booking(3, "15:00", "16:00", 7),
		cancelled,
	}

	assert.Equal(t, 15, pool.OccupancyOf(slot, bookings))
	assert.Equal(t, 30, pool.CapacityOf())
	assert.True(t, pool.Admits(slot, bookings, 15))
	assert.False(t, pool.Admits(slot, bookings, 16))
}

func TestOccupancyOf_PlaygroundOneUnitPerBooking(t *testing.T) {
	pg := mustLookup(domain.FacilityPlayground)
	slot := Slot{Start: types.MustTimeString("10:00"), End: types.MustTimeString("11:00")}

	bookings := []*domain.Booking{
		booking(1, "10:00", "11:00", 0),
		booking(2, "10:00", "11:00", 0),
	}

	assert.Equal(t, 2, pg.OccupancyOf(slot, bookings))
	assert.Equal(t, 1, pg.UnitsOf(25))
}

func TestOccupancyOf_ExclusiveIntervalOverlap(t *testing.T) {
	hall := mustLookup(domain.FacilityMeetingHall)
	existing := []*domain.Booking{booking(1, "10:00", "12:00", 5)}

	overlapping := Slot{Start: types.MustTimeString("11:00"), End: types.MustTimeString("13:00")}
	after := Slot{Start: types.MustTimeString("12:00"), End: types.MustTimeString("13:00")}

	assert.Equal(t, 1, hall.CapacityOf())
	assert.False(t, hall.Admits(overlapping, existing, 1))
	assert.True(t, hall.Admits(after, existing, 1))
}

func TestWithSettings(t *testing.T) {
	capacity, notice, cutoff := 6, 1, 45

	pg := mustLookup(domain.FacilityPlayground).WithSettings(&domain.FacilitySettings{Capacity: &capacity})
	assert.Equal(t, 6, pg.CapacityOf())

	// exclusive facilities keep capacity 1
	hall := mustLookup(domain.FacilityMeetingHall).WithSettings(&domain.FacilitySettings{
		Capacity:            &capacity,
		AdvanceNoticeDays:   &notice,
		CancelCutoffMinutes: &cutoff,
	})
	assert.Equal(t, 1, hall.CapacityOf())
	assert.Equal(t, 1, hall.AdvanceNoticeDays)
	assert.Equal(t, 45*60, int(hall.Cancellation.Window.Seconds()))

	// the static catalog is not modified
	assert.Equal(t, 4, mustLookup(domain.FacilityPlayground).CapacityOf())
	assert.Equal(t, 0, mustLookup(domain.FacilityMeetingHall).AdvanceNoticeDays)
}
