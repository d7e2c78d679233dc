package facility

import (
	"time"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/pkg/types"
)

var (
	testDay = time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	// noon of the day before testDay, so no same-day hour filtering applies
	dayBefore = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
)

func mustLookup(id domain.FacilityID) Adapter {
	a, err := Lookup(id)
	if err != nil {
		panic(err)
	}
	return a
}

func booking(userID int64, start, end string, partySize int) *domain.Booking {
	return &domain.Booking{
		UserID:      userID,
		BookingDate: testDay,
		StartTime:   types.MustTimeString(start),
		EndTime:     types.MustTimeString(end),
		PartySize:   partySize,
		Status:      domain.StatusConfirmed,
	}
}

// book admits the request and appends the resulting booking to the ledger
func book(a Adapter, ledger []*domain.Booking, req Request, now time.Time) ([]*domain.Booking, error) {
	slot, err := Admit(a, req, now, ledger)
	if err != nil {
		return ledger, err
	}
	return append(ledger, NewBooking(a, req, slot)), nil
}
