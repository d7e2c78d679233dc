package facility

import (
	"time"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
)

// CheckCancellation returns nil if the booking may still be cancelled at now.
// loc is the facility's timezone, used to place the slot start on the clock.
func (a Adapter) CheckCancellation(b *domain.Booking, now time.Time, loc *time.Location) error {
	if b.IsCancelled() {
		return ErrAlreadyCancelled
	}

	switch a.Cancellation.Kind {
	case CancelBeforeStart:
		deadline := b.StartAt(loc).Add(-a.Cancellation.Window)
		if !now.Before(deadline) {
			return ErrCancellationWindowClosed
		}
	case CancelAfterCreation:
		if now.Sub(b.CreatedAt) > a.Cancellation.Window {
			return ErrCancellationWindowClosed
		}
	}

	return nil
}

// CanCancel boolean form of CheckCancellation
func (a Adapter) CanCancel(b *domain.Booking, now time.Time, loc *time.Location) bool {
	return a.CheckCancellation(b, now, loc) == nil
}
