package create_booking

import (
	"fmt"
	"time"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
	"github.com/llbeautybar/salon-booking-service/pkg/types"
)

func validateRequest(req Request, now time.Time) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: service id must be positive", ErrInvalidInput)
	}
	if req.MasterID <= 0 {
		return fmt.Errorf("%w: master id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := types.NewTimeStringFromString(req.Time.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.Comment != nil && len(*req.Comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}
	if req.CertificateID != nil && *req.CertificateID <= 0 {
		return fmt.Errorf("%w: certificate id must be positive", ErrInvalidInput)
	}

	startsAt := time.Date(
		req.Date.Year(), req.Date.Month(), req.Date.Day(),
		req.Time.Minutes()/60, req.Time.Minutes()%60, 0, 0, now.Location(),
	)
	if startsAt.Before(now) {
		return ErrPastTime
	}

	return nil
}
