package account

import "errors"

var (
	ErrNothingToUpdate  = errors.New("no profile fields to update")
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
	ErrStatsUnavailable = errors.New("statistics are not available")
	ErrInvalidPage      = errors.New("skip and limit must not be negative")
	ErrWearNotFound     = errors.New("wear entry not found")
)
