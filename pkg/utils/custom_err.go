package utils

import "errors"

var (
	ErrExcursionNotFound   = errors.New("excursion not found")
	ErrCountryNotFound     = errors.New("country not found")
	ErrCityNotFound        = errors.New("city not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrReviewNotFound      = errors.New("review not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrAccountNotFound     = errors.New("account not found")
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDateRequired       = errors.New("booking date is required")
	ErrDateInPast         = errors.New("date cannot be in the past")
	ErrPeopleCountTooLow  = errors.New("people count must be greater than 0")
	ErrCapacityExceeded   = errors.New("people count exceeds excursion capacity")
	ErrBookingNotPending  = errors.New("only pending bookings can be cancelled")
	ErrInvalidTransition  = errors.New("status transition is not allowed")
	ErrReviewExists       = errors.New("review already exists for this excursion")
	ErrReviewNotEligible  = errors.New("a confirmed or completed booking is required to leave a review")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrUnknownItemType    = errors.New("unknown favorite item type")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email is already registered")
	ErrForbidden          = errors.New("operation not permitted")
)

var (
	ErrGmailNotLinked    = errors.New("gmail account is not linked")
	ErrGmailStateInvalid = errors.New("oauth state is invalid or expired")
)

var ErrDatabaseError = errors.New("database error")
