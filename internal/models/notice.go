package models

import "errors"

// Notice is a user-facing rejection. The operation that returns it has not
// mutated any state.
type Notice struct {
	Code    string
	Message string
}

func (n *Notice) Error() string {
	return n.Message
}

func NewNotice(code, message string) *Notice {
	return &Notice{Code: code, Message: message}
}

// AsNotice unwraps err into a Notice when it carries one.
func AsNotice(err error) (*Notice, bool) {
	var n *Notice
	if errors.As(err, &n) {
		return n, true
	}
	return nil, false
}

var (
	ErrMemberRequired       = NewNotice("member_required", "a member must be selected")
	ErrMemberNotFound       = NewNotice("member_not_found", "member not found")
	ErrNameRequired         = NewNotice("name_required", "name is required")
	ErrTimeRequired         = NewNotice("time_required", "time is required")
	ErrInvalidTime          = NewNotice("invalid_time", "time must be HH:mm")
	ErrInvalidDate          = NewNotice("invalid_date", "date must be YYYY-MM-DD")
	ErrInvalidStatus        = NewNotice("invalid_status", "unknown event status")
	ErrDuplicateBooking     = NewNotice("duplicate_booking", "the member already has a booking at this time")
	ErrEventNotFound        = NewNotice("event_not_found", "schedule event not found")
	ErrNotificationNotFound = NewNotice("notification_not_found", "notification not found")
	ErrAbsentAttendance     = NewNotice("absent_attendance", "exercises cannot be recorded while attendance is absent")
	ErrInvalidAttendance    = NewNotice("invalid_attendance", "unknown attendance status")
	ErrExerciseNotFound     = NewNotice("exercise_not_found", "exercise not found")
	ErrSetNotFound          = NewNotice("set_not_found", "set not found")
	ErrNegativeValue        = NewNotice("negative_value", "weight and reps must not be negative")
	ErrInvalidCount         = NewNotice("invalid_count", "count must be positive")
	ErrInsufficientPT       = NewNotice("insufficient_pt", "not enough remaining sessions")
	ErrMachineRequired      = NewNotice("machine_required", "machine name is required")
	ErrMachineExists        = NewNotice("machine_exists", "machine is already registered")
	ErrUnknownPhoto         = NewNotice("unknown_photo", "unknown photo slot")
	ErrNotEnoughPhotos      = NewNotice("not_enough_photos", "upload at least three photos (front/side/back recommended)")
	ErrClipboard            = NewNotice("clipboard_failed", "copy failed, check clipboard permissions")
)
