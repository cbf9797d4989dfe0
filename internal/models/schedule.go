package models

import "time"

type EventStatus string

const (
	StatusRequested EventStatus = "requested"
	StatusConfirmed EventStatus = "confirmed"
	StatusCompleted EventStatus = "completed"
	StatusCanceled  EventStatus = "canceled"
)

func (s EventStatus) Valid() bool {
	switch s {
	case StatusRequested, StatusConfirmed, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

type ScheduleEvent struct {
	ID          string      `json:"id"`
	MemberID    string      `json:"memberId"`
	MemberName  string      `json:"memberName"`
	DateISO     string      `json:"dateISO"`
	Time        string      `json:"time"`
	DurationMin int         `json:"durationMin"`
	Status      EventStatus `json:"status"`
	Note        string      `json:"note,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Active reports whether the event occupies its slot.
func (e *ScheduleEvent) Active() bool {
	return e.Status != StatusCanceled
}

type ChangeType string

const (
	ChangeRequested ChangeType = "requested"
	ChangeChanged   ChangeType = "changed"
	ChangeCanceled  ChangeType = "canceled"
)

type ChangeStatus string

const (
	ChangePending   ChangeStatus = "pending"
	ChangeConfirmed ChangeStatus = "confirmed"
)

// ChangeItem is an append-only audit entry of a scheduling action.
type ChangeItem struct {
	ID         string       `json:"id"`
	CreatedAt  time.Time    `json:"createdAt"`
	MemberName string       `json:"memberName"`
	Type       ChangeType   `json:"type"`
	Before     string       `json:"before,omitempty"`
	After      string       `json:"after,omitempty"`
	DateISO    string       `json:"dateISO"`
	Time       string       `json:"time"`
	Status     ChangeStatus `json:"status"`
}

type NotificationItem struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
}
