package controllers

import (
	"formpick/internal/models"
	"formpick/internal/providers"
	"formpick/internal/services"
	"net/http"
	"time"
)

const defaultFeedLimit = 20

type eventInput struct {
	MemberID    string `json:"memberId" validate:"maxLen:64"`
	DateISO     string `json:"dateISO" validate:"maxLen:10"`
	Time        string `json:"time" validate:"maxLen:5"`
	DurationMin int    `json:"durationMin" validate:"min:0|max:600"`
	Status      string `json:"status" validate:"maxLen:16"`
	Note        string `json:"note" validate:"maxLen:500"`
}

func (in eventInput) toService() services.CreateEventInput {
	return services.CreateEventInput{
		MemberID:    in.MemberID,
		DateISO:     in.DateISO,
		Time:        in.Time,
		DurationMin: in.DurationMin,
		Status:      models.EventStatus(in.Status),
		Note:        in.Note,
	}
}

type calendarQuery struct {
	Year  int `validate:"required|min:1970|max:9999"`
	Month int `validate:"required|min:1|max:12"`
}

type feedQuery struct {
	Limit int `validate:"min:0|max:500"`
}

type notificationsResponse struct {
	Items  []models.NotificationItem `json:"items"`
	Unread int                       `json:"unread"`
}

type ScheduleController struct {
	rs      *Responder
	service services.ScheduleServiceInterface
	clock   providers.Clock
}

func NewScheduleController(rs *Responder, service services.ScheduleServiceInterface, clock providers.Clock) *ScheduleController {
	return &ScheduleController{rs: rs, service: service, clock: clock}
}

// Events lists every booking, or one day's bookings by time when ?date= is set.
func (sc *ScheduleController) Events(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	sc.rs.cached(w, r, func() (any, error) {
		if date == "" {
			return sc.service.Events(), nil
		}
		return sc.service.DayEvents(date), nil
	})
}

func (sc *ScheduleController) Today(w http.ResponseWriter, r *http.Request) {
	sc.rs.cached(w, r, func() (any, error) {
		return sc.service.TodayEvents(), nil
	})
}

func (sc *ScheduleController) Create(w http.ResponseWriter, r *http.Request) {
	var in eventInput
	if !sc.rs.decode(w, r, &in) {
		return
	}
	ev, err := sc.service.CreateEvent(in.toService())
	sc.rs.respond(w, r, http.StatusCreated, ev, err)
}

func (sc *ScheduleController) Edit(w http.ResponseWriter, r *http.Request) {
	var in eventInput
	if !sc.rs.decode(w, r, &in) {
		return
	}
	ev, err := sc.service.EditEvent(r.PathValue("id"), in.toService())
	sc.rs.respond(w, r, http.StatusOK, ev, err)
}

func (sc *ScheduleController) Cancel(w http.ResponseWriter, r *http.Request) {
	ev, err := sc.service.CancelEvent(r.PathValue("id"))
	sc.rs.respond(w, r, http.StatusOK, ev, err)
}

// Calendar answers the month grid. Without ?year=&month= it opens on the
// current month.
func (sc *ScheduleController) Calendar(w http.ResponseWriter, r *http.Request) {
	year, month := services.CurrentMonth(sc.clock)
	q := calendarQuery{Year: year, Month: int(month)}

	var err error
	if q.Year, err = queryInt(r, "year", q.Year); err != nil {
		sc.rs.badRequest(w, "year must be a number")
		return
	}
	if q.Month, err = queryInt(r, "month", q.Month); err != nil {
		sc.rs.badRequest(w, "month must be a number")
		return
	}
	if !sc.rs.check(w, &q) {
		return
	}

	sc.rs.cached(w, r, func() (any, error) {
		return sc.service.MonthView(q.Year, time.Month(q.Month)), nil
	})
}

func (sc *ScheduleController) feedLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	limit, err := queryInt(r, "limit", defaultFeedLimit)
	if err != nil {
		sc.rs.badRequest(w, "limit must be a number")
		return 0, false
	}
	q := feedQuery{Limit: limit}
	if !sc.rs.check(w, &q) {
		return 0, false
	}
	return q.Limit, true
}

func (sc *ScheduleController) Changes(w http.ResponseWriter, r *http.Request) {
	limit, ok := sc.feedLimit(w, r)
	if !ok {
		return
	}
	sc.rs.cached(w, r, func() (any, error) {
		return sc.service.Changes(limit), nil
	})
}

func (sc *ScheduleController) Notifications(w http.ResponseWriter, r *http.Request) {
	limit, ok := sc.feedLimit(w, r)
	if !ok {
		return
	}
	sc.rs.cached(w, r, func() (any, error) {
		return notificationsResponse{
			Items:  sc.service.Notifications(limit),
			Unread: sc.service.UnreadCount(),
		}, nil
	})
}

func (sc *ScheduleController) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := sc.service.MarkNotificationRead(r.PathValue("id")); err != nil {
		sc.rs.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (sc *ScheduleController) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := sc.service.MarkAllNotificationsRead(); err != nil {
		sc.rs.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
