package internal

import (
	"formpick/internal/controllers"
	"formpick/internal/providers"
	"net/http"
)

type Controllers struct {
	Members    *controllers.MemberController
	Machines   *controllers.MachineController
	Schedule   *controllers.ScheduleController
	Logs       *controllers.WorkoutLogController
	Assessment *controllers.AssessmentController
	Feedback   *controllers.FeedbackController
	Dashboard  *controllers.DashboardController
}

func InitRoutes(c *Controllers) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/api/dashboard", http.HandlerFunc(c.Dashboard.Dashboard))

	routers.Get("/api/members", http.HandlerFunc(c.Members.List))
	routers.Post("/api/members", http.HandlerFunc(c.Members.Add))
	routers.Get("/api/members/{id}", http.HandlerFunc(c.Members.Get))
	routers.Delete("/api/members/{id}", http.HandlerFunc(c.Members.Remove))
	routers.Post("/api/members/{id}/purchase", http.HandlerFunc(c.Members.Purchase))
	routers.Post("/api/members/{id}/deduct", http.HandlerFunc(c.Members.Deduct))
	routers.Post("/api/members/{id}/refund", http.HandlerFunc(c.Members.Refund))
	routers.Post("/api/members/{id}/edit", http.HandlerFunc(c.Members.ManualEdit))
	routers.Get("/api/members/{id}/logs", http.HandlerFunc(c.Logs.MemberLogs))

	routers.Get("/api/machines", http.HandlerFunc(c.Machines.List))
	routers.Post("/api/machines", http.HandlerFunc(c.Machines.Add))
	routers.Delete("/api/machines/{name}", http.HandlerFunc(c.Machines.Remove))

	routers.Get("/api/events", http.HandlerFunc(c.Schedule.Events))
	routers.Post("/api/events", http.HandlerFunc(c.Schedule.Create))
	routers.Get("/api/events/today", http.HandlerFunc(c.Schedule.Today))
	routers.Put("/api/events/{id}", http.HandlerFunc(c.Schedule.Edit))
	routers.Post("/api/events/{id}/cancel", http.HandlerFunc(c.Schedule.Cancel))
	routers.Get("/api/calendar", http.HandlerFunc(c.Schedule.Calendar))
	routers.Get("/api/changes", http.HandlerFunc(c.Schedule.Changes))
	routers.Get("/api/notifications", http.HandlerFunc(c.Schedule.Notifications))
	routers.Post("/api/notifications/read-all", http.HandlerFunc(c.Schedule.MarkAllRead))
	routers.Post("/api/notifications/{id}/read", http.HandlerFunc(c.Schedule.MarkRead))

	const log = "/api/logs/{member}/{date}"
	routers.Get("/api/logs/recent", http.HandlerFunc(c.Logs.Recent))
	routers.Get(log, http.HandlerFunc(c.Logs.Get))
	routers.Delete(log, http.HandlerFunc(c.Logs.Clear))
	routers.Put(log+"/header", http.HandlerFunc(c.Logs.UpdateHeader))
	routers.Post(log+"/exercises", http.HandlerFunc(c.Logs.AddExercise))
	routers.Put(log+"/exercises/{ex}", http.HandlerFunc(c.Logs.UpdateExercise))
	routers.Delete(log+"/exercises/{ex}", http.HandlerFunc(c.Logs.RemoveExercise))
	routers.Post(log+"/exercises/{ex}/sets", http.HandlerFunc(c.Logs.AddSet))
	routers.Put(log+"/exercises/{ex}/sets/{set}", http.HandlerFunc(c.Logs.UpdateSet))
	routers.Delete(log+"/exercises/{ex}/sets/{set}", http.HandlerFunc(c.Logs.RemoveSet))
	routers.Get(log+"/summary", http.HandlerFunc(c.Logs.Summary))
	routers.Post(log+"/share", http.HandlerFunc(c.Logs.Share))

	routers.Get("/api/catalog", http.HandlerFunc(c.Assessment.Catalog))
	routers.Get("/api/assessment/answers", http.HandlerFunc(c.Assessment.Answers))
	routers.Put("/api/assessment/answers", http.HandlerFunc(c.Assessment.SaveAnswers))
	routers.Get("/api/assessment/result", http.HandlerFunc(c.Assessment.Result))

	routers.Get("/api/feedback", http.HandlerFunc(c.Feedback.Request))
	routers.Post("/api/feedback", http.HandlerFunc(c.Feedback.Submit))
	routers.Get("/api/feedback/coach", http.HandlerFunc(c.Feedback.CoachNote))
	routers.Put("/api/feedback/coach", http.HandlerFunc(c.Feedback.SaveCoachNote))
	return routers
}
