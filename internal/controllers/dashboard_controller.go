package controllers

import (
	"formpick/internal/services"
	"net/http"
)

type DashboardController struct {
	rs      *Responder
	service services.DashboardServiceInterface
}

func NewDashboardController(rs *Responder, service services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{rs: rs, service: service}
}

func (dc *DashboardController) Dashboard(w http.ResponseWriter, r *http.Request) {
	dc.rs.cached(w, r, func() (any, error) {
		return dc.service.Dashboard(), nil
	})
}
