package controllers

import (
	"formpick/internal/services"
	"net/http"
)

type machineInput struct {
	Name string `json:"name" validate:"maxLen:40"`
}

type MachineController struct {
	rs      *Responder
	service services.MachineServiceInterface
}

func NewMachineController(rs *Responder, service services.MachineServiceInterface) *MachineController {
	return &MachineController{rs: rs, service: service}
}

func (mc *MachineController) List(w http.ResponseWriter, r *http.Request) {
	mc.rs.cached(w, r, func() (any, error) {
		return mc.service.List(), nil
	})
}

func (mc *MachineController) Add(w http.ResponseWriter, r *http.Request) {
	var in machineInput
	if !mc.rs.decode(w, r, &in) {
		return
	}
	machines, err := mc.service.Add(in.Name)
	mc.rs.respond(w, r, http.StatusCreated, machines, err)
}

func (mc *MachineController) Remove(w http.ResponseWriter, r *http.Request) {
	machines, err := mc.service.Remove(r.PathValue("name"))
	mc.rs.respond(w, r, http.StatusOK, machines, err)
}
