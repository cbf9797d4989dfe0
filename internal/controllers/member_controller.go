package controllers

import (
	"formpick/internal/services"
	"net/http"
)

type memberInput struct {
	Name  string `json:"name" validate:"maxLen:40"`
	Phone string `json:"phone" validate:"maxLen:20"`
}

type passInput struct {
	Count int    `json:"count"`
	Ref   string `json:"ref" validate:"maxLen:64"`
	Memo  string `json:"memo" validate:"maxLen:200"`
}

type manualEditInput struct {
	RemainingPT int    `json:"remainingPT"`
	ExpiryDate  string `json:"expiryDate" validate:"maxLen:10"`
}

type MemberController struct {
	rs      *Responder
	service services.MemberServiceInterface
}

func NewMemberController(rs *Responder, service services.MemberServiceInterface) *MemberController {
	return &MemberController{rs: rs, service: service}
}

// List answers the roster, filtered by ?q= over name and phone.
func (mc *MemberController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	mc.rs.cached(w, r, func() (any, error) {
		return mc.service.Search(q), nil
	})
}

func (mc *MemberController) Add(w http.ResponseWriter, r *http.Request) {
	var in memberInput
	if !mc.rs.decode(w, r, &in) {
		return
	}
	m, err := mc.service.Add(in.Name, in.Phone)
	mc.rs.respond(w, r, http.StatusCreated, m, err)
}

func (mc *MemberController) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	mc.rs.cached(w, r, func() (any, error) {
		return mc.service.Get(id)
	})
}

func (mc *MemberController) Remove(w http.ResponseWriter, r *http.Request) {
	if err := mc.service.Remove(r.PathValue("id")); err != nil {
		mc.rs.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (mc *MemberController) Purchase(w http.ResponseWriter, r *http.Request) {
	var in passInput
	if !mc.rs.decode(w, r, &in) {
		return
	}
	m, err := mc.service.RegisterPurchase(r.PathValue("id"), in.Count, in.Memo)
	mc.rs.respond(w, r, http.StatusOK, m, err)
}

func (mc *MemberController) Deduct(w http.ResponseWriter, r *http.Request) {
	var in passInput
	if !mc.rs.decode(w, r, &in) {
		return
	}
	m, err := mc.service.Deduct(r.PathValue("id"), in.Count, in.Ref, in.Memo)
	mc.rs.respond(w, r, http.StatusOK, m, err)
}

func (mc *MemberController) Refund(w http.ResponseWriter, r *http.Request) {
	var in passInput
	if !mc.rs.decode(w, r, &in) {
		return
	}
	m, err := mc.service.Refund(r.PathValue("id"), in.Count, in.Memo)
	mc.rs.respond(w, r, http.StatusOK, m, err)
}

func (mc *MemberController) ManualEdit(w http.ResponseWriter, r *http.Request) {
	var in manualEditInput
	if !mc.rs.decode(w, r, &in) {
		return
	}
	m, err := mc.service.ManualEdit(r.PathValue("id"), in.RemainingPT, in.ExpiryDate)
	mc.rs.respond(w, r, http.StatusOK, m, err)
}
