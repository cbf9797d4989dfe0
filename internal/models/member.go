package models

import "time"

// Member is the v1 roster record. Only the v1 -> v2 migration reads it.
type Member struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Memo  string `json:"memo,omitempty"`
}

type PassType string

const (
	PassPurchase   PassType = "purchase"
	PassDeduction  PassType = "deduction"
	PassRefund     PassType = "refund"
	PassManualEdit PassType = "manual-edit"
)

// PassHistoryItem explains one change of a member's PT balance or expiry.
type PassHistoryItem struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Type      PassType  `json:"type"`
	Amount    int       `json:"amount"`
	Memo      string    `json:"memo,omitempty"`
	Ref       string    `json:"ref,omitempty"`
}

// MemberV2 is the roster record. RemainingPT only moves together with a
// history entry; History is kept newest first.
type MemberV2 struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Phone       string            `json:"phone,omitempty"`
	RemainingPT int               `json:"remainingPT"`
	ExpiryDate  string            `json:"expiryDate"`
	History     []PassHistoryItem `json:"history"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// SeedMembers is the roster a fresh profile starts with.
var SeedMembers = []Member{
	{ID: "m_001", Name: "김OO", Phone: "010-0000-0000"},
	{ID: "m_002", Name: "이OO", Phone: "010-0000-0000"},
	{ID: "m_003", Name: "박OO", Phone: "010-0000-0000"},
}
