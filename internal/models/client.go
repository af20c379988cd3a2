package models

import "time"

// Cliente simples, sem login, vinculado à filial. Os campos de segurança
// são escritos apenas pelo ledger de fraude e pelas ações administrativas.
type Client struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BranchID uint `json:"branch_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	// Fraud ledger
	IsFlagged          bool       `json:"is_flagged"`
	FalseVouchersCount int        `json:"false_vouchers_count"`
	Blacklisted        bool       `gorm:"index" json:"blacklisted"`
	LastRejectionDate  *time.Time `json:"last_rejection_date"`

	// Manual flag, independent of the fraud ledger
	IsUnwelcome     bool       `json:"is_unwelcome"`
	UnwelcomeReason string     `gorm:"size:255" json:"unwelcome_reason"`
	UnwelcomeDate   *time.Time `json:"unwelcome_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
