package models

import "time"

// VoucherFlag é a trilha de auditoria do ledger de fraude: uma linha por
// voucher rejeitado como falso, com a evidência capturada no momento.
type VoucherFlag struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID      uint  `gorm:"index;not null" json:"client_id"`
	AppointmentID *uint `json:"appointment_id"`

	Reason        string  `gorm:"size:255;not null" json:"reason"`
	VoucherNumber string  `gorm:"size:50" json:"voucher_number"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `gorm:"size:20" json:"payment_method"`
	FlaggedBy     string  `gorm:"size:100" json:"flagged_by"`

	CreatedAt time.Time `json:"created_at"`
}
