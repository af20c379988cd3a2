package models

import "time"

// Métodos de pagamento aceitos. Métodos diferentes de cash exigem
// voucher (número e/ou imagem do comprovante).
const (
	PaymentCash     = "cash"
	PaymentYape     = "yape"
	PaymentPlin     = "plin"
	PaymentTransfer = "transfer"
	PaymentCard     = "card"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BranchID uint   `json:"branch_id"`
	Branch   Branch `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"branch"`

	BarberID uint `json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	Services []Service `gorm:"many2many:appointment_services;" json:"services"`

	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	DurationMin int       `json:"duration_min"`
	TotalPrice  float64   `json:"total_price"`

	Status string `gorm:"size:20;default:'pending';index" json:"status"`

	// Payment voucher (non-cash methods only)
	PaymentMethod string `gorm:"size:20" json:"payment_method"`
	VoucherNumber string `gorm:"size:50" json:"voucher_number"`
	VoucherURL    string `gorm:"size:255" json:"voucher_url"`

	PaymentVerified       bool       `json:"payment_verified"`
	PaymentVerifiedAt     *time.Time `json:"payment_verified_at"`
	PaymentVerifiedBy     string     `gorm:"size:100" json:"payment_verified_by"`
	PaymentRejectedReason string     `gorm:"size:255" json:"payment_rejected_reason"`

	// Populated by the approval workflow only
	ReviewedBy      string     `gorm:"size:100" json:"reviewed_by"`
	ReviewedAt      *time.Time `json:"reviewed_at"`
	ReviewNotes     string     `gorm:"size:255" json:"review_notes"`
	RejectionReason string     `gorm:"size:50" json:"rejection_reason"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
