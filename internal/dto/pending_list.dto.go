package dto

import (
	"time"

	"github.com/BruksfildServices01/barber-chain/internal/models"
)

// PendingAppointment é a projeção usada pelos painéis de recepção:
// agendamento + badges de segurança do cliente.
type PendingAppointment struct {
	ID          uint      `json:"id"`
	Status      string    `json:"status"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	DurationMin int       `json:"duration_min"`
	TotalPrice  float64   `json:"total_price"`

	ClientID    uint   `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`

	ClientFlagged     bool `json:"client_flagged"`
	ClientBlacklisted bool `json:"client_blacklisted"`

	PaymentMethod string `json:"payment_method"`
	VoucherNumber string `json:"voucher_number"`
	VoucherURL    string `json:"voucher_url"`

	Services []string `json:"services"`
}

func FromAppointment(ap models.Appointment) PendingAppointment {
	services := make([]string, 0, len(ap.Services))
	for _, svc := range ap.Services {
		services = append(services, svc.Name)
	}

	return PendingAppointment{
		ID:          ap.ID,
		Status:      ap.Status,
		StartTime:   ap.StartTime,
		EndTime:     ap.EndTime,
		DurationMin: ap.DurationMin,
		TotalPrice:  ap.TotalPrice,

		ClientID:    ap.ClientID,
		ClientName:  ap.Client.Name,
		ClientPhone: ap.Client.Phone,

		ClientFlagged:     ap.Client.IsFlagged,
		ClientBlacklisted: ap.Client.Blacklisted,

		PaymentMethod: ap.PaymentMethod,
		VoucherNumber: ap.VoucherNumber,
		VoucherURL:    ap.VoucherURL,

		Services: services,
	}
}

func FromAppointments(aps []models.Appointment) []PendingAppointment {
	out := make([]PendingAppointment, 0, len(aps))
	for _, ap := range aps {
		out = append(out, FromAppointment(ap))
	}
	return out
}
