package appointment

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-chain/internal/audit"
	domain "github.com/BruksfildServices01/barber-chain/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-chain/internal/httperr"
	"github.com/BruksfildServices01/barber-chain/internal/models"
)

var errStorage = errors.New("storage failure")

// fakeRepo implementa domain.Repository em memória. InTx serializa e
// restaura um snapshot em caso de erro, espelhando o rollback do gorm.
type fakeRepo struct {
	mu sync.Mutex

	branches     map[uint]models.Branch
	clients      map[uint]models.Client
	services     map[uint]models.Service
	appointments map[uint]models.Appointment
	flags        []models.VoucherFlag

	nextClientID      uint
	nextAppointmentID uint

	failUpdateAppointment bool
	failSaveClient        bool
	failCreateFlag        bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		branches: map[uint]models.Branch{
			1: {ID: 1, Name: "Sede Centro", Slug: "sede-centro", Timezone: "America/Lima"},
		},
		clients:           map[uint]models.Client{},
		services:          map[uint]models.Service{},
		appointments:      map[uint]models.Appointment{},
		nextClientID:      1,
		nextAppointmentID: 1,
	}
}

func (r *fakeRepo) addClient(c models.Client) models.Client {
	if c.ID == 0 {
		c.ID = r.nextClientID
	}
	if c.ID >= r.nextClientID {
		r.nextClientID = c.ID + 1
	}
	r.clients[c.ID] = c
	return c
}

func (r *fakeRepo) addAppointment(ap models.Appointment) models.Appointment {
	if ap.ID == 0 {
		ap.ID = r.nextAppointmentID
	}
	if ap.ID >= r.nextAppointmentID {
		r.nextAppointmentID = ap.ID + 1
	}
	r.appointments[ap.ID] = ap
	return ap
}

func (r *fakeRepo) addService(s models.Service) models.Service {
	r.services[s.ID] = s
	return s
}

// ------------------------------------------------------
// domain.Repository
// ------------------------------------------------------

func (r *fakeRepo) InTx(ctx context.Context, fn func(tx domain.Repository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapClients := make(map[uint]models.Client, len(r.clients))
	for k, v := range r.clients {
		snapClients[k] = v
	}
	snapAppointments := make(map[uint]models.Appointment, len(r.appointments))
	for k, v := range r.appointments {
		snapAppointments[k] = v
	}
	snapFlags := append([]models.VoucherFlag(nil), r.flags...)

	if err := fn(r); err != nil {
		r.clients = snapClients
		r.appointments = snapAppointments
		r.flags = snapFlags
		return err
	}
	return nil
}

func (r *fakeRepo) GetBranchByID(ctx context.Context, id uint) (*models.Branch, error) {
	branch, ok := r.branches[id]
	if !ok {
		return nil, errStorage
	}
	return &branch, nil
}

func (r *fakeRepo) GetServices(ctx context.Context, branchID uint, serviceIDs []uint) ([]models.Service, error) {
	var out []models.Service
	for _, id := range serviceIDs {
		if svc, ok := r.services[id]; ok && svc.BranchID == branchID && svc.Active {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetOrCreateClient(ctx context.Context, branchID uint, name, phone, email string) (*models.Client, error) {
	for _, c := range r.clients {
		if c.BranchID == branchID && c.Phone == phone {
			return &c, nil
		}
	}
	c := r.addClient(models.Client{BranchID: branchID, Name: name, Phone: phone, Email: email})
	return &c, nil
}

func (r *fakeRepo) GetClientByID(ctx context.Context, clientID uint) (*models.Client, error) {
	c, ok := r.clients[clientID]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeClientNotFound)
	}
	return &c, nil
}

func (r *fakeRepo) GetClientForUpdate(ctx context.Context, clientID uint) (*models.Client, error) {
	return r.GetClientByID(ctx, clientID)
}

func (r *fakeRepo) SaveClient(ctx context.Context, client *models.Client) error {
	if r.failSaveClient {
		return errStorage
	}
	r.clients[client.ID] = *client
	return nil
}

func (r *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	*ap = r.addAppointment(*ap)
	return nil
}

func (r *fakeRepo) AssertNoTimeConflict(ctx context.Context, barberID uint, start, end time.Time) error {
	for _, ap := range r.appointments {
		if ap.BarberID != barberID {
			continue
		}
		if domain.IsTerminal(domain.Status(ap.Status)) {
			continue
		}
		if ap.StartTime.Before(end) && ap.EndTime.After(start) {
			return httperr.ErrBusiness(httperr.CodeTimeConflict)
		}
	}
	return nil
}

func (r *fakeRepo) GetAppointment(ctx context.Context, appointmentID, branchID uint) (*models.Appointment, error) {
	ap, ok := r.appointments[appointmentID]
	if !ok || ap.BranchID != branchID {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}
	return &ap, nil
}

func (r *fakeRepo) GetAppointmentForUpdate(ctx context.Context, appointmentID, branchID uint) (*models.Appointment, error) {
	return r.GetAppointment(ctx, appointmentID, branchID)
}

func (r *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if r.failUpdateAppointment {
		return errStorage
	}
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) CreateVoucherFlag(ctx context.Context, flag *models.VoucherFlag) error {
	if r.failCreateFlag {
		return errStorage
	}
	flag.ID = uint(len(r.flags) + 1)
	r.flags = append(r.flags, *flag)
	return nil
}

func (r *fakeRepo) ListByStatus(ctx context.Context, branchID uint, statuses []string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.BranchID != branchID {
			continue
		}
		for _, s := range statuses {
			if ap.Status == s {
				out = append(out, ap)
				break
			}
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// ------------------------------------------------------
// helpers compartilhados pelos testes do pacote
// ------------------------------------------------------

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil), zerolog.Nop())
}

func moderator() Actor {
	return Actor{UserID: 10, Username: "admin1", BranchID: 1, Role: models.RoleBranchAdmin}
}

func barberActor() Actor {
	return Actor{UserID: 20, Username: "barber1", BranchID: 1, Role: models.RoleBarber}
}
