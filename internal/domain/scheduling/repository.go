package scheduling

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Worker --------
	GetWorkerByID(
		ctx context.Context,
		id uint,
	) (*models.Worker, error)

	// -------- Catálogo --------
	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	GetAdditional(
		ctx context.Context,
		additionalID uint,
	) (*models.Additional, error)

	// -------- Customer --------
	GetCustomerByID(
		ctx context.Context,
		customerID uint,
	) (*models.Customer, error)

	GetOrCreateCustomer(
		ctx context.Context,
		name string,
		phone string,
		email string,
	) (*models.Customer, error)

	// -------- Horário semanal --------
	// GetScheduleEntry retorna (nil, nil) quando o dia não está configurado
	GetScheduleEntry(
		ctx context.Context,
		workerID uint,
		weekday int,
	) (*models.WorkerSchedule, error)

	ListSchedule(
		ctx context.Context,
		workerID uint,
	) ([]models.WorkerSchedule, error)

	ReplaceSchedule(
		ctx context.Context,
		workerID uint,
		entries []models.WorkerSchedule,
	) error

	// -------- Datas bloqueadas --------
	// GetBlockedDate retorna (nil, nil) quando a data não está bloqueada
	GetBlockedDate(
		ctx context.Context,
		workerID uint,
		date time.Time,
	) (*models.BlockedDate, error)

	ListBlockedDates(
		ctx context.Context,
		workerID uint,
		from time.Time,
	) ([]models.BlockedDate, error)

	CreateBlockedDate(
		ctx context.Context,
		bd *models.BlockedDate,
	) error

	DeleteBlockedDate(
		ctx context.Context,
		workerID uint,
		id uint,
	) error

	// -------- Appointment (create / conflict) --------
	// CreateAppointmentGuarded revalida o intervalo e insere numa única
	// transação; retorna httperr conflict quando o horário já foi tomado
	CreateAppointmentGuarded(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (leitura / mudança de estado) --------
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Disponibilidade / listagens --------
	// Somente agendamentos ativos (pending/confirmed), ordenados
	ListActiveAppointmentsForDay(
		ctx context.Context,
		workerID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	// Todos os status, com Customer/Service/Additional pré-carregados
	ListAppointmentsForPeriod(
		ctx context.Context,
		workerID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsByCustomerPhone(
		ctx context.Context,
		phone string,
	) ([]models.Appointment, error)

	ListAllAppointments(
		ctx context.Context,
		workerID uint,
	) ([]models.Appointment, error)

	CountOpenAppointmentsFrom(
		ctx context.Context,
		workerID uint,
		from time.Time,
	) (int64, error)
}
