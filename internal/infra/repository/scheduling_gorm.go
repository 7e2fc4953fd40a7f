package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

// --------------------------------------------------
// Worker
// --------------------------------------------------

func (r *SchedulingGormRepository) GetWorkerByID(
	ctx context.Context,
	id uint,
) (*models.Worker, error) {

	var worker models.Worker
	if err := r.db.WithContext(ctx).First(&worker, id).Error; err != nil {
		return nil, err
	}
	return &worker, nil
}

// --------------------------------------------------
// Catálogo
// --------------------------------------------------

func (r *SchedulingGormRepository) GetService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, serviceID).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *SchedulingGormRepository) GetAdditional(
	ctx context.Context,
	additionalID uint,
) (*models.Additional, error) {

	var additional models.Additional
	if err := r.db.WithContext(ctx).First(&additional, additionalID).Error; err != nil {
		return nil, err
	}
	return &additional, nil
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *SchedulingGormRepository) GetCustomerByID(
	ctx context.Context,
	customerID uint,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, customerID).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *SchedulingGormRepository) GetOrCreateCustomer(
	ctx context.Context,
	name string,
	phone string,
	email string,
) (*models.Customer, error) {

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&customer).Error

	if err == nil {
		return &customer, nil
	}

	customer = models.Customer{
		Name:  name,
		Phone: phone,
		Email: email,
	}

	if err := r.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, err
	}

	return &customer, nil
}

// --------------------------------------------------
// Horário semanal
// --------------------------------------------------

func (r *SchedulingGormRepository) GetScheduleEntry(
	ctx context.Context,
	workerID uint,
	weekday int,
) (*models.WorkerSchedule, error) {

	var entry models.WorkerSchedule
	err := r.db.WithContext(ctx).
		Where("worker_id = ? AND weekday = ?", workerID, weekday).
		First(&entry).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

func (r *SchedulingGormRepository) ListSchedule(
	ctx context.Context,
	workerID uint,
) ([]models.WorkerSchedule, error) {

	var entries []models.WorkerSchedule
	if err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Order("weekday ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *SchedulingGormRepository) ReplaceSchedule(
	ctx context.Context,
	workerID uint,
	entries []models.WorkerSchedule,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.
			Where("worker_id = ?", workerID).
			Delete(&models.WorkerSchedule{}).Error; err != nil {
			return err
		}

		if len(entries) == 0 {
			return nil
		}

		return tx.Create(&entries).Error
	})
}

// --------------------------------------------------
// Datas bloqueadas
// --------------------------------------------------

func (r *SchedulingGormRepository) GetBlockedDate(
	ctx context.Context,
	workerID uint,
	date time.Time,
) (*models.BlockedDate, error) {

	var bd models.BlockedDate
	err := r.db.WithContext(ctx).
		Where("worker_id = ? AND date = ?", workerID, date).
		First(&bd).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &bd, nil
}

func (r *SchedulingGormRepository) ListBlockedDates(
	ctx context.Context,
	workerID uint,
	from time.Time,
) ([]models.BlockedDate, error) {

	var dates []models.BlockedDate
	if err := r.db.WithContext(ctx).
		Where("worker_id = ? AND date >= ?", workerID, from).
		Order("date ASC").
		Find(&dates).Error; err != nil {
		return nil, err
	}

	return dates, nil
}

func (r *SchedulingGormRepository) CreateBlockedDate(
	ctx context.Context,
	bd *models.BlockedDate,
) error {
	return r.db.WithContext(ctx).Create(bd).Error
}

func (r *SchedulingGormRepository) DeleteBlockedDate(
	ctx context.Context,
	workerID uint,
	id uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND worker_id = ?", id, workerID).
		Delete(&models.BlockedDate{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateAppointmentGuarded revalida o intervalo com lock pessimista e
// insere na mesma transação: ou grava tudo ou não grava nada
func (r *SchedulingGormRepository) CreateAppointmentGuarded(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"worker_id = ? AND status IN ('pending','confirmed') AND start_time < ? AND end_time > ?",
				ap.WorkerID,
				ap.EndTime,
				ap.StartTime,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrConflict("slot_conflict")
		}

		return tx.Create(ap).Error
	})

	if err != nil && httperr.IsExclusionConflict(err) {
		return httperr.ErrConflict("slot_conflict")
	}

	return err
}

// --------------------------------------------------
// Appointment (leitura / mudança de estado)
// --------------------------------------------------

func (r *SchedulingGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Preload("Additional").
		First(&ap, appointmentID).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *SchedulingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Disponibilidade / listagens
// --------------------------------------------------

func (r *SchedulingGormRepository) ListActiveAppointmentsForDay(
	ctx context.Context,
	workerID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "start_time", "end_time", "status").
		Where(
			"worker_id = ? AND status IN ('pending','confirmed') AND start_time >= ? AND start_time < ?",
			workerID, dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *SchedulingGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	workerID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Preload("Additional").
		Where(
			"worker_id = ? AND start_time >= ? AND start_time < ?",
			workerID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *SchedulingGormRepository) ListAppointmentsByCustomerPhone(
	ctx context.Context,
	phone string,
) ([]models.Appointment, error) {

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&customer).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.Appointment{}, nil
	}
	if err != nil {
		return nil, err
	}

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Additional").
		Where("customer_id = ?", customer.ID).
		Order("start_time DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *SchedulingGormRepository) ListAllAppointments(
	ctx context.Context,
	workerID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Additional").
		Where("worker_id = ?", workerID).
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *SchedulingGormRepository) CountOpenAppointmentsFrom(
	ctx context.Context,
	workerID uint,
	from time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"worker_id = ? AND status IN ('pending','confirmed') AND start_time >= ?",
			workerID, from,
		).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// Compile-time check
var _ domain.Repository = (*SchedulingGormRepository)(nil)
