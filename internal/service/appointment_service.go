package service

import (
	"github.com/openclinic/hms/internal/domain"
	"github.com/openclinic/hms/internal/store"
	"github.com/openclinic/hms/pkg/metrics"
	"go.uber.org/zap"
)

type AppointmentService struct {
	store       *store.Store
	activitySvc *ActivityService
	collector   *metrics.Collector
	log         *zap.Logger
}

func NewAppointmentService(st *store.Store, activitySvc *ActivityService, collector *metrics.Collector, log *zap.Logger) *AppointmentService {
	return &AppointmentService{store: st, activitySvc: activitySvc, collector: collector, log: log}
}

// ScheduleAppointment creates an appointment. Foreign keys are accepted as
// given; the store does not check referential integrity.
func (s *AppointmentService) ScheduleAppointment(cmd *domain.CreateAppointmentCommand, callerID int64) (domain.Appointment, error) {
	if cmd.Status != "" && !cmd.Status.IsValid() {
		return domain.Appointment{}, domain.ErrInvalidAppointmentStatus
	}

	a := s.store.CreateAppointment(cmd)
	s.collector.AppointmentsTotal.WithLabelValues(string(a.Status)).Inc()

	s.activitySvc.Record(domain.CreateActivityLogCommand{
		UserID:       &callerID,
		PatientID:    &a.PatientID,
		ActivityType: "appointment",
		Description:  "appointment scheduled",
		Details:      map[string]any{"doctor_id": a.DoctorID, "status": string(a.Status)},
	})

	return a, nil
}

func (s *AppointmentService) GetAppointment(id int64) (domain.Appointment, error) {
	return s.store.GetAppointment(id)
}

// UpdateAppointment applies a partial update. Status values are validated;
// transitions are caller-driven and unconstrained.
func (s *AppointmentService) UpdateAppointment(id int64, cmd *domain.UpdateAppointmentCommand, callerID int64) (domain.Appointment, error) {
	if cmd.Status != nil && !cmd.Status.IsValid() {
		return domain.Appointment{}, domain.ErrInvalidAppointmentStatus
	}

	a, err := s.store.UpdateAppointment(id, cmd)
	if err != nil {
		return domain.Appointment{}, err
	}

	s.activitySvc.Record(domain.CreateActivityLogCommand{
		UserID:       &callerID,
		PatientID:    &a.PatientID,
		ActivityType: "appointment",
		Description:  "appointment updated",
		Details:      map[string]any{"status": string(a.Status)},
	})

	return a, nil
}

func (s *AppointmentService) ListAppointments() []domain.Appointment {
	return s.store.ListAppointments()
}

func (s *AppointmentService) ListByDoctor(doctorID int64) []domain.Appointment {
	return s.store.ListAppointmentsByDoctor(doctorID)
}

func (s *AppointmentService) ListByPatient(patientID int64) []domain.Appointment {
	return s.store.ListAppointmentsByPatient(patientID)
}
