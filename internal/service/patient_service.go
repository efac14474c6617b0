package service

import (
	"strings"
	"time"

	"github.com/openclinic/hms/internal/domain"
	"github.com/openclinic/hms/internal/store"
	"github.com/openclinic/hms/pkg/metrics"
	"go.uber.org/zap"
)

type PatientService struct {
	store       *store.Store
	activitySvc *ActivityService
	collector   *metrics.Collector
	log         *zap.Logger
	strict      bool
}

func NewPatientService(st *store.Store, activitySvc *ActivityService, collector *metrics.Collector, log *zap.Logger, strict bool) *PatientService {
	return &PatientService{
		store:       st,
		activitySvc: activitySvc,
		collector:   collector,
		log:         log,
		strict:      strict,
	}
}

func (s *PatientService) RegisterPatient(cmd *domain.CreatePatientCommand, callerID int64) (domain.Patient, error) {
	if err := validatePatientCommand(cmd); err != nil {
		return domain.Patient{}, err
	}

	if s.strict {
		if _, err := s.store.GetPatientByPatientID(cmd.PatientID); err == nil {
			return domain.Patient{}, domain.ErrPatientAlreadyExists
		}
	}

	cmd.Name = strings.TrimSpace(cmd.Name)
	cmd.Email = strings.ToLower(strings.TrimSpace(cmd.Email))

	p := s.store.CreatePatient(cmd)
	s.collector.PatientsRegisteredTotal.Inc()

	s.activitySvc.Record(domain.CreateActivityLogCommand{
		UserID:       &callerID,
		PatientID:    &p.ID,
		ActivityType: "registration",
		Description:  "patient " + p.PatientID + " registered",
	})

	s.log.Info("patient registered",
		zap.Int64("id", p.ID),
		zap.String("patient_id", p.PatientID),
	)

	return p, nil
}

func (s *PatientService) GetPatient(id int64) (domain.Patient, error) {
	return s.store.GetPatient(id)
}

func (s *PatientService) GetPatientByPatientID(patientID string) (domain.Patient, error) {
	return s.store.GetPatientByPatientID(patientID)
}

func (s *PatientService) UpdatePatient(id int64, cmd *domain.UpdatePatientCommand, callerID int64) (domain.Patient, error) {
	if cmd.Gender != nil && !cmd.Gender.IsValid() {
		return domain.Patient{}, domain.ErrInvalidGender
	}

	p, err := s.store.UpdatePatient(id, cmd)
	if err != nil {
		return domain.Patient{}, err
	}

	s.activitySvc.Record(domain.CreateActivityLogCommand{
		UserID:       &callerID,
		PatientID:    &p.ID,
		ActivityType: "patient_update",
		Description:  "patient " + p.PatientID + " updated",
	})

	return p, nil
}

func (s *PatientService) ListPatients() []domain.Patient {
	return s.store.ListPatients()
}

func validatePatientCommand(cmd *domain.CreatePatientCommand) error {
	var errs []string

	if strings.TrimSpace(cmd.PatientID) == "" {
		errs = append(errs, "patient_id is required")
	}
	if strings.TrimSpace(cmd.Name) == "" {
		errs = append(errs, "name is required")
	}
	if cmd.DateOfBirth.IsZero() {
		errs = append(errs, "date_of_birth is required")
	} else if cmd.DateOfBirth.After(time.Now()) {
		errs = append(errs, "date_of_birth cannot be in the future")
	}
	if !cmd.Gender.IsValid() {
		errs = append(errs, "gender is invalid")
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
