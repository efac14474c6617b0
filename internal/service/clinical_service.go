package service

import (
	"github.com/openclinic/hms/internal/domain"
	"github.com/openclinic/hms/internal/store"
	"github.com/openclinic/hms/pkg/metrics"
	"go.uber.org/zap"
)

type MedicalRecordService struct {
	store       *store.Store
	activitySvc *ActivityService
	log         *zap.Logger
}

func NewMedicalRecordService(st *store.Store, activitySvc *ActivityService, log *zap.Logger) *MedicalRecordService {
	return &MedicalRecordService{store: st, activitySvc: activitySvc, log: log}
}

func (s *MedicalRecordService) CreateRecord(cmd *domain.CreateMedicalRecordCommand, callerID int64) (domain.MedicalRecord, error) {
	r := s.store.CreateMedicalRecord(cmd)

	s.activitySvc.Record(domain.CreateActivityLogCommand{
		UserID:       &callerID,
		PatientID:    &r.PatientID,
		ActivityType: "medical_record",
		Description:  "medical record created",
		Details:      map[string]any{"doctor_id": r.DoctorID},
	})

	return r, nil
}

func (s *MedicalRecordService) GetRecord(id int64) (domain.MedicalRecord, error) {
	return s.store.GetMedicalRecord(id)
}

func (s *MedicalRecordService) UpdateRecord(id int64, cmd *domain.UpdateMedicalRecordCommand, callerID int64) (domain.MedicalRecord, error) {
	r, err := s.store.UpdateMedicalRecord(id, cmd)
	if err != nil {
		return domain.MedicalRecord{}, err
	}

	s.activitySvc.Record(domain.CreateActivityLogCommand{
		UserID:       &callerID,
		PatientID:    &r.PatientID,
		ActivityType: "medical_record",
		Description:  "medical record updated",
	})

	return r, nil
}

func (s *MedicalRecordService) ListRecords() []domain.MedicalRecord {
	return s.store.ListMedicalRecords()
}

func (s *MedicalRecordService) ListByPatient(patientID int64) []domain.MedicalRecord {
	return s.store.ListMedicalRecordsByPatient(patientID)
}

type PrescriptionService struct {
	store       *store.Store
	activitySvc *ActivityService
	collector   *metrics.Collector
	log         *zap.Logger
}

func NewPrescriptionService(st *store.Store, activitySvc *ActivityService, collector *metrics.Collector, log *zap.Logger) *PrescriptionService {
	return &PrescriptionService{store: st, activitySvc: activitySvc, collector: collector, log: log}
}

func (s *PrescriptionService) IssuePrescription(cmd *domain.CreatePrescriptionCommand, callerID int64) (domain.Prescription, error) {
	if len(cmd.Medications) == 0 {
		return domain.Prescription{}, domain.ErrMedicationsRequired
	}
	if cmd.Status != "" && !cmd.Status.IsValid() {
		return domain.Prescription{}, domain.ErrInvalidPrescriptionStatus
	}

	p := s.store.CreatePrescription(cmd)
	s.collector.PrescriptionsIssued.Inc()

	s.activitySvc.Record(domain.CreateActivityLogCommand{
		UserID:       &callerID,
		PatientID:    &p.PatientID,
		ActivityType: "prescription",
		Description:  "prescription issued",
		Details:      map[string]any{"doctor_id": p.DoctorID, "medications": len(p.Medications)},
	})

	return p, nil
}

func (s *PrescriptionService) GetPrescription(id int64) (domain.Prescription, error) {
	return s.store.GetPrescription(id)
}

func (s *PrescriptionService) UpdatePrescription(id int64, cmd *domain.UpdatePrescriptionCommand, callerID int64) (domain.Prescription, error) {
	if cmd.Status != nil && !cmd.Status.IsValid() {
		return domain.Prescription{}, domain.ErrInvalidPrescriptionStatus
	}

	p, err := s.store.UpdatePrescription(id, cmd)
	if err != nil {
		return domain.Prescription{}, err
	}

	s.activitySvc.Record(domain.CreateActivityLogCommand{
		UserID:       &callerID,
		PatientID:    &p.PatientID,
		ActivityType: "prescription",
		Description:  "prescription updated",
		Details:      map[string]any{"status": string(p.Status)},
	})

	return p, nil
}

func (s *PrescriptionService) ListPrescriptions() []domain.Prescription {
	return s.store.ListPrescriptions()
}

func (s *PrescriptionService) ListByPatient(patientID int64) []domain.Prescription {
	return s.store.ListPrescriptionsByPatient(patientID)
}
