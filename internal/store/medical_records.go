package store

import "github.com/openclinic/hms/internal/domain"

// CreateMedicalRecord stores a new record and stamps RecordDate.
func (s *Store) CreateMedicalRecord(cmd *domain.CreateMedicalRecordCommand) domain.MedicalRecord {
	now := s.clock.Now()
	return s.records.create(func(id int64) domain.MedicalRecord {
		return domain.MedicalRecord{
			ID:          id,
			CreatedAt:   now,
			PatientID:   cmd.PatientID,
			DoctorID:    cmd.DoctorID,
			RecordDate:  now,
			Diagnosis:   cmd.Diagnosis,
			Symptoms:    cmd.Symptoms,
			Treatment:   cmd.Treatment,
			Notes:       cmd.Notes,
			Vitals:      cmd.Vitals,
			Attachments: cmd.Attachments,
		}
	})
}

func (s *Store) GetMedicalRecord(id int64) (domain.MedicalRecord, error) {
	r, ok := s.records.get(id)
	if !ok {
		return domain.MedicalRecord{}, domain.ErrRecordNotFound
	}
	return r, nil
}

func (s *Store) UpdateMedicalRecord(id int64, cmd *domain.UpdateMedicalRecordCommand) (domain.MedicalRecord, error) {
	r, ok := s.records.update(id, func(r *domain.MedicalRecord) {
		if cmd.PatientID != nil {
			r.PatientID = *cmd.PatientID
		}
		if cmd.DoctorID != nil {
			r.DoctorID = *cmd.DoctorID
		}
		if cmd.Diagnosis != nil {
			r.Diagnosis = *cmd.Diagnosis
		}
		if cmd.Symptoms != nil {
			r.Symptoms = *cmd.Symptoms
		}
		if cmd.Treatment != nil {
			r.Treatment = *cmd.Treatment
		}
		if cmd.Notes != nil {
			r.Notes = *cmd.Notes
		}
		if cmd.Vitals != nil {
			r.Vitals = cmd.Vitals
		}
		if cmd.Attachments != nil {
			r.Attachments = *cmd.Attachments
		}
	})
	if !ok {
		return domain.MedicalRecord{}, domain.ErrRecordNotFound
	}
	return r, nil
}

func (s *Store) ListMedicalRecords() []domain.MedicalRecord {
	return s.records.list()
}

func (s *Store) ListMedicalRecordsByPatient(patientID int64) []domain.MedicalRecord {
	return s.records.filter(func(r domain.MedicalRecord) bool { return r.PatientID == patientID })
}
