package store

import "github.com/openclinic/hms/internal/domain"

// CreatePrescription stores a new prescription and stamps IssueDate.
func (s *Store) CreatePrescription(cmd *domain.CreatePrescriptionCommand) domain.Prescription {
	now := s.clock.Now()
	status := cmd.Status
	if status == "" {
		status = domain.PrescriptionActive
	}
	return s.prescriptions.create(func(id int64) domain.Prescription {
		return domain.Prescription{
			ID:           id,
			CreatedAt:    now,
			PatientID:    cmd.PatientID,
			DoctorID:     cmd.DoctorID,
			IssueDate:    now,
			Medications:  cmd.Medications,
			Instructions: cmd.Instructions,
			Status:       status,
		}
	})
}

func (s *Store) GetPrescription(id int64) (domain.Prescription, error) {
	p, ok := s.prescriptions.get(id)
	if !ok {
		return domain.Prescription{}, domain.ErrPrescriptionNotFound
	}
	return p, nil
}

func (s *Store) UpdatePrescription(id int64, cmd *domain.UpdatePrescriptionCommand) (domain.Prescription, error) {
	p, ok := s.prescriptions.update(id, func(p *domain.Prescription) {
		if cmd.PatientID != nil {
			p.PatientID = *cmd.PatientID
		}
		if cmd.DoctorID != nil {
			p.DoctorID = *cmd.DoctorID
		}
		if cmd.Medications != nil {
			p.Medications = *cmd.Medications
		}
		if cmd.Instructions != nil {
			p.Instructions = *cmd.Instructions
		}
		if cmd.Status != nil {
			p.Status = *cmd.Status
		}
	})
	if !ok {
		return domain.Prescription{}, domain.ErrPrescriptionNotFound
	}
	return p, nil
}

func (s *Store) ListPrescriptions() []domain.Prescription {
	return s.prescriptions.list()
}

func (s *Store) ListPrescriptionsByPatient(patientID int64) []domain.Prescription {
	return s.prescriptions.filter(func(p domain.Prescription) bool { return p.PatientID == patientID })
}
