package store

import "github.com/openclinic/hms/internal/domain"

// CreatePatient stores a new patient and stamps RegistrationDate.
func (s *Store) CreatePatient(cmd *domain.CreatePatientCommand) domain.Patient {
	now := s.clock.Now()
	return s.patients.create(func(id int64) domain.Patient {
		return domain.Patient{
			ID:               id,
			CreatedAt:        now,
			PatientID:        cmd.PatientID,
			Name:             cmd.Name,
			Email:            cmd.Email,
			Phone:            cmd.Phone,
			DateOfBirth:      cmd.DateOfBirth,
			Gender:           cmd.Gender,
			BloodType:        cmd.BloodType,
			Address:          cmd.Address,
			Allergies:        cmd.Allergies,
			MedicalHistory:   cmd.MedicalHistory,
			RegistrationDate: now,
			Avatar:           cmd.Avatar,
		}
	})
}

func (s *Store) GetPatient(id int64) (domain.Patient, error) {
	p, ok := s.patients.get(id)
	if !ok {
		return domain.Patient{}, domain.ErrPatientNotFound
	}
	return p, nil
}

// GetPatientByPatientID looks up the business key ("PT-12345"). With
// duplicate keys the earliest record wins.
func (s *Store) GetPatientByPatientID(patientID string) (domain.Patient, error) {
	p, ok := s.patients.find(func(p domain.Patient) bool { return p.PatientID == patientID })
	if !ok {
		return domain.Patient{}, domain.ErrPatientNotFound
	}
	return p, nil
}

func (s *Store) UpdatePatient(id int64, cmd *domain.UpdatePatientCommand) (domain.Patient, error) {
	p, ok := s.patients.update(id, func(p *domain.Patient) {
		if cmd.PatientID != nil {
			p.PatientID = *cmd.PatientID
		}
		if cmd.Name != nil {
			p.Name = *cmd.Name
		}
		if cmd.Email != nil {
			p.Email = *cmd.Email
		}
		if cmd.Phone != nil {
			p.Phone = *cmd.Phone
		}
		if cmd.DateOfBirth != nil {
			p.DateOfBirth = *cmd.DateOfBirth
		}
		if cmd.Gender != nil {
			p.Gender = *cmd.Gender
		}
		if cmd.BloodType != nil {
			p.BloodType = *cmd.BloodType
		}
		if cmd.Address != nil {
			p.Address = *cmd.Address
		}
		if cmd.Allergies != nil {
			p.Allergies = *cmd.Allergies
		}
		if cmd.MedicalHistory != nil {
			p.MedicalHistory = *cmd.MedicalHistory
		}
		if cmd.Avatar != nil {
			p.Avatar = *cmd.Avatar
		}
	})
	if !ok {
		return domain.Patient{}, domain.ErrPatientNotFound
	}
	return p, nil
}

func (s *Store) ListPatients() []domain.Patient {
	return s.patients.list()
}
