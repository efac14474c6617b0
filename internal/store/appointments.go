package store

import "github.com/openclinic/hms/internal/domain"

func (s *Store) CreateAppointment(cmd *domain.CreateAppointmentCommand) domain.Appointment {
	now := s.clock.Now()
	status := cmd.Status
	if status == "" {
		status = domain.AppointmentPending
	}
	return s.appointments.create(func(id int64) domain.Appointment {
		return domain.Appointment{
			ID:              id,
			CreatedAt:       now,
			PatientID:       cmd.PatientID,
			DoctorID:        cmd.DoctorID,
			AppointmentDate: cmd.AppointmentDate,
			Purpose:         cmd.Purpose,
			Status:          status,
			Notes:           cmd.Notes,
		}
	})
}

func (s *Store) GetAppointment(id int64) (domain.Appointment, error) {
	a, ok := s.appointments.get(id)
	if !ok {
		return domain.Appointment{}, domain.ErrAppointmentNotFound
	}
	return a, nil
}

func (s *Store) UpdateAppointment(id int64, cmd *domain.UpdateAppointmentCommand) (domain.Appointment, error) {
	a, ok := s.appointments.update(id, func(a *domain.Appointment) {
		if cmd.PatientID != nil {
			a.PatientID = *cmd.PatientID
		}
		if cmd.DoctorID != nil {
			a.DoctorID = *cmd.DoctorID
		}
		if cmd.AppointmentDate != nil {
			a.AppointmentDate = *cmd.AppointmentDate
		}
		if cmd.Purpose != nil {
			a.Purpose = *cmd.Purpose
		}
		if cmd.Status != nil {
			a.Status = *cmd.Status
		}
		if cmd.Notes != nil {
			a.Notes = *cmd.Notes
		}
	})
	if !ok {
		return domain.Appointment{}, domain.ErrAppointmentNotFound
	}
	return a, nil
}

func (s *Store) ListAppointments() []domain.Appointment {
	return s.appointments.list()
}

func (s *Store) ListAppointmentsByDoctor(doctorID int64) []domain.Appointment {
	return s.appointments.filter(func(a domain.Appointment) bool { return a.DoctorID == doctorID })
}

func (s *Store) ListAppointmentsByPatient(patientID int64) []domain.Appointment {
	return s.appointments.filter(func(a domain.Appointment) bool { return a.PatientID == patientID })
}
