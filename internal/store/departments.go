package store

import "github.com/openclinic/hms/internal/domain"

// seedDepartments installs the fixed rows every deployment starts with.
// They go through the normal create path so they occupy ids 1-5 and leave
// the counter at 6.
func (s *Store) seedDepartments() {
	seeds := []domain.CreateDepartmentCommand{
		{Name: "Cardiology", Description: "Heart and vascular care", Capacity: 100, Occupancy: 85, StaffUtilization: 90},
		{Name: "Neurology", Description: "Brain and nervous system", Capacity: 80, Occupancy: 70, StaffUtilization: 75},
		{Name: "Pediatrics", Description: "Care for infants and children", Capacity: 120, Occupancy: 60, StaffUtilization: 65},
		{Name: "Orthopedics", Description: "Bones, joints and muscles", Capacity: 90, Occupancy: 75, StaffUtilization: 80},
		{Name: "Emergency", Description: "Emergency and trauma care", Capacity: 150, Occupancy: 90, StaffUtilization: 95},
	}
	for i := range seeds {
		s.CreateDepartment(&seeds[i])
	}
}

func (s *Store) CreateDepartment(cmd *domain.CreateDepartmentCommand) domain.Department {
	now := s.clock.Now()
	return s.departments.create(func(id int64) domain.Department {
		return domain.Department{
			ID:               id,
			CreatedAt:        now,
			Name:             cmd.Name,
			Description:      cmd.Description,
			Capacity:         cmd.Capacity,
			Occupancy:        cmd.Occupancy,
			StaffUtilization: cmd.StaffUtilization,
		}
	})
}

func (s *Store) GetDepartment(id int64) (domain.Department, error) {
	d, ok := s.departments.get(id)
	if !ok {
		return domain.Department{}, domain.ErrDepartmentNotFound
	}
	return d, nil
}

func (s *Store) UpdateDepartment(id int64, cmd *domain.UpdateDepartmentCommand) (domain.Department, error) {
	d, ok := s.departments.update(id, func(d *domain.Department) {
		if cmd.Name != nil {
			d.Name = *cmd.Name
		}
		if cmd.Description != nil {
			d.Description = *cmd.Description
		}
		if cmd.Capacity != nil {
			d.Capacity = *cmd.Capacity
		}
		if cmd.Occupancy != nil {
			d.Occupancy = *cmd.Occupancy
		}
		if cmd.StaffUtilization != nil {
			d.StaffUtilization = *cmd.StaffUtilization
		}
	})
	if !ok {
		return domain.Department{}, domain.ErrDepartmentNotFound
	}
	return d, nil
}

func (s *Store) ListDepartments() []domain.Department {
	return s.departments.list()
}
