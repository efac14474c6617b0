package service

import (
	"github.com/openclinic/hms/internal/domain"
	"github.com/openclinic/hms/internal/store"
	"go.uber.org/zap"
)

// StaffService covers the user and department read/update surfaces. User
// creation goes through AuthService.Register, so it is not repeated here.
type StaffService struct {
	store       *store.Store
	activitySvc *ActivityService
	log         *zap.Logger
}

func NewStaffService(st *store.Store, activitySvc *ActivityService, log *zap.Logger) *StaffService {
	return &StaffService{store: st, activitySvc: activitySvc, log: log}
}

func (s *StaffService) GetUser(id int64) (domain.User, error) {
	return s.store.GetUser(id)
}

func (s *StaffService) GetUserByUsername(username string) (domain.User, error) {
	return s.store.GetUserByUsername(username)
}

func (s *StaffService) UpdateUser(id int64, cmd *domain.UpdateUserCommand, callerID int64) (domain.User, error) {
	if cmd.Role != nil && !cmd.Role.IsValid() {
		return domain.User{}, domain.ErrInvalidRole
	}

	u, err := s.store.UpdateUser(id, cmd)
	if err != nil {
		return domain.User{}, err
	}

	s.activitySvc.Record(domain.CreateActivityLogCommand{
		UserID:       &callerID,
		ActivityType: "staff_update",
		Description:  "staff account " + u.Username + " updated",
	})

	return u, nil
}

func (s *StaffService) ListUsers() []domain.User {
	return s.store.ListUsers()
}

func (s *StaffService) CreateDepartment(cmd *domain.CreateDepartmentCommand, callerID int64) (domain.Department, error) {
	d := s.store.CreateDepartment(cmd)

	s.activitySvc.Record(domain.CreateActivityLogCommand{
		UserID:       &callerID,
		ActivityType: "department",
		Description:  "department " + d.Name + " created",
	})

	return d, nil
}

func (s *StaffService) GetDepartment(id int64) (domain.Department, error) {
	return s.store.GetDepartment(id)
}

func (s *StaffService) UpdateDepartment(id int64, cmd *domain.UpdateDepartmentCommand, callerID int64) (domain.Department, error) {
	d, err := s.store.UpdateDepartment(id, cmd)
	if err != nil {
		return domain.Department{}, err
	}

	s.activitySvc.Record(domain.CreateActivityLogCommand{
		UserID:       &callerID,
		ActivityType: "department",
		Description:  "department " + d.Name + " updated",
	})

	return d, nil
}

func (s *StaffService) ListDepartments() []domain.Department {
	return s.store.ListDepartments()
}
