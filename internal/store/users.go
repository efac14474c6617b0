package store

import "github.com/openclinic/hms/internal/domain"

// CreateUser stores a new staff account. The password must already be
// hashed by the caller.
func (s *Store) CreateUser(cmd *domain.CreateUserCommand, passwordHash string) domain.User {
	now := s.clock.Now()
	return s.users.create(func(id int64) domain.User {
		return domain.User{
			ID:             id,
			CreatedAt:      now,
			Username:       cmd.Username,
			PasswordHash:   passwordHash,
			Name:           cmd.Name,
			Email:          cmd.Email,
			Role:           cmd.Role,
			DepartmentID:   cmd.DepartmentID,
			Specialization: cmd.Specialization,
			Avatar:         cmd.Avatar,
		}
	})
}

func (s *Store) GetUser(id int64) (domain.User, error) {
	u, ok := s.users.get(id)
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *Store) GetUserByUsername(username string) (domain.User, error) {
	u, ok := s.users.find(func(u domain.User) bool { return u.Username == username })
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *Store) UpdateUser(id int64, cmd *domain.UpdateUserCommand) (domain.User, error) {
	u, ok := s.users.update(id, func(u *domain.User) {
		if cmd.Name != nil {
			u.Name = *cmd.Name
		}
		if cmd.Email != nil {
			u.Email = *cmd.Email
		}
		if cmd.Role != nil {
			u.Role = *cmd.Role
		}
		if cmd.DepartmentID != nil {
			u.DepartmentID = cmd.DepartmentID
		}
		if cmd.Specialization != nil {
			u.Specialization = *cmd.Specialization
		}
		if cmd.Avatar != nil {
			u.Avatar = *cmd.Avatar
		}
	})
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

// UpdateUserPassword replaces the stored hash. Kept off the generic patch
// path so a PATCH body can never overwrite credentials.
func (s *Store) UpdateUserPassword(id int64, passwordHash string) error {
	_, ok := s.users.update(id, func(u *domain.User) {
		u.PasswordHash = passwordHash
	})
	if !ok {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *Store) ListUsers() []domain.User {
	return s.users.list()
}
