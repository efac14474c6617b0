package store

import "github.com/openclinic/hms/internal/domain"

func (s *Store) CreateTask(cmd *domain.CreateTaskCommand) domain.Task {
	now := s.clock.Now()
	priority := cmd.Priority
	if priority == "" {
		priority = domain.TaskPriorityStandard
	}
	status := cmd.Status
	if status == "" {
		status = domain.TaskPending
	}
	return s.tasks.create(func(id int64) domain.Task {
		return domain.Task{
			ID:               id,
			CreatedAt:        now,
			UserID:           cmd.UserID,
			Title:            cmd.Title,
			Description:      cmd.Description,
			DueDate:          cmd.DueDate,
			Priority:         priority,
			Status:           status,
			RelatedPatientID: cmd.RelatedPatientID,
		}
	})
}

func (s *Store) GetTask(id int64) (domain.Task, error) {
	t, ok := s.tasks.get(id)
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return t, nil
}

func (s *Store) UpdateTask(id int64, cmd *domain.UpdateTaskCommand) (domain.Task, error) {
	t, ok := s.tasks.update(id, func(t *domain.Task) {
		if cmd.UserID != nil {
			t.UserID = *cmd.UserID
		}
		if cmd.Title != nil {
			t.Title = *cmd.Title
		}
		if cmd.Description != nil {
			t.Description = *cmd.Description
		}
		if cmd.DueDate != nil {
			t.DueDate = cmd.DueDate
		}
		if cmd.Priority != nil {
			t.Priority = *cmd.Priority
		}
		if cmd.Status != nil {
			t.Status = *cmd.Status
		}
		if cmd.RelatedPatientID != nil {
			t.RelatedPatientID = cmd.RelatedPatientID
		}
	})
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return t, nil
}

func (s *Store) ListTasks() []domain.Task {
	return s.tasks.list()
}

func (s *Store) ListTasksByUser(userID int64) []domain.Task {
	return s.tasks.filter(func(t domain.Task) bool { return t.UserID == userID })
}
