package service

import (
	"github.com/openclinic/hms/internal/domain"
	"github.com/openclinic/hms/internal/store"
	"github.com/openclinic/hms/pkg/metrics"
	"go.uber.org/zap"
)

type TaskService struct {
	store       *store.Store
	activitySvc *ActivityService
	collector   *metrics.Collector
	log         *zap.Logger
}

func NewTaskService(st *store.Store, activitySvc *ActivityService, collector *metrics.Collector, log *zap.Logger) *TaskService {
	return &TaskService{store: st, activitySvc: activitySvc, collector: collector, log: log}
}

func (s *TaskService) CreateTask(cmd *domain.CreateTaskCommand, callerID int64) (domain.Task, error) {
	if cmd.Priority != "" && !cmd.Priority.IsValid() {
		return domain.Task{}, domain.ErrInvalidTaskPriority
	}
	if cmd.Status != "" && !cmd.Status.IsValid() {
		return domain.Task{}, domain.ErrInvalidTaskStatus
	}

	t := s.store.CreateTask(cmd)

	s.activitySvc.Record(domain.CreateActivityLogCommand{
		UserID:       &callerID,
		PatientID:    t.RelatedPatientID,
		ActivityType: "task",
		Description:  "task created: " + t.Title,
		Details:      map[string]any{"priority": string(t.Priority)},
	})

	return t, nil
}

func (s *TaskService) GetTask(id int64) (domain.Task, error) {
	return s.store.GetTask(id)
}

func (s *TaskService) UpdateTask(id int64, cmd *domain.UpdateTaskCommand, callerID int64) (domain.Task, error) {
	if cmd.Priority != nil && !cmd.Priority.IsValid() {
		return domain.Task{}, domain.ErrInvalidTaskPriority
	}
	if cmd.Status != nil && !cmd.Status.IsValid() {
		return domain.Task{}, domain.ErrInvalidTaskStatus
	}

	before, err := s.store.GetTask(id)
	if err != nil {
		return domain.Task{}, err
	}

	t, err := s.store.UpdateTask(id, cmd)
	if err != nil {
		return domain.Task{}, err
	}

	if before.Status != domain.TaskCompleted && t.Status == domain.TaskCompleted {
		s.collector.TasksCompletedTotal.Inc()
	}

	s.activitySvc.Record(domain.CreateActivityLogCommand{
		UserID:       &callerID,
		PatientID:    t.RelatedPatientID,
		ActivityType: "task",
		Description:  "task updated: " + t.Title,
		Details:      map[string]any{"status": string(t.Status)},
	})

	return t, nil
}

func (s *TaskService) ListTasks() []domain.Task {
	return s.store.ListTasks()
}

func (s *TaskService) ListByUser(userID int64) []domain.Task {
	return s.store.ListTasksByUser(userID)
}
