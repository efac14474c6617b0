package store

import (
	"sort"

	"github.com/openclinic/hms/internal/domain"
)

// AppendActivityLog stores a new entry and stamps its timestamp. Entries
// are append-only; there is no update path.
func (s *Store) AppendActivityLog(cmd *domain.CreateActivityLogCommand) domain.ActivityLog {
	now := s.clock.Now()
	return s.activityLogs.create(func(id int64) domain.ActivityLog {
		return domain.ActivityLog{
			ID:           id,
			UserID:       cmd.UserID,
			PatientID:    cmd.PatientID,
			ActivityType: cmd.ActivityType,
			Description:  cmd.Description,
			Timestamp:    now,
			Details:      cmd.Details,
		}
	})
}

func (s *Store) GetActivityLog(id int64) (domain.ActivityLog, error) {
	l, ok := s.activityLogs.get(id)
	if !ok {
		return domain.ActivityLog{}, domain.ErrActivityLogNotFound
	}
	return l, nil
}

func (s *Store) ListActivityLogs() []domain.ActivityLog {
	return s.activityLogs.list()
}

// RecentActivityLogs returns the limit most recent entries, newest first.
// Timestamp ties are broken by descending id so results are deterministic
// under a fixed clock.
func (s *Store) RecentActivityLogs(limit int) []domain.ActivityLog {
	logs := s.activityLogs.list()
	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].Timestamp.Equal(logs[j].Timestamp) {
			return logs[i].ID > logs[j].ID
		}
		return logs[i].Timestamp.After(logs[j].Timestamp)
	})
	if limit < 0 {
		limit = 0
	}
	if limit < len(logs) {
		logs = logs[:limit]
	}
	return logs
}
