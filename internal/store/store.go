package store

import (
	"github.com/openclinic/hms/internal/domain"
)

// Store is the sole authority for entity identity and state for the
// process lifetime. Each entity type owns an independent table with its
// own identity counter. The store performs no business-rule validation and
// no referential-integrity checking; those live in the service layer.
type Store struct {
	clock Clock

	users         *table[domain.User]
	patients      *table[domain.Patient]
	appointments  *table[domain.Appointment]
	records       *table[domain.MedicalRecord]
	prescriptions *table[domain.Prescription]
	departments   *table[domain.Department]
	tasks         *table[domain.Task]
	activityLogs  *table[domain.ActivityLog]
}

// New builds an empty store and seeds the fixed department rows, so the
// department counter starts at 6.
func New(clock Clock) *Store {
	s := &Store{
		clock:         clock,
		users:         newTable[domain.User](),
		patients:      newTable[domain.Patient](),
		appointments:  newTable[domain.Appointment](),
		records:       newTable[domain.MedicalRecord](),
		prescriptions: newTable[domain.Prescription](),
		departments:   newTable[domain.Department](),
		tasks:         newTable[domain.Task](),
		activityLogs:  newTable[domain.ActivityLog](),
	}
	s.seedDepartments()
	return s
}
