package service

import (
	"testing"

	"github.com/openclinic/hms/internal/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuePrescriptionRequiresMedications(t *testing.T) {
	env := newTestEnv(t)
	svc := env.prescriptionService()

	_, err := svc.IssuePrescription(&domain.CreatePrescriptionCommand{
		PatientID: 1,
		DoctorID:  2,
	}, 1)
	assert.ErrorIs(t, err, domain.ErrMedicationsRequired)
}

func TestIssuePrescription(t *testing.T) {
	env := newTestEnv(t)
	svc := env.prescriptionService()

	p, err := svc.IssuePrescription(&domain.CreatePrescriptionCommand{
		PatientID: 1,
		DoctorID:  2,
		Medications: []domain.Medication{
			{Name: "Amoxicillin", Dosage: "500mg", Frequency: "twice daily", Duration: "7 days"},
		},
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.PrescriptionActive, p.Status)
	assert.False(t, p.IssueDate.IsZero())
	assert.Equal(t, float64(1), testutil.ToFloat64(env.collector.PrescriptionsIssued))

	bad := domain.PrescriptionStatus("paused")
	_, err = svc.UpdatePrescription(p.ID, &domain.UpdatePrescriptionCommand{Status: &bad}, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidPrescriptionStatus)

	completed := domain.PrescriptionCompleted
	updated, err := svc.UpdatePrescription(p.ID, &domain.UpdatePrescriptionCommand{Status: &completed}, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.PrescriptionCompleted, updated.Status)
	assert.Equal(t, p.IssueDate, updated.IssueDate)
}

func TestMedicalRecordLifecycle(t *testing.T) {
	env := newTestEnv(t)
	svc := env.recordService()

	r, err := svc.CreateRecord(&domain.CreateMedicalRecordCommand{
		PatientID: 1,
		DoctorID:  2,
		Diagnosis: "seasonal flu",
	}, 1)
	require.NoError(t, err)
	assert.False(t, r.RecordDate.IsZero())

	notes := "follow up in two weeks"
	updated, err := svc.UpdateRecord(r.ID, &domain.UpdateMedicalRecordCommand{Notes: &notes}, 1)
	require.NoError(t, err)
	assert.Equal(t, "seasonal flu", updated.Diagnosis)
	assert.Equal(t, r.RecordDate, updated.RecordDate)

	assert.Len(t, svc.ListByPatient(1), 1)
	assert.Empty(t, svc.ListByPatient(2))
}
