package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/uemerson199/hospitalcare-meta/pkg/logger"
	"github.com/uemerson199/hospitalcare-meta/pkg/types"
)

type mockSchedulingRepo struct {
	mock.Mock
}

func (m *mockSchedulingRepo) CreateAppointment(apt *types.Appointment) error {
	return m.Called(apt).Error(0)
}

func (m *mockSchedulingRepo) GetAppointmentByID(id string) (*types.Appointment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Appointment), args.Error(1)
}

func (m *mockSchedulingRepo) UpdateAppointment(apt *types.Appointment) error {
	return m.Called(apt).Error(0)
}

func (m *mockSchedulingRepo) DeleteAppointment(id string) error {
	return m.Called(id).Error(0)
}

func (m *mockSchedulingRepo) ListAppointments(search string) ([]*types.Appointment, error) {
	args := m.Called(search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Appointment), args.Error(1)
}

func (m *mockSchedulingRepo) GetConflictingAppointments(doctorID string, start, end time.Time, excludeID string) ([]*types.Appointment, error) {
	args := m.Called(doctorID, start, end, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Appointment), args.Error(1)
}

type mockPatientRepo struct {
	mock.Mock
}

func (m *mockPatientRepo) Create(patient *types.Patient) error {
	return m.Called(patient).Error(0)
}

func (m *mockPatientRepo) GetByID(id string) (*types.Patient, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Patient), args.Error(1)
}

func (m *mockPatientRepo) List(search string) ([]*types.Patient, error) {
	args := m.Called(search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Patient), args.Error(1)
}

func (m *mockPatientRepo) Update(patient *types.Patient) error {
	return m.Called(patient).Error(0)
}

func (m *mockPatientRepo) Delete(id string) error {
	return m.Called(id).Error(0)
}

type mockDoctorRepo struct {
	mock.Mock
}

func (m *mockDoctorRepo) Create(doctor *types.Doctor) error {
	return m.Called(doctor).Error(0)
}

func (m *mockDoctorRepo) GetByID(id string) (*types.Doctor, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Doctor), args.Error(1)
}

func (m *mockDoctorRepo) List(search string) ([]*types.Doctor, error) {
	args := m.Called(search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Doctor), args.Error(1)
}

func (m *mockDoctorRepo) Update(doctor *types.Doctor) error {
	return m.Called(doctor).Error(0)
}

func (m *mockDoctorRepo) Delete(id string) error {
	return m.Called(id).Error(0)
}

func (m *mockDoctorRepo) CountActiveAppointments(doctorID string) (int, error) {
	args := m.Called(doctorID)
	return args.Int(0), args.Error(1)
}

func newTestService() (*Service, *mockSchedulingRepo, *mockPatientRepo, *mockDoctorRepo) {
	repo := new(mockSchedulingRepo)
	patientRepo := new(mockPatientRepo)
	doctorRepo := new(mockDoctorRepo)
	svc := NewService(logger.New("error"), repo, patientRepo, doctorRepo)
	return svc, repo, patientRepo, doctorRepo
}

func testPatient() *types.Patient {
	return &types.Patient{ID: "patient-1", Name: "Alice Silva", DOB: "1990-03-15", NationalID: "123.456.789-00"}
}

func testDoctor() *types.Doctor {
	return &types.Doctor{ID: "doctor-1", Name: "Dr. Bob", Specialty: "Cardiology"}
}

func TestCreateAppointmentSuccess(t *testing.T) {
	svc, repo, patientRepo, doctorRepo := newTestService()

	start := time.Now().Add(24 * time.Hour).Truncate(time.Minute)
	patientRepo.On("GetByID", "patient-1").Return(testPatient(), nil)
	doctorRepo.On("GetByID", "doctor-1").Return(testDoctor(), nil)
	repo.On("GetConflictingAppointments", "doctor-1", start, start.Add(SlotDuration), "").
		Return([]*types.Appointment{}, nil)
	repo.On("CreateAppointment", mock.AnythingOfType("*types.Appointment")).Return(nil)

	apt, err := svc.CreateAppointment(&types.CreateAppointmentRequest{
		PatientID:       "patient-1",
		DoctorID:        "doctor-1",
		AppointmentTime: start,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, apt.ID)
	assert.Equal(t, types.StatusScheduled, apt.Status)
	assert.Equal(t, "Dr. Bob", apt.DoctorName)
	repo.AssertExpectations(t)
}

func TestCreateAppointmentConflict(t *testing.T) {
	svc, repo, patientRepo, doctorRepo := newTestService()

	start := time.Now().Add(24 * time.Hour).Truncate(time.Minute)
	patientRepo.On("GetByID", "patient-1").Return(testPatient(), nil)
	doctorRepo.On("GetByID", "doctor-1").Return(testDoctor(), nil)
	repo.On("GetConflictingAppointments", "doctor-1", start, start.Add(SlotDuration), "").
		Return([]*types.Appointment{{ID: "existing"}}, nil)

	_, err := svc.CreateAppointment(&types.CreateAppointmentRequest{
		PatientID:       "patient-1",
		DoctorID:        "doctor-1",
		AppointmentTime: start,
	})

	require.Error(t, err)
	e := types.AsError(err)
	assert.Equal(t, types.ErrCodeScheduleConflict, e.Code)
	assert.Equal(t, 409, e.HTTPStatus())
	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything)
}

func TestCreateAppointmentPastTimeRejected(t *testing.T) {
	svc, repo, _, _ := newTestService()

	_, err := svc.CreateAppointment(&types.CreateAppointmentRequest{
		PatientID:       "patient-1",
		DoctorID:        "doctor-1",
		AppointmentTime: time.Now().Add(-time.Hour),
	})

	require.Error(t, err)
	e := types.AsError(err)
	assert.Equal(t, 400, e.HTTPStatus())
	assert.Contains(t, e.Fields, "appointmentTime")
	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything)
}

func TestCreateAppointmentMissingFields(t *testing.T) {
	svc, repo, _, _ := newTestService()

	_, err := svc.CreateAppointment(&types.CreateAppointmentRequest{})

	require.Error(t, err)
	e := types.AsError(err)
	assert.Equal(t, 400, e.HTTPStatus())
	assert.Contains(t, e.Fields, "patientId")
	assert.Contains(t, e.Fields, "doctorId")
	assert.Contains(t, e.Fields, "appointmentTime")
	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything)
}

func TestCreateAppointmentUnknownPatient(t *testing.T) {
	svc, repo, patientRepo, _ := newTestService()

	start := time.Now().Add(24 * time.Hour)
	patientRepo.On("GetByID", "missing").
		Return(nil, types.NewNotFoundError(types.ErrCodeNotFound, "Patient not found"))

	_, err := svc.CreateAppointment(&types.CreateAppointmentRequest{
		PatientID:       "missing",
		DoctorID:        "doctor-1",
		AppointmentTime: start,
	})

	require.Error(t, err)
	assert.Equal(t, 404, types.AsError(err).HTTPStatus())
	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything)
}

func TestUpdateAppointmentIllegalTransition(t *testing.T) {
	svc, repo, _, _ := newTestService()

	existing := &types.Appointment{
		ID:              "apt-1",
		PatientID:       "patient-1",
		DoctorID:        "doctor-1",
		AppointmentTime: time.Now().Add(time.Hour),
		Status:          types.StatusCancelled,
	}
	repo.On("GetAppointmentByID", "apt-1").Return(existing, nil)

	_, err := svc.UpdateAppointment("apt-1", &types.UpdateAppointmentRequest{
		PatientID:       "patient-1",
		DoctorID:        "doctor-1",
		AppointmentTime: existing.AppointmentTime,
		Status:          types.StatusScheduled,
	})

	require.Error(t, err)
	e := types.AsError(err)
	assert.Equal(t, types.ErrCodeIllegalTransition, e.Code)
	assert.Equal(t, 409, e.HTTPStatus())
	repo.AssertNotCalled(t, "UpdateAppointment", mock.Anything)
}

func TestUpdateAppointmentExcludesSelfFromConflictCheck(t *testing.T) {
	svc, repo, patientRepo, doctorRepo := newTestService()

	start := time.Now().Add(48 * time.Hour).Truncate(time.Minute)
	existing := &types.Appointment{
		ID:              "apt-1",
		PatientID:       "patient-1",
		DoctorID:        "doctor-1",
		AppointmentTime: start,
		Status:          types.StatusScheduled,
	}
	repo.On("GetAppointmentByID", "apt-1").Return(existing, nil)
	patientRepo.On("GetByID", "patient-1").Return(testPatient(), nil)
	doctorRepo.On("GetByID", "doctor-1").Return(testDoctor(), nil)
	repo.On("GetConflictingAppointments", "doctor-1", start, start.Add(SlotDuration), "apt-1").
		Return([]*types.Appointment{}, nil)
	repo.On("UpdateAppointment", mock.AnythingOfType("*types.Appointment")).Return(nil)

	apt, err := svc.UpdateAppointment("apt-1", &types.UpdateAppointmentRequest{
		PatientID:       "patient-1",
		DoctorID:        "doctor-1",
		AppointmentTime: start,
		Status:          types.StatusScheduled,
	})

	require.NoError(t, err)
	assert.Equal(t, types.StatusScheduled, apt.Status)
	repo.AssertExpectations(t)
}

func TestUpdateAppointmentCompletedTimeMoveStillChecksConflicts(t *testing.T) {
	svc, repo, patientRepo, doctorRepo := newTestService()

	oldStart := time.Now().Add(48 * time.Hour).Truncate(time.Minute)
	newStart := oldStart.Add(2 * time.Hour)
	existing := &types.Appointment{
		ID:              "apt-1",
		PatientID:       "patient-1",
		DoctorID:        "doctor-1",
		AppointmentTime: oldStart,
		Status:          types.StatusScheduled,
	}
	repo.On("GetAppointmentByID", "apt-1").Return(existing, nil)
	patientRepo.On("GetByID", "patient-1").Return(testPatient(), nil)
	doctorRepo.On("GetByID", "doctor-1").Return(testDoctor(), nil)
	repo.On("GetConflictingAppointments", "doctor-1", newStart, newStart.Add(SlotDuration), "apt-1").
		Return([]*types.Appointment{{ID: "apt-2"}}, nil)

	_, err := svc.UpdateAppointment("apt-1", &types.UpdateAppointmentRequest{
		PatientID:       "patient-1",
		DoctorID:        "doctor-1",
		AppointmentTime: newStart,
		Status:          types.StatusCompleted,
	})

	require.Error(t, err)
	e := types.AsError(err)
	assert.Equal(t, types.ErrCodeScheduleConflict, e.Code)
	assert.Equal(t, 409, e.HTTPStatus())
	repo.AssertNotCalled(t, "UpdateAppointment", mock.Anything)
}

func TestUpdateAppointmentCancellationSkipsConflictCheck(t *testing.T) {
	svc, repo, patientRepo, doctorRepo := newTestService()

	start := time.Now().Add(48 * time.Hour).Truncate(time.Minute)
	existing := &types.Appointment{
		ID:              "apt-1",
		PatientID:       "patient-1",
		DoctorID:        "doctor-1",
		AppointmentTime: start,
		Status:          types.StatusScheduled,
	}
	repo.On("GetAppointmentByID", "apt-1").Return(existing, nil)
	patientRepo.On("GetByID", "patient-1").Return(testPatient(), nil)
	doctorRepo.On("GetByID", "doctor-1").Return(testDoctor(), nil)
	repo.On("UpdateAppointment", mock.AnythingOfType("*types.Appointment")).Return(nil)

	apt, err := svc.UpdateAppointment("apt-1", &types.UpdateAppointmentRequest{
		PatientID:       "patient-1",
		DoctorID:        "doctor-1",
		AppointmentTime: start,
		Status:          types.StatusCancelled,
	})

	require.NoError(t, err)
	assert.Equal(t, types.StatusCancelled, apt.Status)
	repo.AssertNotCalled(t, "GetConflictingAppointments",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListScheduleGroupsByDate(t *testing.T) {
	svc, repo, _, _ := newTestService()

	day1 := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 9, 2, 10, 30, 0, 0, time.UTC)
	repo.On("ListAppointments", "").Return([]*types.Appointment{
		{ID: "a", AppointmentTime: day1},
		{ID: "b", AppointmentTime: day1.Add(30 * time.Minute)},
		{ID: "c", AppointmentTime: day2},
	}, nil)

	schedule, err := svc.ListSchedule("")

	require.NoError(t, err)
	require.Len(t, schedule, 2)
	assert.Equal(t, "2026-09-01", schedule[0].Date)
	assert.Len(t, schedule[0].Appointments, 2)
	assert.Equal(t, "2026-09-02", schedule[1].Date)
	assert.Len(t, schedule[1].Appointments, 1)
}

func TestListAppointmentsReturnsEmptySlice(t *testing.T) {
	svc, repo, _, _ := newTestService()

	repo.On("ListAppointments", "").Return([]*types.Appointment(nil), nil)

	result, err := svc.ListAppointments("")

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}
