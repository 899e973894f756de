package patients

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/uemerson199/hospitalcare-meta/pkg/logger"
	"github.com/uemerson199/hospitalcare-meta/pkg/types"
)

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

func newTestService() (*Service, *mockPatientRepo) {
	repo := new(mockPatientRepo)
	return NewService(logger.New("error"), repo), repo
}

func TestCreatePatientSuccess(t *testing.T) {
	svc, repo := newTestService()

	repo.On("Create", mock.AnythingOfType("*types.Patient")).Return(nil)

	patient, err := svc.CreatePatient(&types.PatientRequest{
		Name:       "  Alice Silva  ",
		DOB:        "1990-03-15",
		NationalID: "123.456.789-00",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, patient.ID)
	assert.Equal(t, "Alice Silva", patient.Name)
	repo.AssertExpectations(t)
}

func TestCreatePatientInvalidNationalID(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.CreatePatient(&types.PatientRequest{
		Name:       "Alice Silva",
		DOB:        "1990-03-15",
		NationalID: "12345678900",
	})

	require.Error(t, err)
	e := types.AsError(err)
	assert.Equal(t, 400, e.HTTPStatus())
	assert.Contains(t, e.Fields, "nationalId")
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreatePatientInvalidDOB(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.CreatePatient(&types.PatientRequest{
		Name:       "Alice Silva",
		DOB:        "15/03/1990",
		NationalID: "123.456.789-00",
	})

	require.Error(t, err)
	e := types.AsError(err)
	assert.Equal(t, 400, e.HTTPStatus())
	assert.Contains(t, e.Fields, "dob")
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreatePatientMissingFields(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.CreatePatient(&types.PatientRequest{})

	require.Error(t, err)
	e := types.AsError(err)
	assert.Contains(t, e.Fields, "name")
	assert.Contains(t, e.Fields, "dob")
	assert.Contains(t, e.Fields, "nationalId")
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestListPatientsReturnsEmptySlice(t *testing.T) {
	svc, repo := newTestService()

	repo.On("List", "").Return([]*types.Patient(nil), nil)

	result, err := svc.ListPatients("")

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestUpdatePatientNotFound(t *testing.T) {
	svc, repo := newTestService()

	repo.On("GetByID", "missing").
		Return(nil, types.NewNotFoundError(types.ErrCodeNotFound, "Patient not found"))

	_, err := svc.UpdatePatient("missing", &types.PatientRequest{
		Name:       "Alice Silva",
		DOB:        "1990-03-15",
		NationalID: "123.456.789-00",
	})

	require.Error(t, err)
	assert.Equal(t, 404, types.AsError(err).HTTPStatus())
	repo.AssertNotCalled(t, "Update", mock.Anything)
}
