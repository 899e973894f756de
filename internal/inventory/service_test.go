package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/uemerson199/hospitalcare-meta/pkg/logger"
	"github.com/uemerson199/hospitalcare-meta/pkg/types"
)

type mockInventoryRepo struct {
	mock.Mock
}

func (m *mockInventoryRepo) CreateMedication(med *types.Medication) error {
	return m.Called(med).Error(0)
}

func (m *mockInventoryRepo) GetMedicationByID(id string) (*types.Medication, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Medication), args.Error(1)
}

func (m *mockInventoryRepo) ListMedications(search string) ([]*types.Medication, error) {
	args := m.Called(search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Medication), args.Error(1)
}

func (m *mockInventoryRepo) UpdateMedication(med *types.Medication) error {
	return m.Called(med).Error(0)
}

func (m *mockInventoryRepo) DeleteMedication(id string) error {
	return m.Called(id).Error(0)
}

func (m *mockInventoryRepo) AdjustStock(id string, delta int) (int, error) {
	args := m.Called(id, delta)
	return args.Int(0), args.Error(1)
}

func newTestService() (*Service, *mockInventoryRepo) {
	repo := new(mockInventoryRepo)
	return NewService(logger.New("error"), repo), repo
}

func validRequest() *types.MedicationRequest {
	return &types.MedicationRequest{
		Name:         "Amoxicillin",
		SKU:          "AMOX-500",
		Description:  "Broad spectrum antibiotic",
		Manufacturer: "Generic Pharma",
		Dosage:       "500mg",
		Unit:         "capsule",
		Quantity:     20,
		MinimumStock: 10,
		Price:        12.50,
	}
}

func TestCreateMedicationSuccess(t *testing.T) {
	svc, repo := newTestService()

	repo.On("CreateMedication", mock.AnythingOfType("*types.Medication")).Return(nil)

	med, err := svc.CreateMedication(validRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, med.ID)
	assert.Equal(t, types.StockOK, med.StockStatus)
	repo.AssertExpectations(t)
}

func TestCreateMedicationValidation(t *testing.T) {
	svc, repo := newTestService()

	req := validRequest()
	req.Name = ""
	req.Quantity = -1
	req.Price = 0

	_, err := svc.CreateMedication(req)

	require.Error(t, err)
	e := types.AsError(err)
	assert.Equal(t, 400, e.HTTPStatus())
	assert.Contains(t, e.Fields, "name")
	assert.Contains(t, e.Fields, "quantity")
	assert.Contains(t, e.Fields, "price")
	repo.AssertNotCalled(t, "CreateMedication", mock.Anything)
}

func TestGetMedicationClassifiesStock(t *testing.T) {
	svc, repo := newTestService()

	repo.On("GetMedicationByID", "med-1").Return(&types.Medication{
		ID:           "med-1",
		Quantity:     5,
		MinimumStock: 10,
	}, nil)

	med, err := svc.GetMedication("med-1")

	require.NoError(t, err)
	assert.Equal(t, types.StockLow, med.StockStatus)
}

func TestListMedicationsClassifiesStock(t *testing.T) {
	svc, repo := newTestService()

	repo.On("ListMedications", "").Return([]*types.Medication{
		{ID: "a", Quantity: 0, MinimumStock: 10},
		{ID: "b", Quantity: 5, MinimumStock: 10},
		{ID: "c", Quantity: 50, MinimumStock: 10},
	}, nil)

	result, err := svc.ListMedications("")

	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, types.StockOut, result[0].StockStatus)
	assert.Equal(t, types.StockLow, result[1].StockStatus)
	assert.Equal(t, types.StockOK, result[2].StockStatus)
}

func TestAdjustStockSuccess(t *testing.T) {
	svc, repo := newTestService()

	repo.On("GetMedicationByID", "med-1").Return(&types.Medication{
		ID:           "med-1",
		Quantity:     20,
		MinimumStock: 10,
	}, nil)
	repo.On("AdjustStock", "med-1", -15).Return(5, nil)

	med, err := svc.AdjustStock("med-1", -15)

	require.NoError(t, err)
	assert.Equal(t, 5, med.Quantity)
	assert.Equal(t, types.StockLow, med.StockStatus)
	repo.AssertExpectations(t)
}

func TestAdjustStockRejectsNegativeResult(t *testing.T) {
	svc, repo := newTestService()

	repo.On("GetMedicationByID", "med-1").Return(&types.Medication{
		ID:           "med-1",
		Quantity:     3,
		MinimumStock: 10,
	}, nil)

	_, err := svc.AdjustStock("med-1", -4)

	require.Error(t, err)
	e := types.AsError(err)
	assert.Equal(t, types.ErrCodeInsufficientStock, e.Code)
	assert.Equal(t, 409, e.HTTPStatus())
	repo.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything)
}

func TestAdjustStockRejectsZeroDelta(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.AdjustStock("med-1", 0)

	require.Error(t, err)
	e := types.AsError(err)
	assert.Equal(t, 400, e.HTTPStatus())
	assert.Contains(t, e.Fields, "delta")
	repo.AssertNotCalled(t, "GetMedicationByID", mock.Anything)
}

func TestAdjustStockDrainToZero(t *testing.T) {
	svc, repo := newTestService()

	repo.On("GetMedicationByID", "med-1").Return(&types.Medication{
		ID:           "med-1",
		Quantity:     7,
		MinimumStock: 5,
	}, nil)
	repo.On("AdjustStock", "med-1", -7).Return(0, nil)

	med, err := svc.AdjustStock("med-1", -7)

	require.NoError(t, err)
	assert.Equal(t, 0, med.Quantity)
	assert.Equal(t, types.StockOut, med.StockStatus)
}
