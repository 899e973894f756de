package inventory

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/uemerson199/hospitalcare-meta/pkg/interfaces"
	"github.com/uemerson199/hospitalcare-meta/pkg/logger"
	"github.com/uemerson199/hospitalcare-meta/pkg/monitoring"
	"github.com/uemerson199/hospitalcare-meta/pkg/types"
)

// Service implements the InventoryService interface
type Service struct {
	logger     *logger.Logger
	repository interfaces.InventoryRepository
}

// NewService creates a new inventory service
func NewService(log *logger.Logger, repository interfaces.InventoryRepository) *Service {
	return &Service{
		logger:     log,
		repository: repository,
	}
}

// CreateMedication validates and persists a new medication
func (s *Service) CreateMedication(req *types.MedicationRequest) (*types.Medication, error) {
	if err := validateMedicationRequest(req); err != nil {
		return nil, err
	}

	now := time.Now()
	med := &types.Medication{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(req.Name),
		SKU:          strings.TrimSpace(req.SKU),
		Description:  strings.TrimSpace(req.Description),
		Manufacturer: strings.TrimSpace(req.Manufacturer),
		Dosage:       strings.TrimSpace(req.Dosage),
		Unit:         strings.TrimSpace(req.Unit),
		Quantity:     req.Quantity,
		MinimumStock: req.MinimumStock,
		Price:        req.Price,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repository.CreateMedication(med); err != nil {
		return nil, err
	}

	med.StockStatus = types.ClassifyStock(med.Quantity, med.MinimumStock)
	return med, nil
}

// GetMedication retrieves a medication by ID
func (s *Service) GetMedication(id string) (*types.Medication, error) {
	med, err := s.repository.GetMedicationByID(id)
	if err != nil {
		return nil, err
	}

	med.StockStatus = types.ClassifyStock(med.Quantity, med.MinimumStock)
	return med, nil
}

// ListMedications retrieves medications matching an optional search term
func (s *Service) ListMedications(search string) ([]*types.Medication, error) {
	result, err := s.repository.ListMedications(search)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []*types.Medication{}
	}

	for _, med := range result {
		med.StockStatus = types.ClassifyStock(med.Quantity, med.MinimumStock)
	}
	return result, nil
}

// UpdateMedication validates and applies a full in-place replacement. The
// row is updated in a single statement so concurrent stock adjustments are
// never partially overwritten.
func (s *Service) UpdateMedication(id string, req *types.MedicationRequest) (*types.Medication, error) {
	if err := validateMedicationRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.repository.GetMedicationByID(id)
	if err != nil {
		return nil, err
	}

	existing.Name = strings.TrimSpace(req.Name)
	existing.SKU = strings.TrimSpace(req.SKU)
	existing.Description = strings.TrimSpace(req.Description)
	existing.Manufacturer = strings.TrimSpace(req.Manufacturer)
	existing.Dosage = strings.TrimSpace(req.Dosage)
	existing.Unit = strings.TrimSpace(req.Unit)
	existing.Quantity = req.Quantity
	existing.MinimumStock = req.MinimumStock
	existing.Price = req.Price
	existing.UpdatedAt = time.Now()

	if err := s.repository.UpdateMedication(existing); err != nil {
		return nil, err
	}

	existing.StockStatus = types.ClassifyStock(existing.Quantity, existing.MinimumStock)
	return existing, nil
}

// DeleteMedication removes a medication
func (s *Service) DeleteMedication(id string) error {
	return s.repository.DeleteMedication(id)
}

// AdjustStock applies a signed delta to a medication's quantity. The delta
// is validated against the current quantity before the write, and the write
// itself re-checks the bound.
func (s *Service) AdjustStock(id string, delta int) (*types.Medication, error) {
	if delta == 0 {
		return nil, types.NewValidationError("Stock adjustment validation failed",
			map[string]string{"delta": "delta must not be zero"})
	}

	existing, err := s.repository.GetMedicationByID(id)
	if err != nil {
		return nil, err
	}

	if existing.Quantity+delta < 0 {
		monitoring.RecordStockAdjustment(false)
		return nil, types.NewConflictError(types.ErrCodeInsufficientStock,
			"Stock adjustment would make the quantity negative",
			map[string]string{
				"delta":    "insufficient stock for this adjustment",
				"quantity": strconv.Itoa(existing.Quantity),
			})
	}

	quantity, err := s.repository.AdjustStock(id, delta)
	if err != nil {
		monitoring.RecordStockAdjustment(false)
		return nil, err
	}

	monitoring.RecordStockAdjustment(true)
	existing.Quantity = quantity
	existing.UpdatedAt = time.Now()
	existing.StockStatus = types.ClassifyStock(existing.Quantity, existing.MinimumStock)
	return existing, nil
}

// validateMedicationRequest validates medication input before any persistence
func validateMedicationRequest(req *types.MedicationRequest) error {
	fields := map[string]string{}

	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(req.SKU) == "" {
		fields["sku"] = "sku is required"
	}
	if strings.TrimSpace(req.Manufacturer) == "" {
		fields["manufacturer"] = "manufacturer is required"
	}
	if strings.TrimSpace(req.Dosage) == "" {
		fields["dosage"] = "dosage is required"
	}
	if strings.TrimSpace(req.Unit) == "" {
		fields["unit"] = "unit is required"
	}
	if req.Quantity < 0 {
		fields["quantity"] = "quantity must not be negative"
	}
	if req.MinimumStock < 0 {
		fields["minimumStock"] = "minimumStock must not be negative"
	}
	if req.Price <= 0 {
		fields["price"] = "price must be positive"
	}

	if len(fields) > 0 {
		return types.NewValidationError("Medication validation failed", fields)
	}

	return nil
}
