package application

import (
	"github.com/featherform/featherform/internal/domain/commerce"
	"github.com/featherform/featherform/internal/domain/form"
	"github.com/featherform/featherform/internal/repository"
)

// InventoryMap maps an option id (SKU) to its available stock count.
type InventoryMap map[string]int

// CountingStrategy decides how a SKU's level history collapses into one
// available count.
type CountingStrategy string

const (
	// CountSumPositive sums every level diff and floors negatives at zero
	// when aggregating form-level availability.
	CountSumPositive CountingStrategy = "sum_positive"
)

type InventoryService struct {
	repos *repository.Repos
}

func NewInventoryService(repos *repository.Repos) *InventoryService {
	return &InventoryService{repos: repos}
}

// OptionsInventory builds the option-id → stock map for a store.
func (s *InventoryService) OptionsInventory(projectID uint, storeID string) (InventoryMap, error) {
	items, err := s.repos.Inventory.ListItemsByStore(projectID, storeID)
	if err != nil {
		return nil, err
	}
	inv := make(InventoryMap, len(items))
	for _, item := range items {
		total := 0
		for _, level := range item.Levels {
			total += level.Diff
		}
		inv[item.SKU] = total
	}
	return inv, nil
}

// ValidateOptionsInventory checks a (possibly absent) option selection
// against stock. Form-level availability is the sum of positive per-option
// counts; a zero sum means the whole form is sold out regardless of the
// selection.
func ValidateOptionsInventory(inv InventoryMap, options []form.FieldOption, selection *string, strategy CountingStrategy) *InventoryError {
	connected := 0
	available := 0
	for _, opt := range options {
		count, ok := inv[opt.ID]
		if !ok {
			continue
		}
		connected++
		if count > 0 {
			available += count
		}
	}

	// a store connection without inventory-tracked options constrains nothing
	if connected == 0 {
		return nil
	}

	if available == 0 {
		return &InventoryError{
			Code:    CodeFormSoldOut,
			Message: "every option connected to inventory is out of stock",
		}
	}

	if selection != nil {
		if count, ok := inv[*selection]; ok && count <= 0 {
			return &InventoryError{
				Code:    CodeFormOptionUnavailable,
				Message: "the selected option is out of stock",
			}
		}
	}

	return nil
}

// DecrementForOrder records a -1 stock adjustment for the selected SKU.
// This is not transactionally linked to response persistence; a later
// failure does not restore the level.
func (s *InventoryService) DecrementForOrder(projectID uint, storeID, sku string) error {
	return s.repos.Inventory.AddLevel(projectID, storeID, sku, -1, commerce.ReasonOrder)
}
