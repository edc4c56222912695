package domain

import "fmt"

// Shop is a single record of the rental catalog.
// Records are loaded once at startup and never mutated afterwards.
type Shop struct {
	ID          string   `json:"id" mapstructure:"id"`
	Name        string   `json:"name" mapstructure:"name"`
	Location    string   `json:"location" mapstructure:"location"`
	Address     string   `json:"address" mapstructure:"address"`
	Phone       string   `json:"phone" mapstructure:"phone"`
	Website     string   `json:"website" mapstructure:"website"`
	Description string   `json:"description" mapstructure:"description"`
	Services    []string `json:"services" mapstructure:"services"`
	Equipment   []string `json:"equipment" mapstructure:"equipment"`
	PriceRange  string   `json:"priceRange" mapstructure:"price_range"`
	Hours       string   `json:"hours,omitempty" mapstructure:"hours"`
}

// Clone returns a deep copy so callers can never alias the store's tag slices.
func (s Shop) Clone() Shop {
	s.Services = append([]string(nil), s.Services...)
	s.Equipment = append([]string(nil), s.Equipment...)
	return s
}

// HasService reports whether any service tag equals tag.
func (s Shop) HasService(tag string) bool {
	return containsTag(s.Services, tag)
}

// HasEquipment reports whether any equipment tag equals tag.
func (s Shop) HasEquipment(tag string) bool {
	return containsTag(s.Equipment, tag)
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ValidateCatalog checks the record-set invariants: every id is non-empty and unique.
func ValidateCatalog(shops []Shop) error {
	seen := make(map[string]int, len(shops))
	for i, s := range shops {
		if s.ID == "" {
			return fmt.Errorf("%w: record %d has no id", ErrInvalidCatalog, i)
		}
		if prev, ok := seen[s.ID]; ok {
			return fmt.Errorf("%w: id %q is defined by records %d and %d", ErrInvalidCatalog, s.ID, prev, i)
		}
		seen[s.ID] = i
	}
	return nil
}
