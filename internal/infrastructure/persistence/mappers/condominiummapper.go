package mappers

import (
	"encoding/json"
	"fmt"

	"genturix/internal/domain/condominium"
	"genturix/internal/infrastructure/persistence/models"
)

// CondominiumMapper converts between condominium domain objects and
// persistence models. The module map is stored as a JSON object keyed by
// module name.
type CondominiumMapper interface {
	ToModel(c *condominium.Condominium) (*models.CondominiumModel, error)
	ToDomain(m *models.CondominiumModel) (*condominium.Condominium, error)
}

type CondominiumMapperImpl struct{}

func NewCondominiumMapper() CondominiumMapper {
	return &CondominiumMapperImpl{}
}

func (mp *CondominiumMapperImpl) ToModel(c *condominium.Condominium) (*models.CondominiumModel, error) {
	if c == nil {
		return nil, fmt.Errorf("condominium cannot be nil")
	}

	modules, err := json.Marshal(c.Modules())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal modules: %w", err)
	}

	return &models.CondominiumModel{
		ID:                c.ID(),
		UUID:              c.UUID(),
		Name:              c.Name(),
		BillingStatus:     string(c.BillingStatus()),
		SeatCount:         c.SeatCount(),
		Currency:          c.Currency(),
		Modules:           modules,
		SeatPriceOverride: c.SeatPriceOverride(),
		CreatedAt:         timeToMillis(c.CreatedAt()),
		UpdatedAt:         timeToMillis(c.UpdatedAt()),
	}, nil
}

func (mp *CondominiumMapperImpl) ToDomain(m *models.CondominiumModel) (*condominium.Condominium, error) {
	if m == nil {
		return nil, fmt.Errorf("condominium model cannot be nil")
	}

	var modules map[condominium.ModuleName]bool
	if len(m.Modules) > 0 {
		if err := json.Unmarshal(m.Modules, &modules); err != nil {
			return nil, fmt.Errorf("failed to unmarshal modules: %w", err)
		}
	}

	return condominium.Reconstruct(
		m.ID,
		m.UUID,
		m.Name,
		condominium.BillingStatus(m.BillingStatus),
		m.SeatCount,
		m.Currency,
		modules,
		m.SeatPriceOverride,
		millisToTime(m.CreatedAt),
		millisToTime(m.UpdatedAt),
	)
}
