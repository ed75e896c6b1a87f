package response

import "webux_bd/internal/domain/entities"

type PricingTierResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Price        string   `json:"price"`
	NumericPrice float64  `json:"numeric_price"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Highlighted  bool     `json:"highlighted"`
	ButtonText   string   `json:"button_text"`
}

func FromPricingTiers(tiers []entities.PricingTier) []PricingTierResponse {
	out := make([]PricingTierResponse, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, PricingTierResponse{
			ID:           t.ID,
			Name:         t.Name,
			Price:        t.Price,
			NumericPrice: t.NumericPrice,
			Description:  t.Description,
			Features:     t.Features,
			Highlighted:  t.Highlighted,
			ButtonText:   t.ButtonText,
		})
	}
	return out
}
