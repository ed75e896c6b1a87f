package response

import "webux_bd/internal/domain/entities"

type DomainResultResponse struct {
	Name        string `json:"name"`
	IsAvailable bool   `json:"is_available"`
	Price       string `json:"price"`
	Reasoning   string `json:"reasoning,omitempty"`
}

func FromDomainResults(results []entities.DomainResult) []DomainResultResponse {
	out := make([]DomainResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, DomainResultResponse{
			Name:        r.Name,
			IsAvailable: r.IsAvailable,
			Price:       r.Price,
			Reasoning:   r.Reasoning,
		})
	}
	return out
}
