package response

import "casamento_pe/internal/usecase"

type StatsResponse struct {
	TotalGifts         int            `json:"total_gifts"`
	TotalContributions int            `json:"total_contributions"`
	TotalAmount        float64        `json:"total_amount"`
	ApprovedAmount     float64        `json:"approved_amount"`
	PendingAmount      float64        `json:"pending_amount"`
	GiftsByCategory    map[string]int `json:"gifts_by_category"`
}

func FromStats(s usecase.AdminStats) StatsResponse {
	byCategory := make(map[string]int, len(s.GiftsByCategory))
	for cat, n := range s.GiftsByCategory {
		byCategory[string(cat)] = n
	}
	return StatsResponse{
		TotalGifts:         s.TotalGifts,
		TotalContributions: s.TotalContributions,
		TotalAmount:        s.TotalAmount,
		ApprovedAmount:     s.ApprovedAmount,
		PendingAmount:      s.PendingAmount,
		GiftsByCategory:    byCategory,
	}
}
