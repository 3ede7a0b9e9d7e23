package service

import (
	"outreach_backend/internal/leads/domain"
	"outreach_backend/internal/leads/repository"
)

// StatusCounts aggregates leads by engagement status.
type StatusCounts struct {
	Total        int `json:"total"`
	Hot          int `json:"hot"`
	Warm         int `json:"warm"`
	Cold         int `json:"cold"`
	NotResponded int `json:"notResponded"`
}

// CountsByStatus tallies the lead set. Pure and O(n); recomputed per call.
func CountsByStatus(leads []repository.Lead) StatusCounts {
	counts := StatusCounts{Total: len(leads)}
	for _, lead := range leads {
		switch lead.EngagementStatus {
		case domain.StatusHot:
			counts.Hot++
		case domain.StatusWarm:
			counts.Warm++
		case domain.StatusCold:
			counts.Cold++
		default:
			counts.NotResponded++
		}
	}
	return counts
}

// AllUnengaged reports whether every lead is still unresponded. An empty
// lead set is not considered unengaged.
func AllUnengaged(leads []repository.Lead) bool {
	if len(leads) == 0 {
		return false
	}
	for _, lead := range leads {
		if lead.EngagementStatus != domain.StatusNotResponded {
			return false
		}
	}
	return true
}
