// Package report derives aggregate views from a contribution sequence
// already scoped by the caller. Every function is pure and total: empty
// input yields zero-valued results, never an error.
package report

import (
	"sort"
	"strings"

	"github.com/communityfund/fund-nexus/internal/core/domain"
)

// Summary holds the headline figures for a contribution set.
type Summary struct {
	TotalFunds         float64 `json:"total_funds"`
	TotalContributions int     `json:"total_contributions"`
	TotalDonors        int     `json:"total_donors"`
	AvgContribution    float64 `json:"avg_contribution"`
}

// Summarize computes total funds, the case-insensitive unique donor
// count, and the average contribution (0 for an empty input).
func Summarize(contributions []domain.Contribution) Summary {
	var total float64
	donors := make(map[string]struct{}, len(contributions))
	for _, c := range contributions {
		total += c.Amount
		donors[strings.ToLower(c.DonorName)] = struct{}{}
	}

	s := Summary{
		TotalFunds:         total,
		TotalContributions: len(contributions),
		TotalDonors:        len(donors),
	}
	if len(contributions) > 0 {
		s.AvgContribution = total / float64(len(contributions))
	}
	return s
}

// VillageTotal is one bar of the per-village breakdown.
type VillageTotal struct {
	Village domain.Village `json:"village"`
	Total   float64        `json:"total"`
}

// VillageBreakdown sums amounts per village. The output always carries
// one entry per known village in canonical order; villages without
// contributions report 0.
func VillageBreakdown(contributions []domain.Contribution) []VillageTotal {
	totals := make(map[domain.Village]float64, len(contributions))
	for _, c := range contributions {
		if c.Village.Valid() {
			totals[c.Village] += c.Amount
		}
	}

	out := make([]VillageTotal, 0, len(domain.Villages()))
	for _, v := range domain.Villages() {
		out = append(out, VillageTotal{Village: v, Total: totals[v]})
	}
	return out
}

// PaymentTotal is one slice of the per-payment-type breakdown.
type PaymentTotal struct {
	PaymentType domain.PaymentType `json:"payment_type"`
	Total       float64            `json:"total"`
}

// PaymentBreakdown sums amounts per payment type in canonical order.
// Unlike the village breakdown, zero entries are omitted.
func PaymentBreakdown(contributions []domain.Contribution) []PaymentTotal {
	totals := make(map[domain.PaymentType]float64, len(contributions))
	for _, c := range contributions {
		totals[c.PaymentType] += c.Amount
	}

	var out []PaymentTotal
	for _, p := range domain.PaymentTypes() {
		if totals[p] > 0 {
			out = append(out, PaymentTotal{PaymentType: p, Total: totals[p]})
		}
	}
	return out
}

// SeriesPoint is one point of the cumulative funds series.
type SeriesPoint struct {
	Date       string  `json:"date"`
	Cumulative float64 `json:"cumulative"`
}

// CumulativeSeries buckets amounts by calendar date, orders the dates
// chronologically (lexical order of YYYY-MM-DD dates), and returns the
// running total: exactly one point per distinct date in the input.
func CumulativeSeries(contributions []domain.Contribution) []SeriesPoint {
	daily := make(map[string]float64, len(contributions))
	for _, c := range contributions {
		daily[c.Date] += c.Amount
	}

	dates := make([]string, 0, len(daily))
	for d := range daily {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := make([]SeriesPoint, 0, len(dates))
	var running float64
	for _, d := range dates {
		running += daily[d]
		out = append(out, SeriesPoint{Date: d, Cumulative: running})
	}
	return out
}

// Dashboard bundles every aggregate view the overview page renders.
type Dashboard struct {
	Summary  Summary        `json:"summary"`
	Villages []VillageTotal `json:"villages"`
	Payments []PaymentTotal `json:"payments"`
	Series   []SeriesPoint  `json:"series"`
}

// BuildDashboard computes the full dashboard for a contribution set.
func BuildDashboard(contributions []domain.Contribution) *Dashboard {
	return &Dashboard{
		Summary:  Summarize(contributions),
		Villages: VillageBreakdown(contributions),
		Payments: PaymentBreakdown(contributions),
		Series:   CumulativeSeries(contributions),
	}
}
