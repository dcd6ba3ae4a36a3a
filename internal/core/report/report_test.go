package report

import (
	"testing"

	"github.com/communityfund/fund-nexus/internal/core/domain"
)

func contrib(donor string, village domain.Village, amount float64, payment domain.PaymentType, date string) domain.Contribution {
	return domain.Contribution{
		DonorName:   donor,
		Village:     village,
		Locality:    "North",
		Amount:      amount,
		PaymentType: payment,
		Date:        date,
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalFunds != 0 || s.TotalContributions != 0 || s.TotalDonors != 0 || s.AvgContribution != 0 {
		t.Fatalf("empty summary = %+v, want all zeroes", s)
	}
}

func TestSummarize_CaseInsensitiveDonors(t *testing.T) {
	s := Summarize([]domain.Contribution{
		contrib("Amit Singh", domain.VillageChandrapur, 500, domain.PaymentCash, "2024-01-01"),
		contrib("amit singh", domain.VillageChandrapur, 1000, domain.PaymentOnline, "2024-01-02"),
		contrib("Priya Sharma", domain.VillageChatra, 300, domain.PaymentCash, "2024-01-02"),
	})
	if s.TotalDonors != 2 {
		t.Fatalf("TotalDonors = %d, want 2 (case-insensitive)", s.TotalDonors)
	}
	if s.TotalFunds != 1800 {
		t.Fatalf("TotalFunds = %v, want 1800", s.TotalFunds)
	}
	if s.TotalContributions != 3 {
		t.Fatalf("TotalContributions = %d, want 3", s.TotalContributions)
	}
	if s.AvgContribution != 600 {
		t.Fatalf("AvgContribution = %v, want 600", s.AvgContribution)
	}
}

func TestVillageBreakdown_AllVillagesPresent(t *testing.T) {
	got := VillageBreakdown([]domain.Contribution{
		contrib("A", domain.VillageChandrapur, 500, domain.PaymentCash, "2024-01-01"),
		contrib("B", domain.VillageChandrapur, 1000, domain.PaymentOnline, "2024-01-01"),
		contrib("C", domain.VillageMohisguha, 750, domain.PaymentCash, "2024-01-01"),
	})
	want := []VillageTotal{
		{Village: domain.VillageChandrapur, Total: 1500},
		{Village: domain.VillageMohisguha, Total: 750},
		{Village: domain.VillageChatra, Total: 0},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestVillageBreakdown_Empty(t *testing.T) {
	got := VillageBreakdown(nil)
	if len(got) != 3 {
		t.Fatalf("got %d entries, want one per known village", len(got))
	}
	for _, vt := range got {
		if vt.Total != 0 {
			t.Errorf("village %s total = %v, want 0", vt.Village, vt.Total)
		}
	}
}

func TestPaymentBreakdown_OmitsZeroEntries(t *testing.T) {
	got := PaymentBreakdown([]domain.Contribution{
		contrib("A", domain.VillageChandrapur, 500, domain.PaymentCash, "2024-01-01"),
		contrib("B", domain.VillageChatra, 200, domain.PaymentCash, "2024-01-02"),
	})
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1 (zero types omitted)", len(got))
	}
	if got[0].PaymentType != domain.PaymentCash || got[0].Total != 700 {
		t.Fatalf("entry = %+v, want Cash 700", got[0])
	}

	if got := PaymentBreakdown(nil); len(got) != 0 {
		t.Fatalf("empty input breakdown has %d entries, want 0", len(got))
	}
}

func TestCumulativeSeries_SortsAndAccumulates(t *testing.T) {
	got := CumulativeSeries([]domain.Contribution{
		contrib("A", domain.VillageChandrapur, 100, domain.PaymentCash, "2024-01-02"),
		contrib("B", domain.VillageChandrapur, 200, domain.PaymentCash, "2024-01-01"),
	})
	want := []SeriesPoint{
		{Date: "2024-01-01", Cumulative: 200},
		{Date: "2024-01-02", Cumulative: 300},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCumulativeSeries_SameDateSharesBucket(t *testing.T) {
	got := CumulativeSeries([]domain.Contribution{
		contrib("A", domain.VillageChandrapur, 100, domain.PaymentCash, "2024-03-05"),
		contrib("B", domain.VillageChatra, 150, domain.PaymentOnline, "2024-03-05"),
	})
	if len(got) != 1 {
		t.Fatalf("got %d points, want 1 per distinct date", len(got))
	}
	if got[0].Cumulative != 250 {
		t.Fatalf("cumulative = %v, want 250", got[0].Cumulative)
	}
}

func TestBuildDashboard_Empty(t *testing.T) {
	d := BuildDashboard(nil)
	if d.Summary.TotalFunds != 0 {
		t.Fatalf("TotalFunds = %v, want 0", d.Summary.TotalFunds)
	}
	if len(d.Villages) != 3 {
		t.Fatalf("villages = %d, want 3", len(d.Villages))
	}
	if len(d.Payments) != 0 || len(d.Series) != 0 {
		t.Fatalf("payments/series not empty for empty input")
	}
}
