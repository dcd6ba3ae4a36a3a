package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/communityfund/fund-nexus/internal/core/domain"
	"github.com/communityfund/fund-nexus/internal/core/ports"
)

func newContribution(donor string, village domain.Village, amount float64) *domain.Contribution {
	return &domain.Contribution{
		DonorName:   donor,
		Village:     village,
		Locality:    "North",
		Amount:      amount,
		PaymentType: domain.PaymentCash,
		Date:        "2024-01-01",
	}
}

func TestContributionStore_SequentialIds(t *testing.T) {
	ctx := context.Background()
	store := NewContributionStore()

	for i, want := range []int64{1, 2, 3} {
		c := newContribution("Donor", domain.VillageChandrapur, float64(100*(i+1)))
		if err := store.Create(ctx, c); err != nil {
			t.Fatalf("create: %v", err)
		}
		if c.ID != want {
			t.Fatalf("id = %d, want %d", c.ID, want)
		}
	}
}

func TestContributionStore_NoIdReuseAfterDelete(t *testing.T) {
	ctx := context.Background()
	store := NewContributionStore()

	a := newContribution("A", domain.VillageChandrapur, 100)
	b := newContribution("B", domain.VillageChandrapur, 200)
	_ = store.Create(ctx, a)
	_ = store.Create(ctx, b)

	if err := store.Delete(ctx, b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	c := newContribution("C", domain.VillageChandrapur, 300)
	_ = store.Create(ctx, c)
	if c.ID == b.ID {
		t.Fatalf("id %d reused after deletion", c.ID)
	}
	if c.ID != 3 {
		t.Fatalf("id = %d, want 3", c.ID)
	}
}

func TestContributionStore_ListVillageFilter(t *testing.T) {
	ctx := context.Background()
	store := NewContributionStore()
	_ = store.Create(ctx, newContribution("A", domain.VillageChandrapur, 100))
	_ = store.Create(ctx, newContribution("B", domain.VillageMohisguha, 200))
	_ = store.Create(ctx, newContribution("C", domain.VillageChandrapur, 300))

	got, err := store.List(ctx, ports.ListFilter{Village: domain.VillageChandrapur})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	for _, c := range got {
		if c.Village != domain.VillageChandrapur {
			t.Errorf("record %d outside filter village", c.ID)
		}
	}

	all, _ := store.List(ctx, ports.ListFilter{})
	if len(all) != 3 {
		t.Fatalf("unfiltered list has %d records, want 3", len(all))
	}
}

func TestContributionStore_UpdateDeleteNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewContributionStore()

	missing := newContribution("X", domain.VillageChatra, 50)
	missing.ID = 42
	if err := store.Update(ctx, missing); !errors.Is(err, domain.ErrContributionNotFound) {
		t.Fatalf("update missing = %v, want ErrContributionNotFound", err)
	}
	if err := store.Delete(ctx, 42); !errors.Is(err, domain.ErrContributionNotFound) {
		t.Fatalf("delete missing = %v, want ErrContributionNotFound", err)
	}
}

func TestUserStore_CaseInsensitiveLookup(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore()
	_ = store.Create(ctx, &domain.User{Username: "Firoj", Role: domain.RoleAdmin})

	u, err := store.FindByUsername(ctx, "fIROJ")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if u.Username != "Firoj" {
		t.Fatalf("username = %q, want stored casing preserved", u.Username)
	}

	if _, err := store.FindByUsername(ctx, "nobody"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("missing user = %v, want ErrUserNotFound", err)
	}
}
