package service

import (
	"context"
	"errors"
	"testing"

	"github.com/communityfund/fund-nexus/internal/core/domain"
	"github.com/communityfund/fund-nexus/internal/core/ports"
	"github.com/communityfund/fund-nexus/internal/infrastructure/db/memory"
)

func newLocalityFixture(t *testing.T) *LocalityService {
	t.Helper()
	svc := NewLocalityService(memory.NewLocalityStore(), discardLogger)
	ctx := context.Background()
	seed := []ports.CreateLocalityInput{
		{Name: "North", Village: domain.VillageChandrapur},
		{Name: "South", Village: domain.VillageChandrapur},
		{Name: "Main Market", Village: domain.VillageMohisguha},
	}
	for _, in := range seed {
		if _, err := svc.Create(ctx, coreActor, in); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return svc
}

func TestLocalityList_ManagerScoped(t *testing.T) {
	svc := newLocalityFixture(t)

	got, err := svc.List(context.Background(), managerActor)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("manager sees %d localities, want 2", len(got))
	}
	for _, l := range got {
		if l.Village != domain.VillageChandrapur {
			t.Errorf("locality %q outside manager scope", l.Name)
		}
	}
}

func TestLocalityWrites_ManagerForbidden(t *testing.T) {
	svc := newLocalityFixture(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, managerActor, ports.CreateLocalityInput{Name: "East", Village: domain.VillageChandrapur}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("manager create = %v, want ErrForbidden", err)
	}
	if _, err := svc.Update(ctx, managerActor, domain.Locality{ID: 1, Name: "Renamed", Village: domain.VillageChandrapur}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("manager update = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(ctx, managerActor, 1); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("manager delete = %v, want ErrForbidden", err)
	}

	// The failed writes changed nothing.
	all, _ := svc.List(ctx, coreActor)
	if len(all) != 3 {
		t.Fatalf("store has %d localities after forbidden writes, want 3", len(all))
	}
}

func TestLocalityDelete_CoreForbiddenAdminAllowed(t *testing.T) {
	svc := newLocalityFixture(t)
	ctx := context.Background()

	if err := svc.Delete(ctx, coreActor, 1); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("core delete = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(ctx, adminActor, 1); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if err := svc.Delete(ctx, adminActor, 99); !errors.Is(err, domain.ErrLocalityNotFound) {
		t.Fatalf("missing delete = %v, want ErrLocalityNotFound", err)
	}
}

func TestLocalityUpdate_CoreAllowed(t *testing.T) {
	svc := newLocalityFixture(t)

	updated, err := svc.Update(context.Background(), coreActor, domain.Locality{ID: 1, Name: "North Block", Village: domain.VillageChandrapur})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "North Block" {
		t.Fatalf("name = %q, want North Block", updated.Name)
	}
}
