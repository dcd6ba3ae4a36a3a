package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/communityfund/fund-nexus/internal/core/domain"
	"github.com/communityfund/fund-nexus/internal/core/ports"
)

type stubLocalityService struct {
	listFn func(ctx context.Context, actor domain.Actor) ([]domain.Locality, error)
}

func (s *stubLocalityService) List(ctx context.Context, actor domain.Actor) ([]domain.Locality, error) {
	return s.listFn(ctx, actor)
}

func (s *stubLocalityService) Create(ctx context.Context, actor domain.Actor, in ports.CreateLocalityInput) (*domain.Locality, error) {
	return nil, nil
}

func (s *stubLocalityService) Update(ctx context.Context, actor domain.Actor, l domain.Locality) (*domain.Locality, error) {
	return nil, nil
}

func (s *stubLocalityService) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	return nil
}

func localityListStub(t *testing.T) *stubLocalityService {
	t.Helper()
	return &stubLocalityService{
		listFn: func(ctx context.Context, actor domain.Actor) ([]domain.Locality, error) {
			return []domain.Locality{
				{ID: 1, Name: "North", Village: domain.VillageChandrapur},
				{ID: 2, Name: "Main Market", Village: domain.VillageMohisguha},
				{ID: 3, Name: "Riverside", Village: domain.VillageChatra},
			}, nil
		},
	}
}

func TestLocalityHandler_List_VillageQueryFilter(t *testing.T) {
	e := newTestEcho()
	h := NewLocalityHandler(localityListStub(t))

	req := httptest.NewRequest(http.MethodGet, "/localities?village=Mohisguha", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setClaims(c, "core1", "CORE", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["name"] != "Main Market" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestLocalityHandler_List_UnknownVillageQuery(t *testing.T) {
	e := newTestEcho()
	h := NewLocalityHandler(localityListStub(t))

	req := httptest.NewRequest(http.MethodGet, "/localities?village=Atlantis", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setClaims(c, "core1", "CORE", "")

	err := h.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
}

func TestLocalityHandler_List_NoFilterReturnsAll(t *testing.T) {
	e := newTestEcho()
	h := NewLocalityHandler(localityListStub(t))

	req := httptest.NewRequest(http.MethodGet, "/localities", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setClaims(c, "Firoj", "ADMIN", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 3 {
		t.Fatalf("expected 3 localities, got %d", len(resp))
	}
}
