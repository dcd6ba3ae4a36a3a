package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/communityfund/fund-nexus/internal/core/domain"
	"github.com/communityfund/fund-nexus/internal/core/ports"
)

type stubContributionService struct {
	listFn   func(ctx context.Context, actor domain.Actor) ([]domain.Contribution, error)
	createFn func(ctx context.Context, actor domain.Actor, in ports.CreateContributionInput) (*domain.Contribution, error)
	updateFn func(ctx context.Context, actor domain.Actor, c domain.Contribution) (*domain.Contribution, error)
	deleteFn func(ctx context.Context, actor domain.Actor, id int64) error
}

func (s *stubContributionService) List(ctx context.Context, actor domain.Actor) ([]domain.Contribution, error) {
	return s.listFn(ctx, actor)
}

func (s *stubContributionService) Create(ctx context.Context, actor domain.Actor, in ports.CreateContributionInput) (*domain.Contribution, error) {
	return s.createFn(ctx, actor, in)
}

func (s *stubContributionService) Update(ctx context.Context, actor domain.Actor, c domain.Contribution) (*domain.Contribution, error) {
	return s.updateFn(ctx, actor, c)
}

func (s *stubContributionService) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	return s.deleteFn(ctx, actor, id)
}

// setClaims mimics what the Auth middleware injects.
func setClaims(c echo.Context, username, role, village string) {
	c.Set("username", username)
	c.Set("role", role)
	c.Set("village", village)
}

func TestContributionHandler_List_PassesActor(t *testing.T) {
	e := newTestEcho()
	stub := &stubContributionService{
		listFn: func(ctx context.Context, actor domain.Actor) ([]domain.Contribution, error) {
			if actor.Role != domain.RoleManager || actor.AssignedVillage != domain.VillageMohisguha {
				t.Fatalf("unexpected actor: %+v", actor)
			}
			return []domain.Contribution{{ID: 7, DonorName: "Rahim Sheikh", Village: domain.VillageMohisguha}}, nil
		},
	}
	h := NewContributionHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/contributions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setClaims(c, "manager_mohisguha", "MANAGER", "Mohisguha")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["donor_name"] != "Rahim Sheikh" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestContributionHandler_MissingClaims(t *testing.T) {
	e := newTestEcho()
	stub := &stubContributionService{
		listFn: func(ctx context.Context, actor domain.Actor) ([]domain.Contribution, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewContributionHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/contributions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 error, got %v", err)
	}
}

func TestContributionHandler_ManagerWithoutVillageClaim(t *testing.T) {
	e := newTestEcho()
	stub := &stubContributionService{
		listFn: func(ctx context.Context, actor domain.Actor) ([]domain.Contribution, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewContributionHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/contributions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setClaims(c, "manager_chatra", "MANAGER", "")

	err := h.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 error, got %v", err)
	}
}

func TestContributionHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubContributionService{
		createFn: func(ctx context.Context, actor domain.Actor, in ports.CreateContributionInput) (*domain.Contribution, error) {
			if in.DonorName != "Amit Singh" || in.Amount != 500 || in.PaymentType != domain.PaymentCash {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Contribution{
				ID:          1,
				DonorName:   in.DonorName,
				Village:     domain.VillageChandrapur,
				Locality:    in.Locality,
				Amount:      in.Amount,
				PaymentType: in.PaymentType,
				Date:        "2026-08-31",
			}, nil
		},
	}
	h := NewContributionHandler(stub)

	body := strings.NewReader(`{"donor_name":"Amit Singh","locality":"North","amount":500,"payment_type":"Cash"}`)
	req := httptest.NewRequest(http.MethodPost, "/contributions", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setClaims(c, "core1", "CORE", "")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestContributionHandler_Create_RejectsBadPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubContributionService{
		createFn: func(ctx context.Context, actor domain.Actor, in ports.CreateContributionInput) (*domain.Contribution, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewContributionHandler(stub)

	cases := map[string]string{
		"missing donor":   `{"locality":"North","amount":500,"payment_type":"Cash"}`,
		"zero amount":     `{"donor_name":"A","locality":"North","amount":0,"payment_type":"Cash"}`,
		"bad payment":     `{"donor_name":"A","locality":"North","amount":5,"payment_type":"Cheque"}`,
		"bad village":     `{"donor_name":"A","village":"Atlantis","locality":"North","amount":5,"payment_type":"Cash"}`,
		"malformed date":  `{"donor_name":"A","locality":"North","amount":5,"payment_type":"Cash","date":"31-08-2026"}`,
		"not json at all": `{`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/contributions", strings.NewReader(body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			setClaims(c, "core1", "CORE", "")

			err := h.Create(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 error, got %v", err)
			}
		})
	}
}

func TestContributionHandler_Update_InvalidID(t *testing.T) {
	e := newTestEcho()
	stub := &stubContributionService{
		updateFn: func(ctx context.Context, actor domain.Actor, in domain.Contribution) (*domain.Contribution, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewContributionHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/contributions/abc", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	setClaims(c, "core1", "CORE", "")

	err := h.Update(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
}

func TestContributionHandler_Delete_PropagatesForbidden(t *testing.T) {
	e := newTestEcho()
	stub := &stubContributionService{
		deleteFn: func(ctx context.Context, actor domain.Actor, id int64) error {
			return domain.ErrForbidden
		},
	}
	h := NewContributionHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/contributions/3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")
	setClaims(c, "core1", "CORE", "")

	err := h.Delete(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
