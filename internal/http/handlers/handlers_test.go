package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/catalog"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/domain/models"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/http/middleware"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

func testStore() *catalog.Store {
	return catalog.NewStore(&catalog.Catalog{
		Hotels: map[string][]models.Hotel{
			"Bhuj": {{
				Name: "Hotel Ilark", Tier: models.TierBudget, MealPlan: "CP",
				RoomTypes: []models.RoomType{{Name: "Deluxe", Capacity: 2, Rate: 2800}},
			}},
		},
		Sightseeing: map[string][]models.Sightseeing{
			"Bhuj": {{Name: "Aina Mahal"}, {Name: "Prag Mahal"}},
		},
		Vehicles: []models.Vehicle{{Name: "Sedan", Rate: 3600, Capacity: 4}},
		Packages: []models.Package{{ID: "bhuj-2d", Name: "Bhuj Heritage", Days: 2, Route: []string{"Bhuj", "Bhuj"}}},
	})
}

// testRouter mounts the routes under test the same way the api router does.
func testRouter(t *testing.T) (*gin.Engine, *Handler) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	hd := New(testStore(), services.ShareTokens{Secret: []byte("test"), TTL: time.Hour}, 0)

	r := gin.New()
	r.Use(middleware.RequestID())
	api := r.Group("/api")
	api.GET("/health", hd.Health)
	api.GET("/packages", hd.ListPackages)
	api.POST("/sessions", hd.OpenSession)
	api.GET("/sessions/:id", hd.GetSession)
	api.DELETE("/sessions/:id", hd.CloseSession)
	api.PUT("/sessions/:id/pax", hd.SetPax)
	api.PUT("/sessions/:id/days/:day/hotel", hd.SetHotel)
	api.POST("/sessions/:id/days/:day/sightseeing/toggle", hd.ToggleSightseeing)
	api.POST("/sessions/:id/fleet", hd.AddVehicle)
	api.GET("/sessions/:id/quote", hd.GetQuote)
	api.GET("/sessions/:id/export.pdf", hd.ExportPDF)
	api.POST("/sessions/:id/share", hd.ShareSession)
	api.GET("/shared/:token/export.pdf", hd.SharedExportPDF)
	api.POST("/builder", hd.CreateDraft)
	api.PUT("/builder/:id/city", hd.SelectDraftCity)
	api.POST("/builder/:id/days", hd.AppendDraftDay)
	api.POST("/builder/:id/finish", hd.FinishDraft)
	return r, hd
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) services.SessionView {
	t.Helper()
	var v services.SessionView
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode view: %v body=%s", err, w.Body.String())
	}
	return v
}

func TestSessionEndpoints(t *testing.T) {
	r, _ := testRouter(t)

	w := do(t, r, http.MethodPost, "/api/sessions", gin.H{"packageId": "bhuj-2d", "tier": "budget", "pax": 2})
	if w.Code != http.StatusCreated {
		t.Fatalf("open status=%d body=%s", w.Code, w.Body.String())
	}
	view := decodeView(t, w)
	// 2 nights x 2800 + sedan 3600 x 2 days
	if view.Pricing.NetTotal != 5600+7200 {
		t.Fatalf("net = %d", view.Pricing.NetTotal)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing request id header")
	}

	w = do(t, r, http.MethodPost, "/api/sessions/"+view.ID+"/days/2/sightseeing/toggle", gin.H{"name": "Aina Mahal"})
	if w.Code != http.StatusOK {
		t.Fatalf("toggle status=%d body=%s", w.Code, w.Body.String())
	}
	view = decodeView(t, w)
	if got := view.Days[1].SightseeingNames(); len(got) != 1 || got[0] != "Prag Mahal" {
		t.Fatalf("day 2 sightseeing = %v", got)
	}

	w = do(t, r, http.MethodPost, "/api/sessions/"+view.ID+"/fleet", gin.H{"vehicle": "Sedan", "count": 0})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("count 0 should be rejected, status=%d", w.Code)
	}

	w = do(t, r, http.MethodPut, "/api/sessions/"+view.ID+"/days/5/hotel", gin.H{"hotel": "Hotel Ilark"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("out of range day should be rejected, status=%d", w.Code)
	}

	w = do(t, r, http.MethodPut, "/api/sessions/"+view.ID+"/pax", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing pax should be rejected, status=%d", w.Code)
	}

	w = do(t, r, http.MethodGet, "/api/sessions/"+view.ID+"/quote", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "*Bhuj Heritage - Trip Quotation*") {
		t.Fatalf("quote status=%d body=%s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/api/sessions/"+view.ID+"/export.pdf", nil)
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "application/pdf" {
		t.Fatalf("export status=%d type=%s", w.Code, w.Header().Get("Content-Type"))
	}

	w = do(t, r, http.MethodDelete, "/api/sessions/"+view.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("close status=%d", w.Code)
	}
	w = do(t, r, http.MethodGet, "/api/sessions/"+view.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("closed session status=%d", w.Code)
	}
}

func TestOpenSessionErrors(t *testing.T) {
	r, _ := testRouter(t)

	w := do(t, r, http.MethodPost, "/api/sessions", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty body status=%d", w.Code)
	}
	w = do(t, r, http.MethodPost, "/api/sessions", gin.H{"packageId": "missing"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown package status=%d", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Code != "not_found" || resp.RequestID == "" {
		t.Fatalf("unexpected error payload %s", w.Body.String())
	}
}

func TestListPackages(t *testing.T) {
	r, _ := testRouter(t)

	w := do(t, r, http.MethodGet, "/api/packages?tier=budget&pax=2&sharing=double", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Packages []packageCard `json:"packages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// hotel 2 nights x 2800, transport 2 pax x 1500 x 2 days
	if len(out.Packages) != 1 || out.Packages[0].Estimate.Total != 5600+6000 {
		t.Fatalf("unexpected packages %+v", out.Packages)
	}

	w = do(t, r, http.MethodGet, "/api/packages?tier=gold", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad tier status=%d", w.Code)
	}
}

func TestShareLink(t *testing.T) {
	r, _ := testRouter(t)

	view := decodeView(t, do(t, r, http.MethodPost, "/api/sessions", gin.H{"packageId": "bhuj-2d", "pax": 2}))
	w := do(t, r, http.MethodPost, "/api/sessions/"+view.ID+"/share", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("share status=%d body=%s", w.Code, w.Body.String())
	}
	var out struct {
		URL  string `json:"url"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil || out.URL == "" || out.Text == "" {
		t.Fatalf("share payload %s", w.Body.String())
	}

	w = do(t, r, http.MethodGet, out.URL, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("shared export status=%d body=%s", w.Code, w.Body.String())
	}
	w = do(t, r, http.MethodGet, "/api/shared/garbage/export.pdf", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad token status=%d", w.Code)
	}
}

func TestBuilderEndpoints(t *testing.T) {
	r, _ := testRouter(t)

	w := do(t, r, http.MethodPost, "/api/builder", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status=%d", w.Code)
	}
	var draft services.DraftView
	if err := json.Unmarshal(w.Body.Bytes(), &draft); err != nil {
		t.Fatalf("decode draft: %v", err)
	}

	if w = do(t, r, http.MethodPut, "/api/builder/"+draft.ID+"/city", gin.H{"city": "Bhuj"}); w.Code != http.StatusOK {
		t.Fatalf("city status=%d body=%s", w.Code, w.Body.String())
	}
	if w = do(t, r, http.MethodPost, "/api/builder/"+draft.ID+"/days", nil); w.Code != http.StatusOK {
		t.Fatalf("append status=%d body=%s", w.Code, w.Body.String())
	}
	w = do(t, r, http.MethodPost, "/api/builder/"+draft.ID+"/finish", gin.H{"name": "My Bhuj", "pax": 2})
	if w.Code != http.StatusCreated {
		t.Fatalf("finish status=%d body=%s", w.Code, w.Body.String())
	}
	view := decodeView(t, w)
	if !view.Custom || view.Package.Name != "My Bhuj" || len(view.Days) != 1 {
		t.Fatalf("unexpected custom session %+v", view)
	}
}
