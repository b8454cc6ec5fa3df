package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	intconfig "travelsuggester/internal/config"
	"travelsuggester/internal/domain/models"
	"travelsuggester/internal/planner"
	"travelsuggester/internal/repositories"
	"travelsuggester/internal/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func clock() time.Time { return time.Date(2025, 3, 1, 19, 0, 0, 0, time.UTC) }

func newTestRouter(t *testing.T, auth services.AuthService) *gin.Engine {
	t.Helper()
	svc := services.New(repositories.NewMemoryStore(clock), clock)
	svc.Auth = auth
	return NewRouter(intconfig.Env{CORSAllowedOrigins: []string{"*"}}, svc)
}

func do(r http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return out
}

func TestRootAndHealth(t *testing.T) {
	r := newTestRouter(t, services.AuthService{})
	w := do(r, http.MethodGet, "/", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Travel Suggester API is running") {
		t.Fatalf("GET / = %d %s", w.Code, w.Body.String())
	}
	if w := do(r, http.MethodGet, "/api/health", ""); w.Code != http.StatusOK {
		t.Fatalf("GET /api/health = %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/nope", ""); w.Code != http.StatusNotFound {
		t.Fatalf("GET /nope = %d", w.Code)
	}
}

func TestPlacesFlow(t *testing.T) {
	r := newTestRouter(t, services.AuthService{})

	w := do(r, http.MethodPost, "/places/", `{"name":"Pookode Lake","category":"nature","rating":4.2,"location":"Vythiri","latitude":11.5413,"longitude":76.0286}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create = %d %s", w.Code, w.Body.String())
	}
	created := decode[models.Place](t, w)
	if created.ID != 1 || created.Latitude == nil {
		t.Fatalf("unexpected place %+v", created)
	}

	if w := do(r, http.MethodPost, "/places", `{"name":"","rating":1}`); w.Code != http.StatusBadRequest {
		t.Fatalf("blank name = %d", w.Code)
	}
	if w := do(r, http.MethodPost, "/places/", `{"name":"x","rating":7}`); w.Code != http.StatusBadRequest {
		t.Fatalf("bad rating = %d", w.Code)
	}

	w = do(r, http.MethodGet, "/api/places?category=nature", "")
	if got := decode[[]models.Place](t, w); len(got) != 1 {
		t.Fatalf("list = %d", len(got))
	}
	w = do(r, http.MethodGet, "/places/?category=restaurant", "")
	if got := decode[[]models.Place](t, w); len(got) != 0 {
		t.Fatalf("filtered list = %d", len(got))
	}
	w = do(r, http.MethodGet, "/places/?skip=0&limit=9223372036854775807", "")
	if got := decode[[]models.Place](t, w); w.Code != http.StatusOK || len(got) != 1 {
		t.Fatalf("max limit = %d %s", w.Code, w.Body.String())
	}
	w = do(r, http.MethodGet, "/places/?skip=1&limit=9223372036854775807", "")
	if got := decode[[]models.Place](t, w); w.Code != http.StatusOK || len(got) != 0 {
		t.Fatalf("max limit with skip = %d %s", w.Code, w.Body.String())
	}
	if w := do(r, http.MethodGet, "/places/?limit=abc", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("bad limit = %d", w.Code)
	}

	w = do(r, http.MethodGet, "/places/nearby?lat=11.54&lng=76.03", "")
	if got := decode[[]models.Place](t, w); w.Code != http.StatusOK || len(got) != 1 {
		t.Fatalf("nearby = %d %s", w.Code, w.Body.String())
	}
	if w := do(r, http.MethodGet, "/places/nearby?lat=11.54", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("nearby without lng = %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/places/nearby?lat=100&lng=0", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("nearby lat=100 = %d", w.Code)
	}

	w = do(r, http.MethodGet, "/places/search?q=Lake", "")
	if got := decode[[]models.Place](t, w); len(got) != 1 {
		t.Fatalf("search = %d", len(got))
	}
	if w := do(r, http.MethodGet, "/places/search", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("search without q = %d", w.Code)
	}
}

func TestTripsFlow(t *testing.T) {
	r := newTestRouter(t, services.AuthService{})

	w := do(r, http.MethodPost, "/trips/", `{"origin":"Sulthan Bathery","destination":"IIIT Kottayam","departure_time":"19:00","mode":"bus"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create = %d %s", w.Code, w.Body.String())
	}
	trip := decode[models.Trip](t, w)
	if trip.TravelPlan != planner.SulthanBatheryToIIITKottayam.Plan {
		t.Fatalf("unexpected plan %q", trip.TravelPlan)
	}

	w = do(r, http.MethodGet, "/trips/"+trip.TripNumber, "")
	if got := decode[models.Trip](t, w); got.ID != trip.ID {
		t.Fatalf("get = %+v", got)
	}
	if w := do(r, http.MethodGet, "/trips/TRIP1", ""); w.Code != http.StatusNotFound {
		t.Fatalf("missing trip = %d", w.Code)
	}

	w = do(r, http.MethodGet, "/trips/"+trip.TripNumber+"/pdf", "")
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "application/pdf" {
		t.Fatalf("pdf = %d %s", w.Code, w.Header().Get("Content-Type"))
	}

	if w := do(r, http.MethodPost, "/trips/", `{"origin":"A"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("incomplete trip = %d", w.Code)
	}
	if w := do(r, http.MethodPost, "/trips/", `{`); w.Code != http.StatusBadRequest {
		t.Fatalf("malformed json = %d", w.Code)
	}

	w = do(r, http.MethodGet, "/trips/", "")
	if got := decode[[]models.Trip](t, w); len(got) != 1 {
		t.Fatalf("list = %d", len(got))
	}
}

func TestBusRoutesReviewsAndStats(t *testing.T) {
	r := newTestRouter(t, services.AuthService{})

	if w := do(r, http.MethodPost, "/seed-data", ""); w.Code != http.StatusOK {
		t.Fatalf("seed = %d %s", w.Code, w.Body.String())
	}

	w := do(r, http.MethodPost, "/bus-routes/", `{"route_name":"Kalpetta - Mysore","departure_time":"07:00"}`)
	if got := decode[models.BusRoute](t, w); got.Operator != "KSRTC" {
		t.Fatalf("operator = %q", got.Operator)
	}

	w = do(r, http.MethodGet, "/bus-routes/search?origin=Kalpetta&destination=Pala", "")
	if got := decode[[]models.BusRoute](t, w); len(got) != 3 {
		t.Fatalf("search = %d", len(got))
	}
	w = do(r, http.MethodGet, "/bus-routes/nearby?location=Kochi", "")
	if got := decode[[]models.BusRoute](t, w); len(got) != 1 {
		t.Fatalf("nearby = %d", len(got))
	}

	for _, body := range []string{
		`{"place_id":1,"user_name":"a","rating":4,"comment":"ok"}`,
		`{"place_id":1,"user_name":"b","rating":5,"comment":"great"}`,
	} {
		w := do(r, http.MethodPost, "/reviews/", body)
		if w.Code != http.StatusOK {
			t.Fatalf("review = %d %s", w.Code, w.Body.String())
		}
		resp := decode[struct {
			Message string        `json:"message"`
			Review  models.Review `json:"review"`
		}](t, w)
		if resp.Message != "Review created successfully" || resp.Review.ID == 0 || resp.Review.PlaceID != 1 {
			t.Fatalf("review response = %+v", resp)
		}
	}
	if w := do(r, http.MethodPost, "/reviews/", `{"place_id":0,"user_name":"d","rating":3}`); w.Code != http.StatusOK {
		t.Fatalf("review for unknown place = %d %s", w.Code, w.Body.String())
	}
	if w := do(r, http.MethodPost, "/reviews/", `{"place_id":1,"user_name":"c","rating":9}`); w.Code != http.StatusBadRequest {
		t.Fatalf("bad review = %d", w.Code)
	}

	w = do(r, http.MethodGet, "/reviews/place/1", "")
	if got := decode[[]models.Review](t, w); len(got) != 2 {
		t.Fatalf("reviews = %d", len(got))
	}
	if w := do(r, http.MethodGet, "/reviews/place/x", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("bad place id = %d", w.Code)
	}

	w = do(r, http.MethodGet, "/places/?limit=1", "")
	if got := decode[[]models.Place](t, w); len(got) != 1 || got[0].Rating != 4.5 || got[0].ReviewsCount != 2 {
		t.Fatalf("aggregated place = %+v", got)
	}

	w = do(r, http.MethodGet, "/stats", "")
	stats := decode[models.Stats](t, w)
	if stats.TotalPlaces != 4 || stats.TotalBusRoutes != 4 || stats.TotalReviews != 3 || stats.TotalTrips != 0 {
		t.Fatalf("stats = %+v", stats)
	}

	w = do(r, http.MethodGet, "/popular-destinations", "")
	if got := decode[[]models.Place](t, w); len(got) != 4 {
		t.Fatalf("popular = %d", len(got))
	}
}

func TestSeedRequiresAdminWhenAuthEnabled(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	r := newTestRouter(t, services.AuthService{Username: "admin", PasswordHash: string(hash), Secret: []byte("k")})

	if w := do(r, http.MethodPost, "/seed-data", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("seed without token = %d", w.Code)
	}
	if w := do(r, http.MethodPost, "/auth/token", `{"username":"admin","password":"bad"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("bad login = %d", w.Code)
	}

	w := do(r, http.MethodPost, "/api/auth/token", `{"username":"admin","password":"pw"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login = %d %s", w.Code, w.Body.String())
	}
	token := decode[map[string]string](t, w)["token"]

	if w := do(r, http.MethodPost, "/api/seed-data", "", "Authorization", "Bearer "+token); w.Code != http.StatusOK {
		t.Fatalf("seed with token = %d %s", w.Code, w.Body.String())
	}
}
