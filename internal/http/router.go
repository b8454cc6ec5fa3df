package api

import (
	"log"
	stdhttp "net/http"

	intconfig "travelsuggester/internal/config"
	h "travelsuggester/internal/http/handlers"
	"travelsuggester/internal/http/middleware"
	"travelsuggester/internal/services"

	"github.com/gin-gonic/gin"
)

// NewRouter mounts the API at the root and again under /api.
func NewRouter(env intconfig.Env, svc services.Services) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":      "route not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": middleware.GetRequestID(c),
		})
	})

	handler := h.New(svc)
	var admin []gin.HandlerFunc
	if svc.Auth.Enabled() {
		admin = []gin.HandlerFunc{middleware.BearerAuth(svc.Auth), middleware.RequireRoles(services.AdminRole)}
	} else {
		log.Printf("warning: ADMIN_PASSWORD_HASH not set, /seed-data is not protected")
	}

	r.GET("/", h.Root)
	mount(r.Group(""), handler, admin)

	api := r.Group("/api")
	api.GET("/health", h.Health)
	mount(api, handler, admin)

	return r
}

func mount(g *gin.RouterGroup, handler *h.Handler, admin []gin.HandlerFunc) {
	places := g.Group("/places")
	both(places, stdhttp.MethodPost, handler.CreatePlace)
	both(places, stdhttp.MethodGet, handler.ListPlaces)
	places.GET("/nearby", handler.NearbyPlaces)
	places.GET("/search", handler.SearchPlaces)

	trips := g.Group("/trips")
	both(trips, stdhttp.MethodPost, handler.CreateTrip)
	both(trips, stdhttp.MethodGet, handler.ListTrips)
	trips.GET("/:trip_number", handler.GetTrip)
	trips.GET("/:trip_number/pdf", handler.GetTripItineraryPDF)

	routes := g.Group("/bus-routes")
	both(routes, stdhttp.MethodPost, handler.CreateBusRoute)
	both(routes, stdhttp.MethodGet, handler.ListBusRoutes)
	routes.GET("/search", handler.SearchBusRoutes)
	routes.GET("/nearby", handler.NearbyBusRoutes)

	reviews := g.Group("/reviews")
	both(reviews, stdhttp.MethodPost, handler.CreateReview)
	reviews.GET("/place/:place_id", handler.ListPlaceReviews)

	g.GET("/stats", handler.Stats)
	g.GET("/popular-destinations", handler.PopularDestinations)
	g.POST("/seed-data", append(admin, handler.SeedData)...)
	g.POST("/auth/token", handler.IssueToken)
}

// both registers fn with and without the trailing slash so neither form redirects.
func both(g *gin.RouterGroup, method string, fn gin.HandlerFunc) {
	g.Handle(method, "", fn)
	g.Handle(method, "/", fn)
}
