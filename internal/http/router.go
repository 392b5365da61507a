package api

import (
	"log"
	stdhttp "net/http"

	intconfig "github.com/hiraniavnish-droid/TTE-Final-sub000/internal/config"
	h "github.com/hiraniavnish-droid/TTE-Final-sub000/internal/http/handlers"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, hd *h.Handler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", hd.Health)
		api.GET("/routes", h.Routes)

		api.GET("/catalog", hd.GetCatalog)
		api.GET("/packages", hd.ListPackages)

		sessions := api.Group("/sessions")
		sessions.POST("", hd.OpenSession)
		sessions.GET("/:id", hd.GetSession)
		sessions.DELETE("/:id", hd.CloseSession)
		sessions.PUT("/:id/package", hd.SelectPackage)
		sessions.PUT("/:id/tier", hd.SetTier)
		sessions.PUT("/:id/pax", hd.SetPax)
		sessions.PUT("/:id/markup", hd.SetMarkup)
		sessions.PUT("/:id/tax", hd.SetTax)
		sessions.PUT("/:id/guest", hd.SetGuest)
		sessions.PUT("/:id/start-date", hd.SetStartDate)
		mountDays(sessions.Group("/:id/days/:day"), hd)

		sessions.POST("/:id/fleet", hd.AddVehicle)
		sessions.PUT("/:id/fleet", hd.ReplaceFleet)
		sessions.PUT("/:id/fleet/:itemId", hd.UpdateVehicle)
		sessions.DELETE("/:id/fleet/:itemId", hd.RemoveVehicle)

		sessions.GET("/:id/quote", hd.GetQuote)
		sessions.GET("/:id/export.pdf", hd.ExportPDF)
		sessions.POST("/:id/share", hd.ShareSession)
		api.GET("/shared/:token/export.pdf", hd.SharedExportPDF)

		builder := api.Group("/builder")
		builder.POST("", hd.CreateDraft)
		builder.GET("/:id", hd.GetDraft)
		builder.PUT("/:id/city", hd.SelectDraftCity)
		builder.PUT("/:id/hotel", hd.SelectDraftHotel)
		builder.DELETE("/:id/hotel", hd.ClearDraftHotel)
		builder.POST("/:id/sightseeing/toggle", hd.ToggleDraftSightseeing)
		builder.POST("/:id/days", hd.AppendDraftDay)
		builder.POST("/:id/days/:index/duplicate", hd.DuplicateDraftDay)
		builder.DELETE("/:id/days/:index", hd.RemoveDraftDay)
		builder.POST("/:id/finish", hd.FinishDraft)
	}

	h.SetRouter(r)
	return r
}

func mountDays(g *gin.RouterGroup, hd *h.Handler) {
	g.PUT("/hotel", hd.SetHotel)
	g.DELETE("/hotel", hd.ClearHotel)
	g.PUT("/sightseeing", hd.SetSightseeing)
	g.DELETE("/sightseeing", hd.ClearSightseeing)
	g.POST("/sightseeing/toggle", hd.ToggleSightseeing)
}
