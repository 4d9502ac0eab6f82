package router

import (
	"github.com/gin-gonic/gin"
	"github.com/packetery/backend/internal/interfaces/http/handler"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers bundles the endpoint handlers mounted under the API prefix
type Handlers struct {
	Settings *handler.SettingsHandler
	Carriers *handler.CarrierHandler
	Orders   *handler.OrderHandler
	Labels   *handler.LabelHandler
	Flash    *handler.FlashHandler
	Logs     *handler.LogHandler
	Rates    *handler.RateHandler
}

// Groups returns the domain groups of the API.
// Static paths are registered before parameterized ones.
func (h Handlers) Groups() []*DomainGroup {
	settings := NewDomainGroup("settings", "/settings").
		GET("", h.Settings.Get).
		PUT("", h.Settings.Update).
		GET("/label-formats", h.Settings.LabelFormats)

	carriers := NewDomainGroup("carriers", "/carriers").
		GET("", h.Carriers.List).
		GET("/countries", h.Carriers.Countries).
		POST("/sync", h.Carriers.Sync).
		GET("/sync/status", h.Carriers.SyncStatus).
		GET("/:id", h.Carriers.Get)

	orders := NewDomainGroup("orders", "/orders").
		GET("/columns", h.Orders.Columns).
		POST("/submit", h.Orders.Submit).
		POST("/handover", h.Orders.Handover).
		GET("/:id/shipment", h.Orders.GetShipment).
		PUT("/:id/shipment", h.Orders.UpsertShipment).
		PUT("/:id/pickup-point", h.Orders.SelectPickupPoint)

	labels := NewDomainGroup("labels", "/labels").
		POST("/selection", h.Labels.Select).
		GET("/offsets", h.Labels.Offsets).
		POST("/print", h.Labels.Print)

	flash := NewDomainGroup("flash", "/flash").
		GET("", h.Flash.Drain)

	logs := NewDomainGroup("logs", "/logs").
		GET("", h.Logs.List)

	shipping := NewDomainGroup("shipping", "/shipping").
		POST("/rates", h.Rates.Calculate)

	return []*DomainGroup{settings, carriers, orders, labels, flash, logs, shipping}
}

// Mount registers every group on r
func (h Handlers) Mount(r *Router) {
	for _, g := range h.Groups() {
		r.Register(g)
	}
}

// MountHealth registers the unauthenticated health endpoints on the engine
// and under the API prefix used by load balancers.
func MountHealth(engine *gin.Engine, r *Router, health *handler.HealthHandler) {
	engine.GET("/health", health.Check)
	engine.GET(r.Prefix()+"/health", health.Check)
}

// MountSwagger serves the generated API documentation. The docs package must
// be linked in by the caller.
func MountSwagger(engine *gin.Engine) {
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
