package routes

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/asadas-tsadiglo/tank-telemetry/src/api/doc"
	"github.com/asadas-tsadiglo/tank-telemetry/src/control"
	"github.com/asadas-tsadiglo/tank-telemetry/src/model"
	"github.com/asadas-tsadiglo/tank-telemetry/src/simulation"
	"github.com/asadas-tsadiglo/tank-telemetry/src/storage"
)

// Store is the reading source the handlers consume.
type Store interface {
	LatestReading(ctx context.Context, id model.TankID) (model.Reading, error)
	LatestReadings(ctx context.Context) ([]model.Reading, error)
	History(hours int, opts ...storage.ConditionOption) ([]model.Reading, error)
}

// Engine exposes the read-only state snapshots used by the control-status
// endpoint.
type Engine interface {
	Snapshot(id model.TankID) (simulation.TankState, error)
}

type Router struct {
	routes   *gin.Engine
	store    Store
	controls *control.State
	engine   Engine
	configs  map[model.TankID]model.TankConfig
}

func NewRouter(store Store, controls *control.State, engine Engine) *Router {
	r := &Router{
		routes:   gin.Default(),
		store:    store,
		controls: controls,
		engine:   engine,
		configs:  model.DefaultConfigs(),
	}

	r.routes.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	RegisterMonitoringRoutes(r)
	RegisterControlRoutes(r)
	RegisterSystemRoutes(r)

	r.routes.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	return r
}

func (r *Router) Run(addr string) error {
	return r.routes.Run(addr)
}

// Handler exposes the underlying mux so the service can run it on a
// graceful http.Server.
func (r *Router) Handler() http.Handler {
	return r.routes
}
