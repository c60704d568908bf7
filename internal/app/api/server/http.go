package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/kassem10h/Gym-Poject/docs"
	"github.com/kassem10h/Gym-Poject/internal/app/api/handlers"
	mw "github.com/kassem10h/Gym-Poject/internal/app/api/middleware"
	"github.com/kassem10h/Gym-Poject/internal/app/service/account"
	"github.com/kassem10h/Gym-Poject/internal/app/service/booking"
	"github.com/kassem10h/Gym-Poject/internal/app/service/cart"
	"github.com/kassem10h/Gym-Poject/internal/app/service/checkout"
	"github.com/kassem10h/Gym-Poject/internal/app/service/membership"
	"github.com/kassem10h/Gym-Poject/internal/app/service/notification"
	"github.com/kassem10h/Gym-Poject/internal/app/service/schedule"
	"github.com/kassem10h/Gym-Poject/internal/app/service/shop"
	cfgpkg "github.com/kassem10h/Gym-Poject/pkg/config"
	"github.com/kassem10h/Gym-Poject/pkg/metrics"
	"github.com/kassem10h/Gym-Poject/pkg/types"
)

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	// Request tracing only; request logger & access log are attached per group
	// in registerRoutes.
	r.Use(mw.TraceMiddleware())
	return r
}

type routeDeps struct {
	fx.In

	Log     *zap.SugaredLogger
	Cfg     *cfgpkg.Config
	Metrics *metrics.Metrics

	Accounts      *account.Service
	Schedule      *schedule.Service
	Shop          *shop.Service
	Carts         *cart.Service
	Checkout      *checkout.Service
	Bookings      *booking.Service
	Memberships   *membership.Service
	Notifications *notification.Service
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	if d.Cfg.MetricsAddr != "" {
		r.Use(d.Metrics.Middleware())
		go d.Metrics.Serve(d.Cfg.MetricsAddr, d.Log)
		d.Log.Infow("metrics started", "addr", d.Cfg.MetricsAddr)
	}

	// Public group: request logger + access log.
	pub := r.Group("/")
	pub.Use(mw.RequestLoggerMiddleware(d.Log), mw.AccessLogMiddleware())
	handlers.RegisterHealthRoutes(pub)

	docs.SwaggerInfo.BasePath = "/"
	pub.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := pub.Group("/api")
	handlers.RegisterAuthRoutes(api, d.Accounts)
	handlers.RegisterShopRoutes(api.Group("/shop"), d.Shop)
	handlers.RegisterMembershipPublicRoutes(api, d.Memberships)

	// Any authenticated user.
	authed := api.Group("/")
	authed.Use(mw.RequireAuth(d.Cfg))
	handlers.RegisterProfileRoutes(authed, d.Accounts)
	handlers.RegisterNotificationRoutes(authed, d.Notifications)

	// Member surface.
	member := authed.Group("/")
	member.Use(mw.RequireRole(types.RoleMember, types.RoleAdmin))
	handlers.RegisterSessionDiscoveryRoutes(member, d.Schedule)
	handlers.RegisterCartRoutes(member, d.Carts)
	handlers.RegisterCheckoutRoutes(member, d.Checkout)
	handlers.RegisterBookingRoutes(member, d.Bookings)
	handlers.RegisterMembershipRoutes(member, d.Memberships)

	// Trainer surface.
	trainer := authed.Group("/trainer")
	trainer.Use(mw.RequireRole(types.RoleTrainer, types.RoleAdmin))
	handlers.RegisterTrainerRoutes(trainer, d.Schedule)

	// Admin surface.
	admin := authed.Group("/admin")
	admin.Use(mw.RequireRole(types.RoleAdmin))
	handlers.RegisterAdminRoutes(admin, d.Bookings)
}

func runServer(lc fx.Lifecycle, log *zap.SugaredLogger, cfg *cfgpkg.Config, r *gin.Engine) {
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting HTTP server", "addr", addr)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Errorf("server error: %v", err)
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, 120*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

var Module = fx.Options(
	fx.Provide(newEngine),
	fx.Invoke(registerRoutes),
	fx.Invoke(runServer),
)
