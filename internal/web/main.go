// Package web assembles the HTTP service: fiber app, middlewares, error
// mapping and the per-entity handlers.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/auth"
	"github.com/openlogistics-io/referencedata/internal/config"
	"github.com/openlogistics-io/referencedata/internal/db/controller/user"
	fiberlogger "github.com/openlogistics-io/referencedata/internal/logger/adapter/fiber"
	"github.com/openlogistics-io/referencedata/internal/web/handler"
	"github.com/openlogistics-io/referencedata/internal/web/handler/approvedproduct"
	"github.com/openlogistics-io/referencedata/internal/web/handler/facility"
	"github.com/openlogistics-io/referencedata/internal/web/handler/orderable"
	"github.com/openlogistics-io/referencedata/internal/web/handler/processingschedule"
	"github.com/openlogistics-io/referencedata/internal/web/handler/program"
	"github.com/openlogistics-io/referencedata/internal/web/handler/right"
	"github.com/openlogistics-io/referencedata/internal/web/handler/role"
	"github.com/openlogistics-io/referencedata/internal/web/handler/serviceaccount"
	"github.com/openlogistics-io/referencedata/internal/web/handler/supervisorynode"
	"github.com/openlogistics-io/referencedata/internal/web/handler/supplyline"
	"github.com/openlogistics-io/referencedata/internal/web/handler/systemnotification"
	userhandler "github.com/openlogistics-io/referencedata/internal/web/handler/user"
)

// CheckAliveURI is the liveness probe path.
const CheckAliveURI = "/checkalive"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
	rights       *auth.RightService
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: fail the liveness probe first
	// so the LB stops routing here before the listener goes away.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "referencedata",
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			ErrorHandler:   handler.ErrorHandler,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAliveURI,
	}))

	app.Use(auth.TokenMiddleware(cfg.Auth.Secret))

	rights := auth.NewRightService(user.NewLoader(db))

	service := &Service{
		cfg:    cfg,
		App:    app,
		db:     db,
		rights: rights,
	}
	service.alive.Store(true)

	app.Get(CheckAliveURI, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("OK")
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// init handlers (they register their own routes with right checks)
	right.Handler.Init(app, cfg, db, rights)
	role.Handler.Init(app, cfg, db, rights)
	userhandler.Handler.Init(app, cfg, db, rights)
	facility.Handler.Init(app, cfg, db, rights)
	program.Handler.Init(app, cfg, db, rights)
	orderable.Handler.Init(app, cfg, db, rights)
	approvedproduct.Handler.Init(app, cfg, db, rights)
	supplyline.Handler.Init(app, cfg, db, rights)
	supervisorynode.Handler.Init(app, cfg, db, rights)
	processingschedule.Handler.Init(app, cfg, db, rights)
	systemnotification.Handler.Init(app, cfg, db, rights)
	serviceaccount.Handler.Init(app, cfg, db, rights)

	return service
}
