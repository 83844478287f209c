// Package daemon wires the persistence layer to the web service: it opens
// the configured database, migrates the schema, seeds the system rights and
// hands the connection to the HTTP layer.
package daemon

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/config"
	"github.com/openlogistics-io/referencedata/internal/db/dsn"
	"github.com/openlogistics-io/referencedata/internal/db/models"
	"github.com/openlogistics-io/referencedata/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start starts the Daemon's web service on the configured port.
func (d *Daemon) Start() error {
	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// WaitShutdown blocks until the web service finished its graceful stop.
func (d *Daemon) WaitShutdown() {
	d.webService.WaitShutdown()
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	db, err := gorm.Open(openDialector(cfg), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
		return nil
	}

	if err = db.AutoMigrate(
		&models.Right{},
		&models.Role{},
		&models.RoleAssignment{},
		&models.User{},
		&models.FacilityType{},
		&models.GeographicZone{},
		&models.Facility{},
		&models.Program{},
		&models.SupportedProgram{},
		&models.Orderable{},
		&models.ProgramOrderable{},
		&models.FacilityTypeApprovedProduct{},
		&models.SupervisoryNode{},
		&models.RequisitionGroup{},
		&models.SupplyLine{},
		&models.ProcessingSchedule{},
		&models.ProcessingPeriod{},
		&models.SystemNotification{},
		&models.ServiceAccount{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
		return nil
	}

	seed(cfg, db)

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, db),
	}
}

func openDialector(cfg *config.Config) gorm.Dialector {
	switch cfg.DB.GormEngine {
	case "postgres":
		return gormpostgres.Open(dsn.Create(cfg))
	case "sqlite":
		return sqlite.Open(dsn.Create(cfg))
	default:
		return gormmysql.Open(dsn.Create(cfg))
	}
}
