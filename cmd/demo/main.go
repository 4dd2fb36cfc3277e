// The demo binary plays the external-collaborator role around the admin
// adapter: it owns the HTTP surface and the database session, and hands
// the adapter's compiled predicates to its own gorm query builder. The
// adapter itself never executes a query.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	admin "github.com/tomopy03/gorm-admin"
	"github.com/tomopy03/gorm-admin/logging"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logging.New(logging.Config(cfg.Log))
	defer func() { _ = log.Sync() }()

	db, err := openDatabase(cfg, log)
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}
	if err := db.AutoMigrate(&Category{}, &Product{}); err != nil {
		log.Fatal("migrate demo models", zap.Error(err))
	}
	if err := seed(db); err != nil {
		log.Fatal("seed demo data", zap.Error(err))
	}

	site := admin.New(admin.WithLogger(log))
	for _, model := range []any{&Category{}, &Product{}} {
		view, err := admin.NewModelView(model)
		if err != nil {
			log.Fatal("register view", zap.Error(err))
		}
		if err := site.AddView(view); err != nil {
			log.Fatal("register view", zap.Error(err))
		}
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	registerRoutes(engine, site, db)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      engine,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("admin demo listening", zap.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}

func openDatabase(cfg *demoConfig, log *zap.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:                 logging.NewGormLogger(log, gormlogger.Warn),
		SkipDefaultTransaction: true,
	}

	var dialector gorm.Dialector
	if cfg.Database.Driver == "postgres" {
		dialector = postgres.Open(cfg.Database.DSN)
	} else {
		dialector = sqlite.Open(cfg.Database.DSN)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	return db, nil
}
