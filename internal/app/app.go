package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/karla-codes/rest-api/internal/app/server"
	"github.com/karla-codes/rest-api/internal/config"
	"github.com/karla-codes/rest-api/internal/delivery/http"
	"github.com/karla-codes/rest-api/internal/service"
	"github.com/karla-codes/rest-api/internal/service/account"
	"github.com/karla-codes/rest-api/internal/service/course"
	"github.com/karla-codes/rest-api/internal/storage/postgres"
	"github.com/karla-codes/rest-api/pkg/logger"
)

func Run(cfg *config.Config) {

	log := logger.New(cfg.Env)
	log.Info("Starting with Env: " + cfg.Env)

	pg, err := postgres.NewPostgresPool(cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)
	if err != nil {
		log.FatalErr("error connecting to database", err)
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := pg.Migrate(context.Background()); err != nil {
			log.FatalErr("error applying migrations", err)
		}
		log.Info("migrations applied")
	}

	accountRepo := postgres.NewAccountPostgres(pg.Pool)
	courseRepo := postgres.NewCoursePostgres(pg.Pool)

	accountService := account.NewService(log, accountRepo, account.Options{
		BcryptCost:           cfg.Auth.BcryptCost,
		CaseInsensitiveEmail: cfg.Auth.CaseInsensitiveEmail,
	})
	courseService := course.NewService(log, courseRepo)
	u := service.Collection{AccountService: accountService, CourseService: courseService}

	r := http.InitRoutes(log, u, cfg.LogErrors)

	srv := server.New(cfg.HTTPServer.Address, cfg.HTTPServer.Timeout, cfg.HTTPServer.IdleTimeout, r)
	srv.Start()
	log.Info("listening on " + cfg.HTTPServer.Address)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app signal: " + s.String())
	case err := <-srv.Notify():
		log.ErrorErr("server error", err)
	}
	if err := srv.Shutdown(); err != nil {
		log.ErrorErr("shutdown error", err)
	}
}
