package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/jhoicas/cretaceous-api/docs"
	"github.com/jhoicas/cretaceous-api/internal/application/usecase"
	"github.com/jhoicas/cretaceous-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/cretaceous-api/internal/interfaces/http"
	"github.com/jhoicas/cretaceous-api/pkg/config"
	"github.com/jhoicas/cretaceous-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	go postgres.WatchHealth(ctx, pool, cfg.DB.HealthInterval, log)

	animalRepo := postgres.NewAnimalRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	animalUC := usecase.NewAnimalUseCase(animalRepo, txRunner)

	app := httpRouter.NewApp(httpRouter.RouterDeps{
		AnimalUC: animalUC,
		DB:       pool,
		Log:      log,
		AppName:  cfg.App.Name,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.Swagger.Enabled {
		if _, err := os.Stat(cfg.Swagger.FilePath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.Swagger.FilePath,
				Path:     "docs",
				Title:    docs.SwaggerInfo.Title,
			}))
		} else {
			log.Warn().Str("file", cfg.Swagger.FilePath).Msg("swagger deshabilitado: archivo no encontrado")
		}
	}

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
