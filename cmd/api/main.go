package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/text/language"

	"github.com/tu-usuario/nevera-pro/internal/application/auth"
	apppantry "github.com/tu-usuario/nevera-pro/internal/application/pantry"
	"github.com/tu-usuario/nevera-pro/internal/domain/pantry"
	infraexport "github.com/tu-usuario/nevera-pro/internal/infrastructure/export"
	infrapdf "github.com/tu-usuario/nevera-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/nevera-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/nevera-pro/internal/interfaces/http"
	"github.com/tu-usuario/nevera-pro/pkg/config"
	"github.com/tu-usuario/nevera-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	templateRepo := postgres.NewTemplateRepository(pool)

	// Orden de nombres según el idioma del hogar (APP_LOCALE).
	locale, err := language.Parse(cfg.App.Locale)
	if err != nil {
		log.Warn().Str("locale", cfg.App.Locale).Msg("locale inválido, usando español")
		locale = language.Spanish
	}
	agg := pantry.NewAggregator(locale)

	pantryUC := apppantry.NewUseCase(batchRepo, templateRepo, agg, nil)
	reportUC := apppantry.NewReportUseCase(
		batchRepo, agg,
		infrapdf.NewMarotoReportGenerator(),
		infraexport.NewEtreeExporter(),
		nil,
	)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Nevera Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PantryUC:  pantryUC,
		ReportUC:  reportUC,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
