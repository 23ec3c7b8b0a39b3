package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/restaurant-menu-api/internal/application/usecase"
	"github.com/jhoicas/restaurant-menu-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/restaurant-menu-api/internal/infrastructure/pdf"
	"github.com/jhoicas/restaurant-menu-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/restaurant-menu-api/internal/interfaces/http"
	"github.com/jhoicas/restaurant-menu-api/pkg/config"
	"github.com/jhoicas/restaurant-menu-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		Name:  cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("storage", cfg.Storage.Driver).
		Str("write_mode", cfg.Storage.WriteMode).
		Msg("iniciando aplicación")

	writeMode, ok := usecase.ParseWriteMode(cfg.Storage.WriteMode)
	if !ok {
		log.Fatal().Str("write_mode", cfg.Storage.WriteMode).Msg("WRITE_MODE inválido")
	}

	ctx := context.Background()

	var (
		repos    usecase.Repos
		txRunner usecase.TxRunner
	)
	switch cfg.Storage.Driver {
	case "memory":
		store := memory.NewStore()
		repos = memory.NewRepos(store)
		txRunner = memory.NewTxRunner(store)
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		for _, name := range applied {
			log.Info().Str("migration", name).Msg("migración aplicada")
		}
		repos = postgres.NewRepos(pool)
		txRunner = postgres.NewTxRunner(pool)
	}

	categoryUC := usecase.NewCategoryUseCase(repos.Categories)
	ingredientUC := usecase.NewIngredientUseCase(repos.Ingredients)
	menuItemUC := usecase.NewMenuItemUseCase(repos, txRunner, writeMode)
	orderUC := usecase.NewOrderUseCase(repos, txRunner, writeMode)

	// PDF: ticket imprimible del pedido
	receiptUC := usecase.NewReceiptUseCase(orderUC, infrapdf.NewMarotoReceiptGenerator(cfg.App.Name))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	}))
	app.Use(httpRouter.RequestLogger(log.Zerolog()))

	// Swagger UI en local: http://localhost:<port>/docs
	// El middleware entra en pánico si el archivo no existe.
	if _, err := os.Stat(cfg.HTTP.DocsPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.DocsPath,
			Path:     "docs",
			Title:    "Restaurant Menu API",
		}))
	} else {
		log.Warn().Str("path", cfg.HTTP.DocsPath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:   categoryUC,
		IngredientUC: ingredientUC,
		MenuItemUC:   menuItemUC,
		OrderUC:      orderUC,
		ReceiptUC:    receiptUC,
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
