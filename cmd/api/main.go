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
	"github.com/shopspring/decimal"

	"github.com/agrococo/custos-api/internal/application/auth"
	appcosting "github.com/agrococo/custos-api/internal/application/costing"
	"github.com/agrococo/custos-api/internal/application/usecase"
	infraai "github.com/agrococo/custos-api/internal/infrastructure/ai"
	infrapdf "github.com/agrococo/custos-api/internal/infrastructure/pdf"
	"github.com/agrococo/custos-api/internal/infrastructure/postgres"
	httpRouter "github.com/agrococo/custos-api/internal/interfaces/http"
	"github.com/agrococo/custos-api/pkg/config"
	"github.com/agrococo/custos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	skuRepo := postgres.NewSKURepository(pool)
	bomRepo := postgres.NewBOMItemRepository(pool)
	itemRepo := postgres.NewWarehouseItemRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	indirectRepo := postgres.NewIndirectCostRepository(pool)
	destRepo := postgres.NewShippingDestinationRepository(pool)
	settingRepo := postgres.NewCostSettingRepository(pool)
	recordRepo := postgres.NewCostRecordRepository(pool)
	alertRepo := postgres.NewCostAlertRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	calculateUC := appcosting.NewCalculateUseCase(
		skuRepo, bomRepo, itemRepo, employeeRepo, indirectRepo,
		destRepo, settingRepo, recordRepo, txRunner,
		decimal.NewFromFloat(cfg.Costing.AlertThresholdDefault),
		log,
	)

	skuUC := usecase.NewSKUUseCase(skuRepo, bomRepo)
	itemUC := usecase.NewWarehouseItemUseCase(itemRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	indirectUC := usecase.NewIndirectCostUseCase(indirectRepo)
	destinationUC := usecase.NewDestinationUseCase(destRepo)
	recordUC := usecase.NewCostRecordUseCase(recordRepo)
	alertUC := usecase.NewCostAlertUseCase(alertRepo)
	settingUC := usecase.NewCostSettingUseCase(settingRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := usecase.NewReportUseCase(reportRepo, pdfGenerator)

	anthropicSvc := infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	insightUC := usecase.NewInsightUseCase(reportRepo, alertRepo, anthropicSvc)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Custos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SKUUC:           skuUC,
		WarehouseItemUC: itemUC,
		EmployeeUC:      employeeUC,
		IndirectCostUC:  indirectUC,
		DestinationUC:   destinationUC,
		CalculateUC:     calculateUC,
		CostRecordUC:    recordUC,
		AlertUC:         alertUC,
		SettingUC:       settingUC,
		ReportUC:        reportUC,
		InsightUC:       insightUC,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
