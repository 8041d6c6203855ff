package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrococo/custos-api/internal/application/auth"
	appcosting "github.com/agrococo/custos-api/internal/application/costing"
	"github.com/agrococo/custos-api/internal/application/usecase"
	"github.com/agrococo/custos-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	SKUUC           *usecase.SKUUseCase
	WarehouseItemUC *usecase.WarehouseItemUseCase
	EmployeeUC      *usecase.EmployeeUseCase
	IndirectCostUC  *usecase.IndirectCostUseCase
	DestinationUC   *usecase.DestinationUseCase
	CalculateUC     *appcosting.CalculateUseCase
	CostRecordUC    *usecase.CostRecordUseCase
	AlertUC         *usecase.CostAlertUseCase
	SettingUC       *usecase.CostSettingUseCase
	ReportUC        *usecase.ReportUseCase
	InsightUC       *usecase.InsightUseCase
	AuthUC          *auth.AuthUseCase
	JWTSecret       string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Cadastros base (protegido)
	skus := protected.Group("/skus")
	skuHandler := NewSKUHandler(deps.SKUUC)
	skus.Post("/", skuHandler.Create)
	skus.Get("/", skuHandler.List)
	skus.Get("/:id", skuHandler.GetByID)
	skus.Put("/:id", skuHandler.Update)
	skus.Delete("/:id", skuHandler.Delete)
	skus.Post("/:id/bom", skuHandler.AddBOMItem)
	skus.Get("/:id/bom", skuHandler.ListBOM)
	skus.Delete("/bom/:itemId", skuHandler.DeleteBOMItem)

	items := protected.Group("/warehouse-items")
	itemHandler := NewWarehouseItemHandler(deps.WarehouseItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Funcionários carregam dados salariais: admin e financeiro apenas.
	employees := protected.Group("/employees", RequireRole(entity.RoleAdmin, entity.RoleFinanceiro))
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	indirect := protected.Group("/indirect-costs")
	indirectHandler := NewIndirectCostHandler(deps.IndirectCostUC)
	indirect.Post("/", indirectHandler.Create)
	indirect.Get("/", indirectHandler.ListByPeriod)
	indirect.Delete("/:id", indirectHandler.Delete)

	destinations := protected.Group("/destinations")
	destinationHandler := NewDestinationHandler(deps.DestinationUC)
	destinations.Post("/", destinationHandler.Create)
	destinations.Get("/", destinationHandler.List)
	destinations.Get("/:id", destinationHandler.GetByID)
	destinations.Put("/:id", destinationHandler.Update)
	destinations.Delete("/:id", destinationHandler.Delete)

	// Motor de custos (protegido)
	costs := protected.Group("/costs")
	costHandler := NewCostHandler(deps.CalculateUC)
	costs.Post("/calculate", costHandler.Calculate)

	records := protected.Group("/cost-records")
	recordHandler := NewCostRecordHandler(deps.CostRecordUC)
	records.Get("/", recordHandler.List)
	records.Get("/:id", recordHandler.GetByID)
	records.Patch("/:id/status",
		RequireRole(entity.RoleAdmin, entity.RoleFinanceiro), recordHandler.UpdateStatus)
	records.Delete("/:id", recordHandler.Delete)

	alerts := protected.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertUC)
	alerts.Get("/", alertHandler.List)
	alerts.Patch("/:id/status", alertHandler.UpdateStatus)

	// Configurações do motor: somente admin altera.
	settings := protected.Group("/settings")
	settingHandler := NewSettingHandler(deps.SettingUC)
	settings.Get("/", settingHandler.List)
	settings.Get("/:key", settingHandler.GetByKey)
	settings.Put("/:key", RequireRole(entity.RoleAdmin), settingHandler.Upsert)

	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/period/:period", reportHandler.Period)
	reports.Get("/period/:period/pdf", reportHandler.PeriodPDF)

	insights := protected.Group("/insights")
	insightHandler := NewInsightHandler(deps.InsightUC, deps.ReportUC)
	insights.Get("/", insightHandler.Generate)
	insights.Post("/summary", insightHandler.Summarize)
}
