package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/nevera-pro/internal/application/auth"
	apppantry "github.com/tu-usuario/nevera-pro/internal/application/pantry"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PantryUC  *apppantry.UseCase
	ReportUC  *apppantry.ReportUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/pantry", AuthMiddleware(deps.JWTSecret))

	pantryHandler := NewPantryHandler(deps.PantryUC)
	protected.Get("/rows", pantryHandler.ListRows)
	protected.Post("/rows/adjust", pantryHandler.Adjust)
	protected.Post("/batches", pantryHandler.CreateBatch)
	protected.Delete("/batches", pantryHandler.ClearAll)
	protected.Post("/quick-add", pantryHandler.QuickAdd)
	protected.Get("/templates", pantryHandler.ListTemplates)
	protected.Delete("/templates/:name", pantryHandler.DeleteTemplate)

	// Traslados entre ubicaciones (diálogo begin -> confirm/cancel)
	transferHandler := NewTransferHandler(deps.PantryUC)
	protected.Post("/transfers", transferHandler.Begin)
	protected.Post("/transfers/confirm", transferHandler.Confirm)
	protected.Post("/transfers/cancel", transferHandler.Cancel)

	// Informes y exportaciones
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/expiring", reportHandler.ExpiringPDF)
	protected.Get("/export", reportHandler.ExportXML)
}
