package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/petshop-console/internal/audit"
	"github.com/BruksfildServices01/petshop-console/internal/console"
	domain "github.com/BruksfildServices01/petshop-console/internal/domain/appointment"
	"github.com/BruksfildServices01/petshop-console/internal/export"
	"github.com/BruksfildServices01/petshop-console/internal/handlers"
	"github.com/BruksfildServices01/petshop-console/internal/infra/petshopapi"
	"github.com/BruksfildServices01/petshop-console/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/petshop-console/internal/usecase/appointment"
)

// Deps reúne os singletons montados no main.
type Deps struct {
	API      *petshopapi.Client
	Repo     domain.Repository
	Audit    *audit.Dispatcher
	Uploader export.Uploader
	Registry *console.Registry

	// DB é opcional: sem banco o histórico de auditoria fica indisponível.
	DB         *gorm.DB
	// References recebe as invalidações do cache após escrita nos cadastros.
	References handlers.ReferenceInvalidator

	SessionSecret string
	SessionTTL    time.Duration
	CORSOrigins   []string
	Location      *time.Location
	Logger        *zap.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(middleware.CORSMiddleware(d.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// USE CASES
	// ======================================================
	loadUC := ucAppointment.NewLoadScreen(d.Repo, d.Logger)
	openFormUC := ucAppointment.NewOpenForm(d.Repo, d.Logger)
	editFormUC := ucAppointment.NewEditForm()
	closeFormUC := ucAppointment.NewCloseForm()

	submitUC := ucAppointment.NewSubmitAppointment(
		d.Repo,
		d.Audit,
		d.Location,
		d.Logger,
	)

	deleteUC := ucAppointment.NewDeleteAppointment(
		d.Repo,
		d.Audit,
		d.Logger,
	)

	exportUC := ucAppointment.NewExportAgenda(
		d.Uploader,
		d.Audit,
		d.Location,
		d.Logger,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	sessions := middleware.NewSessions(d.SessionSecret, d.SessionTTL, d.Registry)

	sessionHandler := handlers.NewSessionHandler(sessions, loadUC, d.Location, d.Logger)
	clientHandler := handlers.NewClientHandler(d.API, d.Audit, d.Logger)
	animalHandler := handlers.NewAnimalHandler(d.API, d.References, d.Audit, d.Logger)
	employeeHandler := handlers.NewEmployeeHandler(d.API, d.References, d.Audit, d.Logger)
	serviceHandler := handlers.NewServiceHandler(d.API, d.References, d.Audit, d.Logger)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB, d.Location)

	appointmentHandler := handlers.NewAppointmentHandler(
		loadUC,
		openFormUC,
		editFormUC,
		closeFormUC,
		submitUC,
		deleteUC,
		exportUC,
		d.Location,
		d.Logger,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/sessions", sessionHandler.Create)

		secured := api.Group("/console")
		secured.Use(sessions.Middleware())
		{
			secured.GET("/catalog", appointmentHandler.Catalog)

			secured.GET("/audit-logs", auditLogsHandler.List)

			// ------------------------------
			// CADASTROS
			// ------------------------------
			secured.GET("/customers", clientHandler.List)
			secured.POST("/customers", clientHandler.Create)
			secured.GET("/customers/:id", clientHandler.Get)
			secured.PUT("/customers/:id", clientHandler.Update)
			secured.DELETE("/customers/:id", clientHandler.Delete)
			secured.GET("/customers/:id/animals", clientHandler.Animals)

			secured.GET("/animals", animalHandler.List)
			secured.POST("/animals", animalHandler.Create)
			secured.GET("/animals/:id", animalHandler.Get)
			secured.PUT("/animals/:id", animalHandler.Update)
			secured.DELETE("/animals/:id", animalHandler.Delete)

			secured.GET("/employees", employeeHandler.List)
			secured.POST("/employees", employeeHandler.Create)
			secured.GET("/employees/:id", employeeHandler.Get)
			secured.PUT("/employees/:id", employeeHandler.Update)
			secured.DELETE("/employees/:id", employeeHandler.Delete)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.GET("/services/:id", serviceHandler.Get)
			secured.PUT("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.Screen)
			secured.POST("/appointments/load", appointmentHandler.Load)
			secured.POST("/appointments/export", appointmentHandler.Export)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.POST("/appointments/form", appointmentHandler.OpenForm)
			secured.GET("/appointments/form", appointmentHandler.Form)
			secured.PATCH("/appointments/form", appointmentHandler.UpdateForm)
			secured.DELETE("/appointments/form", appointmentHandler.CloseForm)
			secured.POST("/appointments/form/services", appointmentHandler.AddService)
			secured.DELETE("/appointments/form/services/:id", appointmentHandler.RemoveService)
			secured.POST("/appointments/form/submit", appointmentHandler.Submit)
		}
	}
}
