package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/booksmart-api/internal/audit"
	"github.com/BruksfildServices01/booksmart-api/internal/auth"
	"github.com/BruksfildServices01/booksmart-api/internal/clock"
	"github.com/BruksfildServices01/booksmart-api/internal/config"
	"github.com/BruksfildServices01/booksmart-api/internal/domain/image"
	"github.com/BruksfildServices01/booksmart-api/internal/handlers"
	"github.com/BruksfildServices01/booksmart-api/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/booksmart-api/internal/infra/repository"
	"github.com/BruksfildServices01/booksmart-api/internal/middleware"
	"github.com/BruksfildServices01/booksmart-api/internal/models"
	ucAdmin "github.com/BruksfildServices01/booksmart-api/internal/usecase/admin"
	ucAppointment "github.com/BruksfildServices01/booksmart-api/internal/usecase/appointment"
	ucBusiness "github.com/BruksfildServices01/booksmart-api/internal/usecase/business"
	ucDeletion "github.com/BruksfildServices01/booksmart-api/internal/usecase/deletion"
	ucEmployee "github.com/BruksfildServices01/booksmart-api/internal/usecase/employee"
	ucServiceType "github.com/BruksfildServices01/booksmart-api/internal/usecase/servicetype"
	ucUser "github.com/BruksfildServices01/booksmart-api/internal/usecase/user"
)

// Deps are the process-wide singletons built in main. Redis and Audit may
// be nil.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Host   image.Host
	Redis  *redis.Client
	Audit  *audit.Dispatcher
	Clock  clock.Clock
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORSMiddleware(deps.Config.AllowedOrigins()),
	)

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(deps.DB)
	businessRepo := infraRepo.NewBusinessGormRepository(deps.DB)
	deletionRepo := infraRepo.NewDeletionGormRepository(deps.DB)
	employeeRepo := infraRepo.NewEmployeeGormRepository(deps.DB)
	serviceTypeRepo := infraRepo.NewServiceTypeGormRepository(deps.DB)
	userRepo := infraRepo.NewUserGormRepository(deps.DB)

	tokens := auth.NewTokenIssuer(deps.Config.JWTSecret, deps.Config.JWTExpiration())
	statsCache := cache.NewJSONCache(deps.Redis, "booksmart:admin:", deps.Config.StatsCacheTTL())
	loginLimiter := cache.NewRateLimiter(deps.Redis, deps.Config.LoginRateLimitPerMinute, time.Minute)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, deps.Audit, deps.Clock)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, deps.Audit)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(appointmentRepo, deps.Audit, deps.Clock)
	purgeAppointmentUC := ucAppointment.NewPurgeAppointment(appointmentRepo, deps.Audit)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	deleteUserUC := ucDeletion.NewDeleteUser(deletionRepo, deps.Host, deps.Audit)
	deleteEmployeeUC := ucDeletion.NewDeleteEmployee(deletionRepo, deps.Audit)
	deleteBusinessUC := ucDeletion.NewDeleteBusiness(deletionRepo, deps.Host, deps.Audit)

	businessSvc := ucBusiness.NewService(businessRepo, deps.Host, deps.Audit)
	employeeSvc := ucEmployee.NewService(employeeRepo)
	serviceTypeSvc := ucServiceType.NewService(serviceTypeRepo)
	userSvc := ucUser.NewService(userRepo, tokens, deps.Host)
	adminSvc := ucAdmin.NewService(userRepo, deleteUserUC, statsCache, deps.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(userSvc)
	userHandler := handlers.NewUserHandler(userSvc)
	adminHandler := handlers.NewAdminHandler(adminSvc)
	businessHandler := handlers.NewBusinessHandler(businessSvc, deleteBusinessUC)
	employeeHandler := handlers.NewEmployeeHandler(employeeSvc, deleteEmployeeUC)
	serviceTypeHandler := handlers.NewServiceTypeHandler(serviceTypeSvc)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		cancelAppointmentUC,
		purgeAppointmentUC,
		listAppointmentsUC,
	)
	imageHandler := handlers.NewImageHandler(deps.Host)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(deps.DB))
	healthHandler := handlers.NewHealthHandler(deps.DB)

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/login", middleware.LoginRateLimit(loginLimiter), authHandler.Login)
		api.POST("/register", authHandler.Register)
		api.GET("/check-username", authHandler.CheckUsername)

		api.GET("/businesses/all", businessHandler.List)
		api.GET("/businesses/search", businessHandler.Search)
		api.GET("/businesses/owner/:ownerId", businessHandler.ListByOwner)
		api.GET("/businesses/:id", businessHandler.Get)

		api.GET("/employees", employeeHandler.List)
		api.GET("/employees/business/:id", employeeHandler.ListByBusiness)
		api.GET("/employees/:id", employeeHandler.Get)

		api.GET("/service-types", serviceTypeHandler.List)
		api.GET("/service-types/business/:id", serviceTypeHandler.ListByBusiness)
		api.GET("/service-types/:id", serviceTypeHandler.Get)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("")
		secured.Use(middleware.AuthMiddleware(tokens))
		{
			secured.POST("/businesses", businessHandler.Create)
			secured.PUT("/businesses/:id", businessHandler.Update)
			secured.DELETE("/businesses/:id", businessHandler.Delete)

			secured.POST("/employees", employeeHandler.Create)
			secured.PUT("/employees/:id", employeeHandler.Update)
			secured.DELETE("/employees/:id", employeeHandler.Delete)

			secured.POST("/service-types", serviceTypeHandler.Create)
			secured.PUT("/service-types/:id", serviceTypeHandler.Update)
			secured.DELETE("/service-types/:id", serviceTypeHandler.Delete)

			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/user/:id", appointmentHandler.ListByUser)
			secured.GET("/appointments/business/:id", appointmentHandler.ListByBusiness)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Cancel)
			secured.DELETE("/appointments/:id/permanent", appointmentHandler.Purge)

			secured.GET("/users/:id", userHandler.Get)
			secured.PUT("/users/:id", userHandler.Update)
			secured.PUT("/users/:id/profile-image", userHandler.UploadProfileImage)

			secured.POST("/images/upload", imageHandler.Upload)

			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/users", adminHandler.ListUsers)
				admin.PUT("/users/:id/role", adminHandler.UpdateRole)
				admin.DELETE("/users/:id", adminHandler.DeleteUser)
				admin.GET("/stats", adminHandler.Stats)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
