package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-chain/internal/audit"
	"github.com/BruksfildServices01/barber-chain/internal/cache"
	"github.com/BruksfildServices01/barber-chain/internal/config"
	domsecurity "github.com/BruksfildServices01/barber-chain/internal/domain/security"
	"github.com/BruksfildServices01/barber-chain/internal/fraud"
	"github.com/BruksfildServices01/barber-chain/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-chain/internal/infra/repository"
	"github.com/BruksfildServices01/barber-chain/internal/metrics"
	"github.com/BruksfildServices01/barber-chain/internal/middleware"
	"github.com/BruksfildServices01/barber-chain/internal/storage"
	ucAppointment "github.com/BruksfildServices01/barber-chain/internal/usecase/appointment"
	ucSecurity "github.com/BruksfildServices01/barber-chain/internal/usecase/security"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log zerolog.Logger) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	metrics.Register()

	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	redisClient := cache.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	flagsCache := cache.NewSecurityFlagsCache(redisClient, 5*time.Minute)

	ledger := domsecurity.NewLedger(cfg.BlacklistThreshold)
	classifier := fraud.NewKeywordClassifier(cfg.FraudKeywords)

	voucherStore := storage.NewVoucherStore(cfg)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createUC := ucAppointment.NewCreate(appointmentRepo, auditDispatcher)
	cancelUC := ucAppointment.NewCancel(appointmentRepo, auditDispatcher)
	completeUC := ucAppointment.NewComplete(appointmentRepo, auditDispatcher)
	listPendingUC := ucAppointment.NewListPending(appointmentRepo)

	openReviewUC := ucAppointment.NewOpenReview(appointmentRepo, auditDispatcher)
	approveUC := ucAppointment.NewApprove(appointmentRepo, auditDispatcher)
	rejectUC := ucAppointment.NewReject(appointmentRepo, auditDispatcher)

	approvePaymentUC := ucAppointment.NewApprovePayment(appointmentRepo, auditDispatcher)
	rejectPaymentUC := ucAppointment.NewRejectPayment(
		appointmentRepo,
		ledger,
		classifier,
		flagsCache,
		auditDispatcher,
		log,
	)

	// ======================================================
	// USE CASES — CLIENT SECURITY
	// ======================================================
	getFlagsUC := ucSecurity.NewGetFlags(appointmentRepo, flagsCache, log)
	clearFlagsUC := ucSecurity.NewClearFlags(appointmentRepo, ledger, flagsCache, auditDispatcher, log)
	setUnwelcomeUC := ucSecurity.NewSetUnwelcome(appointmentRepo, flagsCache, auditDispatcher, log)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createUC,
		cancelUC,
		completeUC,
		listPendingUC,
	)

	verificationHandler := handlers.NewVerificationHandler(
		openReviewUC,
		approveUC,
		rejectUC,
		approvePaymentUC,
		rejectPaymentUC,
		voucherStore,
	)

	clientSecurityHandler := handlers.NewClientSecurityHandler(
		getFlagsUC,
		clearFlagsUC,
		setUnwelcomeUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	publicHandler := handlers.NewPublicHandler(db, createUC)

	// ======================================================
	// OBSERVABILITY
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA (booking do cliente)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments/pending", appointmentHandler.ListPending)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)

			// Fluxo de aprovação
			secured.PATCH("/me/appointments/:id/review", verificationHandler.OpenReview)
			secured.PATCH("/me/appointments/:id/approve", verificationHandler.Approve)
			secured.PATCH("/me/appointments/:id/reject", verificationHandler.Reject)

			// Fluxo de verificação de pagamento
			secured.PATCH("/me/appointments/:id/approve-payment", verificationHandler.ApprovePayment)
			secured.PATCH("/me/appointments/:id/reject-payment", verificationHandler.RejectPayment)
			secured.POST("/me/appointments/:id/voucher", verificationHandler.UploadVoucher)

			// ------------------------------
			// CLIENT SECURITY
			// ------------------------------
			secured.GET("/me/clients/:id/security-flags", clientSecurityHandler.GetFlags)
			secured.DELETE("/me/clients/:id/security-flags", clientSecurityHandler.ClearFlags)
			secured.PATCH("/me/clients/:id/unwelcome", clientSecurityHandler.SetUnwelcome)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
