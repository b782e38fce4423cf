package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/Guiirs/api-inmidia-2026-sub000/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/Guiirs/api-inmidia-2026-sub000/internal/api/handlers/check_availability"
	createBookingHandler "github.com/Guiirs/api-inmidia-2026-sub000/internal/api/handlers/create_booking"
	createProposalHandler "github.com/Guiirs/api-inmidia-2026-sub000/internal/api/handlers/create_proposal"
	deleteProposalHandler "github.com/Guiirs/api-inmidia-2026-sub000/internal/api/handlers/delete_proposal"
	generateSlotsHandler "github.com/Guiirs/api-inmidia-2026-sub000/internal/api/handlers/generate_slots"
	getBiweekSlotHandler "github.com/Guiirs/api-inmidia-2026-sub000/internal/api/handlers/get_biweek_slot"
	getBookingHandler "github.com/Guiirs/api-inmidia-2026-sub000/internal/api/handlers/get_booking"
	getProposalHandler "github.com/Guiirs/api-inmidia-2026-sub000/internal/api/handlers/get_proposal"
	runReconciliationHandler "github.com/Guiirs/api-inmidia-2026-sub000/internal/api/handlers/run_reconciliation"
	updateProposalHandler "github.com/Guiirs/api-inmidia-2026-sub000/internal/api/handlers/update_proposal"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/api/middleware"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/config"
	billboardRepo "github.com/Guiirs/api-inmidia-2026-sub000/internal/infra/storage/billboard"
	biweekRepo "github.com/Guiirs/api-inmidia-2026-sub000/internal/infra/storage/biweek"
	bookingRepo "github.com/Guiirs/api-inmidia-2026-sub000/internal/infra/storage/booking"
	clientRepo "github.com/Guiirs/api-inmidia-2026-sub000/internal/infra/storage/client"
	proposalRepo "github.com/Guiirs/api-inmidia-2026-sub000/internal/infra/storage/proposal"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/integrations/notifier"
	"github.com/Guiirs/api-inmidia-2026-sub000/internal/jobs/reconciler"
	bookingsService "github.com/Guiirs/api-inmidia-2026-sub000/internal/service/bookings"
	periodsService "github.com/Guiirs/api-inmidia-2026-sub000/internal/service/periods"
	proposalsService "github.com/Guiirs/api-inmidia-2026-sub000/internal/service/proposals"
	createBookingUC "github.com/Guiirs/api-inmidia-2026-sub000/internal/usecase/create_booking"
	createProposalUC "github.com/Guiirs/api-inmidia-2026-sub000/internal/usecase/create_proposal"
	deleteProposalUC "github.com/Guiirs/api-inmidia-2026-sub000/internal/usecase/delete_proposal"
	reconcileProposalsUC "github.com/Guiirs/api-inmidia-2026-sub000/internal/usecase/reconcile_proposals"
	updateProposalUC "github.com/Guiirs/api-inmidia-2026-sub000/internal/usecase/update_proposal"
	"github.com/Guiirs/api-inmidia-2026-sub000/pkg/dbmetrics"
	"github.com/Guiirs/api-inmidia-2026-sub000/pkg/logger"
	"github.com/Guiirs/api-inmidia-2026-sub000/pkg/metrics"
	"github.com/Guiirs/api-inmidia-2026-sub000/pkg/simpletxmanager"
	"github.com/Guiirs/api-inmidia-2026-sub000/pkg/txmanager"
)

func main() {
	// Variáveis locais de .env (DB_USER, DB_PASSWORD etc.); ausência não é erro
	_ = godotenv.Load()

	// Carrega a configuração
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Inicializa o logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting api-inmidia...")
	log.Info("Configuration loaded from config.toml")

	// Inicializa as métricas (se habilitadas)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Conecta no banco
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Repositórios e transaction manager (com métricas ou sem)
	var (
		bookingRepository   *bookingRepo.Repository
		proposalRepository  *proposalRepo.Repository
		biweekRepository    *biweekRepo.Repository
		clientRepository    *clientRepo.Repository
		billboardRepository *billboardRepo.Repository
	)

	// Interface usada pelos usecases
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		proposalRepository = proposalRepo.NewRepository(wrappedDB)
		biweekRepository = biweekRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		billboardRepository = billboardRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		proposalRepository = proposalRepo.NewRepository(db)
		biweekRepository = biweekRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		billboardRepository = billboardRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Notificador webhook (se habilitado)
	var notify interface{ Enqueue(event notifier.Event) }
	var dispatcher *notifier.Dispatcher

	if cfg.Notifier.Enabled {
		webhookClient := notifier.NewClient(
			cfg.Notifier.WebhookURL,
			time.Duration(cfg.Notifier.Timeout)*time.Second,
			log,
		)
		var notifMetrics notifier.Metrics
		if metricsCollector != nil {
			notifMetrics = metricsCollector
		}
		dispatcher = notifier.NewDispatcher(webhookClient, cfg.Notifier.QueueSize, log, notifMetrics)
		dispatcher.Start()
		notify = dispatcher
		log.Info("Notifier enabled (webhook=%s, queue=%d)", cfg.Notifier.WebhookURL, cfg.Notifier.QueueSize)
	} else {
		notify = notifier.NopDispatcher{}
		log.Info("Notifier disabled")
	}

	// Serviços
	periodSvc := periodsService.NewService(biweekRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, clientRepository, notify, log)
	proposalSvc := proposalsService.NewService(proposalRepository, bookingRepository, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		clientRepository,
		billboardRepository,
		periodSvc,
		txMgr,
		notify,
		log,
	)
	createProposalUseCase := createProposalUC.NewUseCase(
		proposalRepository,
		bookingRepository,
		clientRepository,
		billboardRepository,
		periodSvc,
		txMgr,
		notify,
		&createProposalUC.RealTimeProvider{},
		log,
	)
	updateProposalUseCase := updateProposalUC.NewUseCase(
		proposalRepository,
		bookingRepository,
		clientRepository,
		billboardRepository,
		periodSvc,
		txMgr,
		notify,
		log,
	)
	deleteProposalUseCase := deleteProposalUC.NewUseCase(
		proposalRepository,
		bookingRepository,
		txMgr,
		notify,
		log,
	)

	var reconcileMetrics reconcileProposalsUC.Metrics
	if metricsCollector != nil {
		reconcileMetrics = metricsCollector
	}
	reconcileUseCase := reconcileProposalsUC.NewUseCase(
		proposalRepository,
		bookingRepository,
		billboardRepository,
		txMgr,
		&reconcileProposalsUC.RealTimeProvider{},
		reconcileMetrics,
		log,
	)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(bookingSvc, log)
	createProposal := createProposalHandler.NewHandler(createProposalUseCase, log)
	getProposal := getProposalHandler.NewHandler(proposalSvc, log)
	updateProposal := updateProposalHandler.NewHandler(updateProposalUseCase, log)
	deleteProposal := deleteProposalHandler.NewHandler(deleteProposalUseCase, log)
	generateSlots := generateSlotsHandler.NewHandler(periodSvc, log)
	getBiweekSlot := getBiweekSlotHandler.NewHandler(periodSvc, log)
	runReconciliation := runReconciliationHandler.NewHandler(reconcileUseCase, log)

	// Roteador
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Todas as rotas exigem X-Company-ID (preenchido pelo gateway)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Reservas ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/check-availability", checkAvailability.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- Propostas ---
	protected.HandleFunc("/proposals", createProposal.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/proposals/{proposalId}", getProposal.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/proposals/{proposalId}", updateProposal.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/proposals/{proposalId}", deleteProposal.Handle).Methods(http.MethodDelete)

	// --- Calendário quinzenal ---
	protected.HandleFunc("/slots/generate", generateSlots.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/slots", getBiweekSlot.HandleByDate).Methods(http.MethodGet)
	protected.HandleFunc("/slots/{slotId}", getBiweekSlot.Handle).Methods(http.MethodGet)

	// --- Reconciliação sob demanda ---
	protected.HandleFunc("/reconciliation/run", runReconciliation.Handle).Methods(http.MethodPost)

	// Varredura agendada
	var reconcileRunner *reconciler.Runner
	if cfg.Reconciler.Enabled {
		reconcileRunner = reconciler.NewRunner(
			reconcileUseCase,
			time.Duration(cfg.Reconciler.IntervalMinutes)*time.Minute,
			log,
		)
		reconcileRunner.Start()
		log.Info("Reconciler started (interval=%dm)", cfg.Reconciler.IntervalMinutes)
	}

	// Servidor HTTP
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if reconcileRunner != nil {
		reconcileRunner.Stop()
		log.Info("Reconciler stopped")
	}

	if dispatcher != nil {
		dispatcher.Stop()
		log.Info("Notifier drained and stopped")
	}

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	log.Info("Server stopped gracefully")
}
