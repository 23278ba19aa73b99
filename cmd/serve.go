package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	authLoginHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/auth_login"
	authLogoutHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/auth_logout"
	authOTPHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/auth_otp"
	authResendHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/auth_resend"
	cancelBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/create_booking"
	getActiveBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_active_booking"
	getBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_booking"
	getPolicyHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_policy"
	getSessionHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_session"
	getSlotAvailabilityHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_slot_availability"
	getSlotsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_slots"
	getUserBookingsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_user_bookings"
	listBookingsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/list_bookings"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	usersRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/users"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/notifier"
	authService "github.com/m04kA/SMC-ParkingService/internal/service/auth"
	"github.com/m04kA/SMC-ParkingService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-ParkingService/internal/service/bookings"
	createBookingUC "github.com/m04kA/SMC-ParkingService/internal/usecase/create_booking"
	getSlotAvailabilityUC "github.com/m04kA/SMC-ParkingService/internal/usecase/get_slot_availability"
	"github.com/m04kA/SMC-ParkingService/internal/worker"
)

func runServe(ctx context.Context, configPath string) error {
	a, err := newApp(ctx, configPath)
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := a.cfg
	log := a.log

	log.Info("Starting SMC-ParkingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Репозитории и сервисы
	users := usersRepo.NewRepository(cfg.DomainUsers())
	checker := availability.NewChecker(a.policy)

	slotSvc := a.slots()
	if created, err := slotSvc.EnsureInitialized(ctx); err != nil {
		return fmt.Errorf("failed to initialize parking slots: %w", err)
	} else if created {
		log.Info("Parking slots generated: %d per section", cfg.Booking.SlotsPerSection)
	}

	authSvc := authService.NewService(users, a.state, authService.Config{
		MockOTP:    cfg.Auth.MockOTP,
		JWTSecret:  cfg.Auth.JWTSecret,
		TokenTTL:   time.Duration(cfg.Auth.TokenTTL) * time.Minute,
		PendingTTL: time.Duration(cfg.Auth.PendingTTL) * time.Minute,
		Location:   a.policy.Location,
	}, log)
	bookingSvc := bookingsService.NewService(a.state, a.policy, a.metrics, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(a.state, users, checker, a.metrics, log)
	getSlotAvailabilityUseCase := getSlotAvailabilityUC.NewUseCase(a.state, checker, log)

	// Фоновые задачи
	scheduler := worker.NewScheduler(log)
	if err := scheduler.Add("complete-bookings", cfg.Booking.CompletionSchedule,
		worker.NewCompletionJob(bookingSvc, log)); err != nil {
		return err
	}
	reminderJob := worker.NewReminderJob(
		a.state,
		users,
		buildNotifier(a),
		a.metrics,
		a.policy.Location,
		time.Duration(cfg.Booking.ReminderLeadMinutes)*time.Minute,
		log,
	)
	if err := scheduler.Add("booking-reminders", cfg.Booking.ReminderSchedule, reminderJob); err != nil {
		return err
	}

	// Handlers
	login := authLoginHandler.NewHandler(authSvc, log)
	verifyOTP := authOTPHandler.NewHandler(authSvc, log)
	resendOTP := authResendHandler.NewHandler(authSvc, log)
	logout := authLogoutHandler.NewHandler(authSvc, log)
	session := getSessionHandler.NewHandler(authSvc, log)
	policy := getPolicyHandler.NewHandler(checker, &bookingsService.RealTimeProvider{})
	slotList := getSlotsHandler.NewHandler(slotSvc, log)
	slotAvailability := getSlotAvailabilityHandler.NewHandler(getSlotAvailabilityUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	activeBooking := getActiveBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	userBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	authMW := middleware.Auth(authSvc, log)

	if a.metrics != nil {
		r.Use(middleware.MetricsMiddleware(a.metrics))
		r.Handle(cfg.Metrics.Path, a.metrics.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// AUTH ROUTES (ограничение частоты по IP)
	// ============================================================

	authRoutes := api.PathPrefix("/auth").Subrouter()
	authRoutes.Use(httprate.LimitByIP(cfg.Auth.LoginRateLimit, time.Duration(cfg.Auth.LoginRateWindow)*time.Second))
	authRoutes.HandleFunc("/login", login.Handle).Methods(http.MethodPost)
	authRoutes.HandleFunc("/otp", verifyOTP.Handle).Methods(http.MethodPost)
	authRoutes.HandleFunc("/otp/resend", resendOTP.Handle).Methods(http.MethodPost)
	authRoutes.Handle("/logout", authMW(http.HandlerFunc(logout.Handle))).Methods(http.MethodPost)

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/session", session.Handle).Methods(http.MethodGet)
	api.HandleFunc("/policy", policy.Handle).Methods(http.MethodGet)
	api.HandleFunc("/dates", policy.HandleDates).Methods(http.MethodGet)
	api.HandleFunc("/slots", slotList.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/{slotId}", slotList.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/slots/{slotId}/availability", slotAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer <token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(authMW)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/active", activeBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{employeeId}/bookings", userBookings.Handle).Methods(http.MethodGet)

	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      cors(r),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	scheduler.Start(ctx)

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down server...")
	case err := <-serverErr:
		scheduler.Stop()
		return fmt.Errorf("server failed: %w", err)
	}

	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// buildNotifier собирает каналы напоминаний: лог всегда, email и SMS при наличии ключей
func buildNotifier(a *app) *notifier.Multi {
	channels := []notifier.Notifier{notifier.NewLogNotifier(a.log)}

	sg := a.cfg.Notifications.SendGrid
	if sg.Enabled() {
		channels = append(channels, notifier.NewSendGridNotifier(notifier.SendGridConfig{
			APIKey:    sg.APIKey,
			FromEmail: sg.FromEmail,
			FromName:  sg.FromName,
		}, a.log))
		a.log.Info("Notifications: SendGrid email enabled")
	}

	tw := a.cfg.Notifications.Twilio
	if tw.Enabled() {
		channels = append(channels, notifier.NewTwilioNotifier(notifier.TwilioConfig{
			AccountSID: tw.AccountSID,
			AuthToken:  tw.AuthToken,
			FromNumber: tw.FromNumber,
		}, a.log))
		a.log.Info("Notifications: Twilio SMS enabled")
	}

	return notifier.NewMulti(channels...)
}
