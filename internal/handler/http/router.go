package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/motorph/payroll-engine-go/internal/config"
	"github.com/motorph/payroll-engine-go/internal/handler/http/middleware"
	"github.com/motorph/payroll-engine-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	JWTService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "motorph-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.CORSOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListEmployees)
				r.Route("/{employeeNumber}", func(r chi.Router) {
					r.Get("/", employeeHandler.GetEmployee)
					r.Get("/attendance", attendanceHandler.ListAttendance)
				})
			})

			r.Post("/attendance/import", attendanceHandler.Import)

			r.Route("/payroll/{employeeNumber}", func(r chi.Router) {
				r.Get("/", payrollHandler.ComputeMonthly)
				r.Route("/payslip", func(r chi.Router) {
					r.Get("/", payrollHandler.DownloadPayslip)
					r.Get("/archive", payrollHandler.DownloadArchivedPayslip)
					r.Post("/send", payrollHandler.SendPayslip)
				})
			})
		})
	})
	return r
}
