package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/motorph/payroll-engine-go/internal/config"
	"github.com/motorph/payroll-engine-go/internal/domain/attendance"
	"github.com/motorph/payroll-engine-go/internal/domain/employee"
	"github.com/motorph/payroll-engine-go/internal/domain/payroll"
	"github.com/motorph/payroll-engine-go/internal/fixtures"
	appHTTP "github.com/motorph/payroll-engine-go/internal/handler/http"
	"github.com/motorph/payroll-engine-go/internal/pkg/cron"
	"github.com/motorph/payroll-engine-go/internal/pkg/database"
	"github.com/motorph/payroll-engine-go/internal/pkg/email"
	"github.com/motorph/payroll-engine-go/internal/pkg/jwt"
	"github.com/motorph/payroll-engine-go/internal/pkg/payslip"
	"github.com/motorph/payroll-engine-go/internal/pkg/storage"
	"github.com/motorph/payroll-engine-go/internal/repository/csv"
	"github.com/motorph/payroll-engine-go/internal/repository/postgresql"
	attendanceService "github.com/motorph/payroll-engine-go/internal/service/attendance"
	serviceAuth "github.com/motorph/payroll-engine-go/internal/service/auth"
	employeeService "github.com/motorph/payroll-engine-go/internal/service/employee"
	payrollService "github.com/motorph/payroll-engine-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	var (
		employeeRepo   employee.EmployeeRepository
		attendanceRepo attendance.AttendanceRepository
		scheduler      *cron.Scheduler
	)

	switch cfg.DataSource.Driver {
	case config.DataSourcePostgres:
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			fmt.Println("Error connecting to database:", err)
			return
		}
		employeeRepo = postgresql.NewEmployeeRepository(db)
		attendanceRepo = postgresql.NewAttendanceRepository(db)
	case config.DataSourceCSV:
		if cfg.App.Env == "development" {
			if err := fixtures.SeedIfMissing(cfg.DataSource.EmployeeCSV, cfg.DataSource.AttendanceCSV); err != nil {
				log.Fatal("Failed to seed sample data:", err)
			}
		}
		store, err := csv.NewStore(cfg.DataSource.EmployeeCSV, cfg.DataSource.AttendanceCSV)
		if err != nil {
			log.Fatal("Failed to load CSV data source:", err)
		}
		employeeRepo = csv.NewEmployeeRepository(store)
		attendanceRepo = csv.NewAttendanceRepository(store)

		// Config validation has already vetted the interval.
		interval, _ := time.ParseDuration(cfg.DataSource.ReloadInterval)
		scheduler = cron.NewScheduler()
		cron.NewDataSourceJobs(store, interval).RegisterJobs(scheduler)
	default:
		log.Fatal("Unsupported data source: ", cfg.DataSource.Driver)
	}

	var archive storage.FileStorage
	switch cfg.Payslip.Storage {
	case config.PayslipStorageLocal:
		archive, err = storage.NewLocalStorage(cfg.Payslip.LocalPath)
		if err != nil {
			log.Fatal("Failed to initialize payslip archive:", err)
		}
	case config.PayslipStorageSFTP:
		var privateKey string
		if cfg.SFTP.PrivateKeyFile != "" {
			keyBytes, err := os.ReadFile(cfg.SFTP.PrivateKeyFile)
			if err != nil {
				log.Fatal("Failed to read SFTP private key:", err)
			}
			privateKey = string(keyBytes)
		}
		archive, err = storage.NewSFTPStorage(storage.SFTPConfig{
			Host:       cfg.SFTP.Host,
			Port:       cfg.SFTP.Port,
			Username:   cfg.SFTP.Username,
			Password:   cfg.SFTP.Password,
			PrivateKey: privateKey,
			BasePath:   cfg.SFTP.BasePath,
		})
		if err != nil {
			log.Fatal("Failed to initialize payslip archive:", err)
		}
	default:
		log.Fatal("Unsupported payslip storage: ", cfg.Payslip.Storage)
	}

	// Config validation has already vetted the premium.
	premium, _ := decimal.NewFromString(cfg.Payroll.OvertimePremium)
	policy := payroll.DefaultPolicy()
	policy.OvertimePremium = premium

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}
	renderer := payslip.NewRenderer(cfg.Payslip.CompanyName)

	authService := serviceAuth.NewAuthService(cfg.Admin, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(
		employeeRepo,
		attendanceRepo,
		policy,
		renderer,
		archive,
		emailService,
	)

	authHandler := appHTTP.NewAuthHandler(JWTService, authService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		payrollHandler,
	)

	if scheduler != nil {
		scheduler.Start()
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	if scheduler != nil {
		scheduler.Stop()
	}

	log.Println("Server stopped")
}
