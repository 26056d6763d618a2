package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	DataSourcePostgres = "postgres"
	DataSourceCSV      = "csv"

	PayslipStorageLocal = "local"
	PayslipStorageSFTP  = "sftp"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	DataSource DataSourceConfig
	JWT        JWTConfig
	Admin      AdminConfig
	Payroll    PayrollConfig
	Payslip    PayslipConfig
	SFTP       SFTPConfig
	SMTP       SMTPConfig
}

type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	CORSOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DataSourceConfig selects where employees and attendance are read from.
// The CSV fields are only used when Driver is "csv".
type DataSourceConfig struct {
	Driver         string
	EmployeeCSV    string
	AttendanceCSV  string
	ReloadInterval string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AdminConfig is the single API credential. PasswordHash is a bcrypt hash.
type AdminConfig struct {
	Username     string
	PasswordHash string
}

type PayrollConfig struct {
	// OvertimePremium is the fraction added to the base hourly rate for
	// overtime hours, e.g. "0.25" pays overtime at 125%.
	OvertimePremium string
}

type PayslipConfig struct {
	CompanyName string
	Storage     string
	LocalPath   string
}

type SFTPConfig struct {
	Host           string
	Port           int
	Username       string
	Password       string
	PrivateKeyFile string
	BasePath       string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

func Load() (*Config, error) {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	corsOrigins := getEnvSlice("CORS_ALLOWED_ORIGINS")
	if len(corsOrigins) == 0 {
		corsOrigins = []string{"http://localhost:3000"}
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: corsOrigins,
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "motorph-payroll"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	config.DataSource = DataSourceConfig{
		Driver:         getEnv("DATA_SOURCE", DataSourceCSV),
		EmployeeCSV:    getEnv("EMPLOYEE_CSV_PATH", "data/employees.csv"),
		AttendanceCSV:  getEnv("ATTENDANCE_CSV_PATH", "data/attendance.csv"),
		ReloadInterval: getEnv("CSV_RELOAD_INTERVAL", "5m"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	config.Admin = AdminConfig{
		Username:     getEnv("ADMIN_USERNAME", ""),
		PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}

	config.Payroll = PayrollConfig{
		OvertimePremium: getEnv("OVERTIME_PREMIUM", "0.25"),
	}

	config.Payslip = PayslipConfig{
		CompanyName: getEnv("PAYSLIP_COMPANY_NAME", "MotorPH"),
		Storage:     getEnv("PAYSLIP_STORAGE", PayslipStorageLocal),
		LocalPath:   getEnv("PAYSLIP_LOCAL_PATH", "storage/payslips"),
	}

	sftpPort, err := strconv.Atoi(getEnv("SFTP_PORT", "22"))
	if err != nil {
		return nil, fmt.Errorf("invalid SFTP_PORT: %w", err)
	}

	config.SFTP = SFTPConfig{
		Host:           getEnv("SFTP_HOST", ""),
		Port:           sftpPort,
		Username:       getEnv("SFTP_USERNAME", ""),
		Password:       getEnv("SFTP_PASSWORD", ""),
		PrivateKeyFile: getEnv("SFTP_PRIVATE_KEY_FILE", ""),
		BasePath:       getEnv("SFTP_BASE_PATH", "payslips"),
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", ""),
		FromName: getEnv("SMTP_FROM_NAME", "MotorPH Payroll"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Admin.Username == "" {
		return fmt.Errorf("ADMIN_USERNAME is required")
	}
	if c.Admin.PasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}

	switch c.DataSource.Driver {
	case DataSourcePostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required when DATA_SOURCE is postgres")
		}
	case DataSourceCSV:
		if c.DataSource.EmployeeCSV == "" || c.DataSource.AttendanceCSV == "" {
			return fmt.Errorf("EMPLOYEE_CSV_PATH and ATTENDANCE_CSV_PATH are required when DATA_SOURCE is csv")
		}
		if _, err := time.ParseDuration(c.DataSource.ReloadInterval); err != nil {
			return fmt.Errorf("invalid CSV_RELOAD_INTERVAL: %w", err)
		}
	default:
		return fmt.Errorf("DATA_SOURCE must be %q or %q, got %q", DataSourcePostgres, DataSourceCSV, c.DataSource.Driver)
	}

	switch c.Payslip.Storage {
	case PayslipStorageLocal:
		if c.Payslip.LocalPath == "" {
			return fmt.Errorf("PAYSLIP_LOCAL_PATH is required when PAYSLIP_STORAGE is local")
		}
	case PayslipStorageSFTP:
		if c.SFTP.Host == "" || c.SFTP.Username == "" {
			return fmt.Errorf("SFTP_HOST and SFTP_USERNAME are required when PAYSLIP_STORAGE is sftp")
		}
	default:
		return fmt.Errorf("PAYSLIP_STORAGE must be %q or %q, got %q", PayslipStorageLocal, PayslipStorageSFTP, c.Payslip.Storage)
	}

	premium, err := decimal.NewFromString(c.Payroll.OvertimePremium)
	if err != nil {
		return fmt.Errorf("invalid OVERTIME_PREMIUM: %w", err)
	}
	if premium.IsNegative() {
		return fmt.Errorf("OVERTIME_PREMIUM must not be negative")
	}

	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string = strings.Split(value, ",")
	return result
}
