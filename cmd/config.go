package cmd

import "time"

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	AdminUser             string
	AdminPassword         string
	UploadDir             string
	MaxUploadBytes        int64
	DefaultCurrency       string
	UploadRetention       time.Duration
	UploadCleanupSchedule string
}
