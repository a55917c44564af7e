package configs

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"

	"gurubank_backend/internals/constants"
)

var (
	AppPort                string
	CORSAllowOrigins       []string
	MatchAdminStatusPolicy string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	AppPort = GetEnv("PORT", "3000")

	CORSAllowOrigins = splitAndTrim(GetEnv("CORS_ALLOW_ORIGINS",
		"http://localhost:5173, http://127.0.0.1:5500"))

	// Policy admin_status saat matching: "default" atau "group-type"
	MatchAdminStatusPolicy = GetEnv("MATCH_ADMIN_STATUS_POLICY", constants.AdminStatusPolicyDefault)
	switch MatchAdminStatusPolicy {
	case constants.AdminStatusPolicyDefault, constants.AdminStatusPolicyGroupType:
		log.Printf("✅ MATCH_ADMIN_STATUS_POLICY = %s", MatchAdminStatusPolicy)
	default:
		log.Printf("⚠️ MATCH_ADMIN_STATUS_POLICY '%s' tidak dikenal, pakai '%s'",
			MatchAdminStatusPolicy, constants.AdminStatusPolicyDefault)
		MatchAdminStatusPolicy = constants.AdminStatusPolicyDefault
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	if err != nil {
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	} else if elapsed > l.SlowThreshold {
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
