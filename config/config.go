package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	DB         DBConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Scheduling SchedulingConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	MigrationsDir string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

// SchedulingConfig drives the appointment engine: slot sizing, the conflict
// grace buffer, the offered providers, and the booking-lock bounds.
type SchedulingConfig struct {
	SlotMinutes  int
	GraceMinutes int
	Doctors      []string
	LockWait     time.Duration
	LockTTL      time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:          viper.GetString("DB_HOST"),
			Port:          viper.GetString("DB_PORT"),
			User:          viper.GetString("DB_USER"),
			Password:      viper.GetString("DB_PASSWORD"),
			Name:          viper.GetString("DB_NAME"),
			MigrationsDir: viper.GetString("DB_MIGRATIONS_DIR"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
		},
		Scheduling: SchedulingConfig{
			SlotMinutes:  viper.GetInt("SCHEDULE_SLOT_MINUTES"),
			GraceMinutes: viper.GetInt("SCHEDULE_GRACE_MINUTES"),
			Doctors:      splitDoctors(viper.GetString("SCHEDULE_DOCTORS")),
			LockWait:     viper.GetDuration("SCHEDULE_LOCK_WAIT"),
			LockTTL:      viper.GetDuration("SCHEDULE_LOCK_TTL"),
		},
	}

	applySchedulingDefaults(&config.Scheduling, viper.IsSet("SCHEDULE_GRACE_MINUTES"))

	if config.DB.MigrationsDir == "" {
		config.DB.MigrationsDir = "migrations"
	}

	return config, nil
}

func applySchedulingDefaults(cfg *SchedulingConfig, graceSet bool) {
	if cfg.SlotMinutes <= 0 {
		cfg.SlotMinutes = 30
	}
	if cfg.GraceMinutes < 0 {
		cfg.GraceMinutes = 0
	}
	if cfg.GraceMinutes == 0 && !graceSet {
		cfg.GraceMinutes = 5
	}
	if len(cfg.Doctors) == 0 {
		cfg.Doctors = []string{"On Call"}
	}
	if cfg.LockWait <= 0 {
		cfg.LockWait = 2 * time.Second
	}
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = 5 * time.Second
	}
}

func splitDoctors(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	doctors := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name != "" {
			doctors = append(doctors, name)
		}
	}
	return doctors
}
