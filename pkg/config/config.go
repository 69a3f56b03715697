package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	Tables TablesConfig
	Log    LogConfig
	Export ExportConfig
	Trail  TrailConfig
}

// TablesConfig sets the capacity and identifier offset of each record table.
type TablesConfig struct {
	MaxStudents        int
	MaxCourses         int
	MaxEnrollments     int
	StudentIDOffset    int
	CourseIDOffset     int
	EnrollmentIDOffset int
}

type LogConfig struct {
	Level  string
	Format string
}

// ExportConfig controls where report files are written.
type ExportConfig struct {
	Dir      string
	Basename string
}

// TrailConfig bounds the operation trail.
type TrailConfig struct {
	Capacity int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Tables = TablesConfig{
		MaxStudents:        v.GetInt("MAX_STUDENTS"),
		MaxCourses:         v.GetInt("MAX_COURSES"),
		MaxEnrollments:     v.GetInt("MAX_ENROLLMENTS"),
		StudentIDOffset:    v.GetInt("STUDENT_ID_OFFSET"),
		CourseIDOffset:     v.GetInt("COURSE_ID_OFFSET"),
		EnrollmentIDOffset: v.GetInt("ENROLLMENT_ID_OFFSET"),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Export = ExportConfig{
		Dir:      v.GetString("EXPORT_DIR"),
		Basename: v.GetString("EXPORT_BASENAME"),
	}

	cfg.Trail = TrailConfig{
		Capacity: v.GetInt("TRAIL_CAPACITY"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("MAX_STUDENTS", 500)
	v.SetDefault("MAX_COURSES", 100)
	v.SetDefault("MAX_ENROLLMENTS", 5000)
	v.SetDefault("STUDENT_ID_OFFSET", 1001)
	v.SetDefault("COURSE_ID_OFFSET", 5001)
	v.SetDefault("ENROLLMENT_ID_OFFSET", 7001)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("EXPORT_DIR", "./exports")
	v.SetDefault("EXPORT_BASENAME", "system_export")

	v.SetDefault("TRAIL_CAPACITY", 10000)
}
