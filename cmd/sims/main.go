package main

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/sims-cli/internal/audit"
	"github.com/noah-isme/sims-cli/internal/repository"
	"github.com/noah-isme/sims-cli/internal/service"
	"github.com/noah-isme/sims-cli/internal/shell"
	"github.com/noah-isme/sims-cli/pkg/config"
	"github.com/noah-isme/sims-cli/pkg/logger"
	"github.com/noah-isme/sims-cli/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	store, err := storage.NewLocalStorage(cfg.Export.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to prepare export directory", "error", err)
	}

	tables := repository.NewTables(cfg.Tables)
	students := tables.Students()
	courses := tables.Courses()
	enrollments := tables.Enrollments()

	trail := audit.NewTrail(cfg.Trail.Capacity, logr)
	validate := validator.New()

	studentSvc := service.NewStudentService(students, trail, validate, logr)
	courseSvc := service.NewCourseService(courses, trail, validate, logr)
	enrollmentSvc := service.NewEnrollmentService(enrollments, students, courses, trail, validate, logr)
	analyticsSvc := service.NewAnalyticsService(students, courses, enrollments, trail, logr)
	exportSvc := service.NewExportService(students, courses, enrollments, store, trail, cfg.Export.Basename, logr)

	logr.Sugar().Infow("console starting", "session", trail.SessionID(), "env", cfg.Env)

	sh := shell.New(os.Stdin, os.Stdout, studentSvc, courseSvc, enrollmentSvc, analyticsSvc, exportSvc, trail, logr)
	if err := sh.Run(); err != nil && !errors.Is(err, io.EOF) {
		logr.Sugar().Fatalw("console failed", "error", err)
	}
}
