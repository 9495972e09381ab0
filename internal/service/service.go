package service

import (
	"go.uber.org/zap"

	"github.com/yash113gadia/AttendEase-Web/config"
	"github.com/yash113gadia/AttendEase-Web/internal/repository"
	"github.com/yash113gadia/AttendEase-Web/pkg/jwt"
	"github.com/yash113gadia/AttendEase-Web/pkg/redis"
)

// Service aggregates every business-logic interface.
type Service struct {
	Auth       AuthService
	Attendance AttendanceService
	Directory  DirectoryService
	Export     ExportService
}

// NewService wires the service implementations.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	attendance := NewAttendanceService(repo, logger)
	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Attendance: attendance,
		Directory:  NewDirectoryService(repo, logger),
		Export:     NewExportService(repo, attendance, logger),
	}
}
