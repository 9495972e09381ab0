package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/yash113gadia/AttendEase-Web/config"
	"github.com/yash113gadia/AttendEase-Web/internal/api/handler"
	"github.com/yash113gadia/AttendEase-Web/internal/api/middleware"
	"github.com/yash113gadia/AttendEase-Web/internal/model"
	"github.com/yash113gadia/AttendEase-Web/internal/repository"
	"github.com/yash113gadia/AttendEase-Web/pkg/jwt"
	"github.com/yash113gadia/AttendEase-Web/pkg/redis"
)

const maxBodyBytes = 1 << 20 // 1MB

// Setup builds the Gin engine with the full middleware stack and all
// API routes.
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	jwtMgr *jwt.Manager,
	repo *repository.Repository,
	rdb *redis.Client,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── operational endpoints ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ── API v1 ──
	// The auth gate is lenient: requests with a missing or invalid
	// token proceed anonymously and are stopped by the role guards on
	// protected routes, never by the gate itself.
	v1 := r.Group("/api/v1")
	v1.Use(middleware.Authenticate(jwtMgr, repo.User, rdb, logger))

	anyRole := middleware.RequireRole(model.RoleAdmin, model.RoleTeacher, model.RoleStudent)
	staffOnly := middleware.RequireRole(model.RoleAdmin, model.RoleTeacher)
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/register", adminOnly, h.Auth.Register)
			auth.POST("/logout", h.Auth.Logout)
		}

		attendance := v1.Group("/attendance")
		{
			attendance.POST("/mark", staffOnly, h.Attendance.Mark)
			attendance.GET("/session/:sessionId", anyRole, h.Attendance.GetBySession)
			attendance.GET("/student/:studentId", anyRole, h.Attendance.GetByStudent)
			attendance.GET("/course/:courseId/stats", anyRole, h.Attendance.CourseStats)
			attendance.GET("/course/:courseId/stats/export", staffOnly, h.Export.CourseStats)
		}

		institutions := v1.Group("/institutions")
		{
			institutions.GET("", anyRole, h.Institution.List)
			institutions.GET("/:id", anyRole, h.Institution.Get)
			institutions.POST("", adminOnly, h.Institution.Create)
			institutions.DELETE("/:id", adminOnly, h.Institution.Delete)
		}

		courses := v1.Group("/courses")
		{
			courses.GET("", anyRole, h.Course.List)
			courses.GET("/:id", anyRole, h.Course.Get)
			courses.POST("", adminOnly, h.Course.Create)
			courses.PUT("/:id", adminOnly, h.Course.Update)
			courses.DELETE("/:id", adminOnly, h.Course.Delete)
		}

		subjects := v1.Group("/subjects")
		{
			subjects.GET("", anyRole, h.Subject.List)
			subjects.POST("", adminOnly, h.Subject.Create)
			subjects.DELETE("/:id", adminOnly, h.Subject.Delete)
		}

		students := v1.Group("/students")
		{
			students.GET("", anyRole, h.Student.List)
			students.GET("/:id", anyRole, h.Student.Get)
			students.POST("", adminOnly, h.Student.Create)
			students.PUT("/:id", adminOnly, h.Student.Update)
			students.DELETE("/:id", adminOnly, h.Student.Delete)
		}

		sessions := v1.Group("/sessions")
		{
			sessions.GET("", anyRole, h.Session.List)
			sessions.GET("/:id", anyRole, h.Session.Get)
			sessions.GET("/course/:courseId/timetable.ics", anyRole, h.Export.CourseTimetable)
			sessions.POST("", staffOnly, h.Session.Create)
			sessions.DELETE("/:id", adminOnly, h.Session.Delete)
		}
	}

	return r
}
