package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/yash113gadia/AttendEase-Web/internal/dto"
)

func setupTestDirectoryService() (DirectoryService, *mockStudentRepo, *mockSessionRepo) {
	repo, _, studentRepo, sessionRepo, _ := newMockRepository()
	svc := NewDirectoryService(repo, zap.NewNop())
	return svc, studentRepo, sessionRepo
}

func TestDirectoryService_CreateStudent_UnknownCourse(t *testing.T) {
	svc, _, _ := setupTestDirectoryService()

	_, err := svc.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		RollNumber:    "R001",
		FirstName:     "Asha",
		CourseID:      42,
		InstitutionID: 1,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing course, got %v", err)
	}
}

func TestDirectoryService_CreateSession_UnknownCourse(t *testing.T) {
	svc, _, _ := setupTestDirectoryService()

	_, err := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{
		CourseID:  42,
		TeacherID: 1,
		DayOfWeek: "MONDAY",
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing course, got %v", err)
	}
}

func TestDirectoryService_CourseLifecycle(t *testing.T) {
	svc, _, _ := setupTestDirectoryService()

	inst, err := svc.CreateInstitution(context.Background(), &dto.CreateInstitutionRequest{
		Name: "Springfield Institute",
	})
	if err != nil {
		t.Fatalf("CreateInstitution: %v", err)
	}

	course, err := svc.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		CourseName:    "BSc Physics",
		InstitutionID: inst.ID,
	})
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}

	updated, err := svc.UpdateCourse(context.Background(), course.ID, &dto.UpdateCourseRequest{
		CourseName:  "BSc Applied Physics",
		Description: "renamed",
	})
	if err != nil {
		t.Fatalf("UpdateCourse: %v", err)
	}
	if updated.CourseName != "BSc Applied Physics" {
		t.Errorf("expected renamed course, got %q", updated.CourseName)
	}

	if err := svc.DeleteCourse(context.Background(), course.ID); err != nil {
		t.Fatalf("DeleteCourse: %v", err)
	}
	if _, err := svc.GetCourse(context.Background(), course.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestDirectoryService_GetSession_NotFound(t *testing.T) {
	svc, _, _ := setupTestDirectoryService()

	if _, err := svc.GetSession(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
