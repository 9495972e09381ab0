package database

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yash113gadia/AttendEase-Web/internal/model"
)

// SeedDemo populates an empty database with a small demo dataset:
// one institution, one course, a teacher, an admin, and a handful of
// students with scheduled sessions. It is a no-op when users already
// exist, so it is safe to run at every startup.
func SeedDemo(db *gorm.DB, logger *zap.Logger) error {
	var userCount int64
	if err := db.Model(&model.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if userCount > 0 {
		logger.Info("demo seed skipped, users already present")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		inst := &model.Institution{
			Name:    "Springfield Institute of Technology",
			Address: "42 Evergreen Terrace",
		}
		if err := tx.Create(inst).Error; err != nil {
			return fmt.Errorf("seed institution: %w", err)
		}

		if _, err := seedUser(tx, "admin", "admin123!", model.RoleAdmin, "Site Admin", inst.ID); err != nil {
			return err
		}

		teacher, err := seedUser(tx, "teacher1", "teach123!", model.RoleTeacher, "Priya Sharma", inst.ID)
		if err != nil {
			return err
		}

		course := &model.Course{
			CourseName:    "BSc Computer Science",
			InstitutionID: inst.ID,
			Description:   "Three-year undergraduate programme",
		}
		if err := tx.Create(course).Error; err != nil {
			return fmt.Errorf("seed course: %w", err)
		}

		subject := &model.Subject{
			SubjectName:   "Data Structures",
			SubjectCode:   "CS201",
			InstitutionID: inst.ID,
		}
		if err := tx.Create(subject).Error; err != nil {
			return fmt.Errorf("seed subject: %w", err)
		}

		names := [][2]string{
			{"Asha", "Iyer"}, {"Dev", "Patel"}, {"Meera", "Nair"},
			{"Rohan", "Gupta"}, {"Sara", "Khan"},
		}
		for i, n := range names {
			student := &model.Student{
				RollNumber:    fmt.Sprintf("CS-%03d", i+1),
				FirstName:     n[0],
				LastName:      n[1],
				CourseID:      course.ID,
				InstitutionID: inst.ID,
			}
			if err := tx.Create(student).Error; err != nil {
				return fmt.Errorf("seed student: %w", err)
			}
		}

		sessions := []model.Session{
			{CourseID: course.ID, SubjectID: &subject.ID, TeacherID: teacher.ID,
				DayOfWeek: "MONDAY", StartTime: "09:00", EndTime: "10:00", Room: "A-101"},
			{CourseID: course.ID, SubjectID: &subject.ID, TeacherID: teacher.ID,
				DayOfWeek: "WEDNESDAY", StartTime: "11:00", EndTime: "12:00", Room: "A-101"},
		}
		for i := range sessions {
			if err := tx.Create(&sessions[i]).Error; err != nil {
				return fmt.Errorf("seed session: %w", err)
			}
		}

		logger.Info("demo data seeded",
			zap.String("institution", inst.Name),
			zap.String("course", course.CourseName),
		)
		return nil
	})
}

func seedUser(tx *gorm.DB, username, password string, role model.Role, fullName string, institutionID int64) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username:      username,
		PasswordHash:  string(hash),
		Role:          role,
		FullName:      fullName,
		InstitutionID: &institutionID,
	}
	if err := tx.Create(user).Error; err != nil {
		return nil, fmt.Errorf("seed user %s: %w", username, err)
	}
	return user, nil
}
