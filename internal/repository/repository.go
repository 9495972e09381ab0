package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface.
type Repository struct {
	User        UserRepository
	Institution InstitutionRepository
	Course      CourseRepository
	Subject     SubjectRepository
	Student     StudentRepository
	Session     SessionRepository
	Attendance  AttendanceRepository
}

// NewRepository wires the gorm-backed implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:        NewUserRepo(db),
		Institution: NewInstitutionRepo(db),
		Course:      NewCourseRepo(db),
		Subject:     NewSubjectRepo(db),
		Student:     NewStudentRepo(db),
		Session:     NewSessionRepo(db),
		Attendance:  NewAttendanceRepo(db),
	}
}
