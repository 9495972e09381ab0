package dto

// ── directory CRUD payloads ──

// CreateInstitutionRequest creates an institution.
type CreateInstitutionRequest struct {
	Name    string `json:"name"    binding:"required"`
	Address string `json:"address"`
}

// CreateCourseRequest creates a course.
type CreateCourseRequest struct {
	CourseName    string `json:"course_name"    binding:"required"`
	InstitutionID int64  `json:"institution_id" binding:"required"`
	Description   string `json:"description"`
}

// UpdateCourseRequest updates a course in place.
type UpdateCourseRequest struct {
	CourseName  string `json:"course_name" binding:"required"`
	Description string `json:"description"`
}

// CreateSubjectRequest creates a subject.
type CreateSubjectRequest struct {
	SubjectName   string `json:"subject_name"   binding:"required"`
	SubjectCode   string `json:"subject_code"`
	InstitutionID int64  `json:"institution_id" binding:"required"`
}

// CreateStudentRequest enrols a student.
type CreateStudentRequest struct {
	RollNumber    string `json:"roll_number"    binding:"required"`
	FirstName     string `json:"first_name"     binding:"required"`
	LastName      string `json:"last_name"`
	CourseID      int64  `json:"course_id"      binding:"required"`
	InstitutionID int64  `json:"institution_id" binding:"required"`
	Email         string `json:"email"          binding:"omitempty,email"`
}

// UpdateStudentRequest updates a student in place.
type UpdateStudentRequest struct {
	RollNumber string `json:"roll_number" binding:"required"`
	FirstName  string `json:"first_name"  binding:"required"`
	LastName   string `json:"last_name"`
	CourseID   int64  `json:"course_id"   binding:"required"`
	Email      string `json:"email"       binding:"omitempty,email"`
}

// CreateSessionRequest schedules a class meeting.
type CreateSessionRequest struct {
	CourseID  int64  `json:"course_id"   binding:"required"`
	SubjectID *int64 `json:"subject_id"`
	TeacherID int64  `json:"teacher_id"  binding:"required"`
	DayOfWeek string `json:"day_of_week" binding:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	StartTime string `json:"start_time"  binding:"required,datetime=15:04"`
	EndTime   string `json:"end_time"    binding:"required,datetime=15:04"`
	Room      string `json:"room"`
}
