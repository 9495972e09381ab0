package model

// Session is a scheduled class meeting for a course, mapped to sessions.
// Read-only from the attendance core's perspective.
type Session struct {
	ID        int64  `gorm:"column:session_id;primaryKey;autoIncrement" json:"session_id"`
	CourseID  int64  `gorm:"column:course_id;not null"                  json:"course_id"`
	SubjectID *int64 `gorm:"column:subject_id"                          json:"subject_id,omitempty"`
	TeacherID int64  `gorm:"column:teacher_id;not null"                 json:"teacher_id"`
	DayOfWeek string `gorm:"type:varchar(10);not null"                  json:"day_of_week"` // MONDAY .. SUNDAY
	StartTime string `gorm:"type:varchar(5);not null"                   json:"start_time"`  // HH:MM
	EndTime   string `gorm:"type:varchar(5);not null"                   json:"end_time"`    // HH:MM
	Room      string `gorm:"type:varchar(50)"                           json:"room"`

	Course  *Course  `gorm:"foreignKey:CourseID;references:ID"  json:"course,omitempty"`
	Subject *Subject `gorm:"foreignKey:SubjectID;references:ID" json:"subject,omitempty"`
	Teacher *User    `gorm:"foreignKey:TeacherID;references:ID" json:"teacher,omitempty"`
}

// TableName sets the table name.
func (Session) TableName() string { return "sessions" }
