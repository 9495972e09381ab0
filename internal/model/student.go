package model

// Student is an enrolled learner, mapped to students.
// The roll number is unique within an institution.
type Student struct {
	ID            int64  `gorm:"column:student_id;primaryKey;autoIncrement"                  json:"student_id"`
	RollNumber    string `gorm:"type:varchar(50);not null;uniqueIndex:idx_students_roll_institution" json:"roll_number"`
	UserID        *int64 `gorm:"column:user_id"                                              json:"user_id,omitempty"`
	FirstName     string `gorm:"type:varchar(100);not null"                                  json:"first_name"`
	LastName      string `gorm:"type:varchar(100)"                                           json:"last_name"`
	CourseID      int64  `gorm:"column:course_id;not null"                                   json:"course_id"`
	InstitutionID int64  `gorm:"column:institution_id;not null;uniqueIndex:idx_students_roll_institution" json:"institution_id"`
	Email         string `gorm:"type:varchar(255)"                                           json:"email"`

	User        *User        `gorm:"foreignKey:UserID;references:ID"        json:"user,omitempty"`
	Course      *Course      `gorm:"foreignKey:CourseID;references:ID"      json:"course,omitempty"`
	Institution *Institution `gorm:"foreignKey:InstitutionID;references:ID" json:"institution,omitempty"`
}

// TableName sets the table name.
func (Student) TableName() string { return "students" }

// FullName joins first and last name, omitting an empty last name.
func (s *Student) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}
