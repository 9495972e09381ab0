package model

// Course is a programme students enrol in, mapped to courses.
type Course struct {
	ID            int64  `gorm:"column:course_id;primaryKey;autoIncrement" json:"course_id"`
	CourseName    string `gorm:"type:varchar(255);not null"                json:"course_name"`
	InstitutionID int64  `gorm:"column:institution_id;not null"            json:"institution_id"`
	Description   string `gorm:"type:varchar(500)"                         json:"description"`

	Institution *Institution `gorm:"foreignKey:InstitutionID;references:ID" json:"institution,omitempty"`
}

// TableName sets the table name.
func (Course) TableName() string { return "courses" }
