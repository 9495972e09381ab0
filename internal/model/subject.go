package model

// Subject is a taught unit within an institution, mapped to subjects.
type Subject struct {
	ID            int64  `gorm:"column:subject_id;primaryKey;autoIncrement" json:"subject_id"`
	SubjectName   string `gorm:"type:varchar(255);not null"                 json:"subject_name"`
	SubjectCode   string `gorm:"type:varchar(50)"                           json:"subject_code"`
	InstitutionID int64  `gorm:"column:institution_id;not null"             json:"institution_id"`

	Institution *Institution `gorm:"foreignKey:InstitutionID;references:ID" json:"institution,omitempty"`
}

// TableName sets the table name.
func (Subject) TableName() string { return "subjects" }
