package model

import "time"

// AttendanceStatus is the closed set of per-session attendance states.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "PRESENT"
	StatusAbsent  AttendanceStatus = "ABSENT"
	StatusLate    AttendanceStatus = "LATE"
	StatusExcused AttendanceStatus = "EXCUSED"
)

// Valid reports whether s is one of the four recognized statuses.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusExcused:
		return true
	}
	return false
}

// Attendance is the authoritative record of one student for one session
// on one date, mapped to attendance. The composite unique index on
// (student_id, session_id, date) carries the core invariant: re-marking
// the same tuple updates the row in place, it never creates a second one.
type Attendance struct {
	ID        int64            `gorm:"column:attendance_id;primaryKey;autoIncrement"          json:"attendance_id"`
	StudentID int64            `gorm:"column:student_id;not null;uniqueIndex:idx_attendance_key" json:"student_id"`
	SessionID int64            `gorm:"column:session_id;not null;uniqueIndex:idx_attendance_key" json:"session_id"`
	Date      time.Time        `gorm:"type:date;not null;uniqueIndex:idx_attendance_key"      json:"date"`
	Status    AttendanceStatus `gorm:"type:varchar(10);not null"                              json:"status"`
	MarkedBy  int64            `gorm:"column:marked_by;not null"                              json:"marked_by"`
	MarkedAt  time.Time        `gorm:"not null;default:CURRENT_TIMESTAMP"                     json:"marked_at"`
	Remarks   string           `gorm:"type:varchar(255)"                                      json:"remarks"`

	Student *Student `gorm:"foreignKey:StudentID;references:ID" json:"student,omitempty"`
	Session *Session `gorm:"foreignKey:SessionID;references:ID" json:"session,omitempty"`
	Marker  *User    `gorm:"foreignKey:MarkedBy;references:ID"  json:"marker,omitempty"`
}

// TableName sets the table name.
func (Attendance) TableName() string { return "attendance" }
