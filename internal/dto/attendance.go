package dto

// AttendanceEntry is one student's status within a mark batch.
type AttendanceEntry struct {
	StudentID int64  `json:"student_id" binding:"required"`
	Status    string `json:"status"     binding:"required"`
	Remarks   string `json:"remarks"`
}

// MarkAttendanceRequest marks a batch of students for one session/date.
// Date uses the ISO calendar form 2006-01-02.
type MarkAttendanceRequest struct {
	SessionID int64             `json:"session_id" binding:"required"`
	Date      string            `json:"date"       binding:"required,datetime=2006-01-02"`
	Entries   []AttendanceEntry `json:"entries"    binding:"required,min=1,dive"`
}

// StudentAttendanceStats is the derived per-student summary for a course.
// Not persisted; recomputed on demand.
type StudentAttendanceStats struct {
	StudentID            int64   `json:"student_id"`
	RollNumber           string  `json:"roll_number"`
	FullName             string  `json:"full_name"`
	TotalClasses         int64   `json:"total_classes"`
	PresentCount         int64   `json:"present_count"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}
