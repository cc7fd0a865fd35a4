// Package models defines the database-backed domain entities.
package models

import "time"

// Role defines a user's role in the portal
type Role string

const (
	RoleStudent  Role = "student"
	RoleLecturer Role = "lecturer"
	// RolePRL is a Principal Lecturer, scoped to one faculty
	RolePRL Role = "prl"
	// RolePL is a Program Leader managing courses and classes
	RolePL Role = "pl"
)

// AllRoles lists every recognised role, used to validate registration input.
var AllRoles = []Role{RoleStudent, RoleLecturer, RolePRL, RolePL}

// Valid reports whether r is a recognised role.
func (r Role) Valid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User defines the user model based on the 'users' table.
// Role is immutable after registration; there is no role-change path.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	FacultyID    *int64    `json:"facultyId,omitempty" db:"faculty_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Faculty defines the faculty model based on the 'faculties' table
type Faculty struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Course belongs to exactly one faculty and owns zero or more classes
type Course struct {
	ID          int64  `json:"id" db:"id"`
	FacultyID   int64  `json:"facultyId" db:"faculty_id"`
	Name        string `json:"name" db:"name"`
	Code        string `json:"code" db:"code"`
	FacultyName string `json:"facultyName,omitempty" db:"-"`
}

// Class is a scheduled offering of a course, optionally assigned a lecturer.
// The registered-student count is never stored; it is always computed live
// from enrolments.
type Class struct {
	ID            int64   `json:"id" db:"id"`
	CourseID      int64   `json:"courseId" db:"course_id"`
	ClassName     string  `json:"className" db:"class_name"`
	LecturerID    *int64  `json:"lecturerId,omitempty" db:"lecturer_id"`
	Venue         *string `json:"venue,omitempty" db:"venue"`
	ScheduledTime *string `json:"scheduledTime,omitempty" db:"scheduled_time"`
}

// Enrolment links one student to one class; the pair is unique
type Enrolment struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	ClassID   int64     `json:"classId" db:"class_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// LectureReport is a per-session record submitted by a lecturer.
// Reports are immutable once created; they are removed only by cascading
// class deletion.
type LectureReport struct {
	ID                    int64     `json:"id" db:"id"`
	ClassID               int64     `json:"classId" db:"class_id"`
	SubmittedBy           int64     `json:"submittedBy" db:"submitted_by"`
	Week                  int       `json:"week" db:"week"`
	Date                  time.Time `json:"date" db:"date"`
	Topic                 string    `json:"topic" db:"topic"`
	LearningOutcomes      string    `json:"learningOutcomes" db:"learning_outcomes"`
	Recommendations       string    `json:"recommendations" db:"recommendations"`
	ActualStudentsPresent int       `json:"actualStudentsPresent" db:"actual_students_present"`
	CreatedAt             time.Time `json:"createdAt" db:"created_at"`
}

// AttendanceStatus is a student's self-reported presence for a report
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
)

// Valid reports whether s is a recognised attendance status.
func (s AttendanceStatus) Valid() bool {
	return s == AttendancePresent || s == AttendanceAbsent
}

// AttendanceMark links one student to one lecture report. The
// (report, student) pair is unique; a second mark overwrites the first.
type AttendanceMark struct {
	ID        int64            `json:"id" db:"id"`
	ReportID  int64            `json:"reportId" db:"report_id"`
	StudentID int64            `json:"studentId" db:"student_id"`
	Status    AttendanceStatus `json:"status" db:"status"`
}

// Rating is a student's 1-5 score for a class, with an optional comment
type Rating struct {
	ID        int64     `json:"id" db:"id"`
	ClassID   int64     `json:"classId" db:"class_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   *string   `json:"comment,omitempty" db:"comment"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Feedback is a PRL's comment on a lecture report; at most one per
// (report, prl) pair, rejected (not overwritten) on a second attempt.
type Feedback struct {
	ID        int64     `json:"id" db:"id"`
	ReportID  int64     `json:"reportId" db:"report_id"`
	PRLID     int64     `json:"prlId" db:"prl_id"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
