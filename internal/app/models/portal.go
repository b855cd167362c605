package models

import "time"

// Grade is one course result on a student's transcript.
type Grade struct {
	ID           int64    `json:"id" db:"id"`
	StudentID    int64    `json:"studentId" db:"student_id"`
	CourseCode   string   `json:"courseCode" db:"course_code" example:"PHAR301"`
	CourseNameAr string   `json:"courseNameAr" db:"course_name_ar"`
	CourseNameEn string   `json:"courseNameEn,omitempty" db:"course_name_en"`
	AcademicYear string   `json:"academicYear" db:"academic_year" example:"2024-2025"`
	Semester     Semester `json:"semester" db:"semester"`
	CreditHours  int      `json:"creditHours" db:"credit_hours"`
	Coursework   float64  `json:"coursework" db:"coursework"`
	Midterm      float64  `json:"midterm" db:"midterm"`
	Final        float64  `json:"final" db:"final"`
	Total        float64  `json:"total" db:"total"`
	LetterGrade  string   `json:"letterGrade" db:"letter_grade" example:"A"`
	GradePoints  float64  `json:"gradePoints" db:"grade_points" example:"3.75"`
}

// ScheduleEntry is one weekly lecture slot for a program level.
type ScheduleEntry struct {
	ID               int64    `json:"id" db:"id"`
	ProgramKey       string   `json:"programKey" db:"program_key"`
	Level            int      `json:"level" db:"level"`
	Semester         Semester `json:"semester" db:"semester"`
	DayOfWeek        int      `json:"dayOfWeek" db:"day_of_week" example:"0"` // 0 = Sunday, teaching week starts Sunday
	StartTime        string   `json:"startTime" db:"start_time" example:"08:00"`
	EndTime          string   `json:"endTime" db:"end_time" example:"09:30"`
	CourseCode       string   `json:"courseCode" db:"course_code"`
	CourseNameAr     string   `json:"courseNameAr" db:"course_name_ar"`
	InstructorNameAr string   `json:"instructorNameAr" db:"instructor_name_ar"`
	Room             string   `json:"room" db:"room" example:"B204"`
}

// DocumentStatus tracks the review state of a student document.
type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "PENDING"
	DocumentApproved DocumentStatus = "APPROVED"
	DocumentRejected DocumentStatus = "REJECTED"
)

// StudentDocument is an uploaded or issued document in a student's file.
type StudentDocument struct {
	ID         int64          `json:"id" db:"id"`
	StudentID  int64          `json:"studentId" db:"student_id"`
	TitleAr    string         `json:"titleAr" db:"title_ar"`
	TitleEn    string         `json:"titleEn,omitempty" db:"title_en"`
	DocType    string         `json:"docType" db:"doc_type" example:"TRANSCRIPT"`
	FileURL    string         `json:"fileUrl" db:"file_url"`
	Status     DocumentStatus `json:"status" db:"status"`
	UploadedAt time.Time      `json:"uploadedAt" db:"uploaded_at"`
}

// PaymentStatus tracks whether a fee record has been settled.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentOverdue PaymentStatus = "OVERDUE"
)

// PaymentRecord is one tuition or service fee entry on a student account.
type PaymentRecord struct {
	ID            int64         `json:"id" db:"id"`
	StudentID     int64         `json:"studentId" db:"student_id"`
	DescriptionAr string        `json:"descriptionAr" db:"description_ar"`
	Amount        float64       `json:"amount" db:"amount"`
	Currency      string        `json:"currency" db:"currency" example:"YER"`
	DueDate       *time.Time    `json:"dueDate,omitempty" db:"due_date"`
	PaidAt        *time.Time    `json:"paidAt,omitempty" db:"paid_at"`
	Status        PaymentStatus `json:"status" db:"status"`
	ReceiptNumber string        `json:"receiptNumber,omitempty" db:"receipt_number"`
}

// Notification is a portal message addressed to one student.
type Notification struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	TitleAr   string    `json:"titleAr" db:"title_ar"`
	BodyAr    string    `json:"bodyAr" db:"body_ar"`
	Type      string    `json:"type" db:"type" example:"ACADEMIC"`
	IsRead    bool      `json:"isRead" db:"is_read"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
