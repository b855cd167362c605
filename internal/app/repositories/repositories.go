package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	ProgramRepository      *ProgramRepository
	UserRepository         *UserRepository
	StudentRepository      *StudentRepository
	GradeRepository        *GradeRepository
	ScheduleRepository     *ScheduleRepository
	DocumentRepository     *DocumentRepository
	PaymentRepository      *PaymentRepository
	NotificationRepository *NotificationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ProgramRepository:      NewProgramRepository(db),
		UserRepository:         NewUserRepository(db),
		StudentRepository:      NewStudentRepository(db),
		GradeRepository:        NewGradeRepository(db),
		ScheduleRepository:     NewScheduleRepository(db),
		DocumentRepository:     NewDocumentRepository(db),
		PaymentRepository:      NewPaymentRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
