package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gigcampus/internal/models/db_models"
	"gigcampus/internal/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	// A pooled :memory: connection would be a different empty database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&db_models.User{},
		&db_models.Project{},
		&db_models.Application{},
		&db_models.Payment{},
		&db_models.Escrow{},
		&db_models.Withdrawal{},
		&db_models.LedgerEntry{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

type fixture struct {
	db          *gorm.DB
	users       repositories.UserRepository
	payments    repositories.PaymentRepository
	escrows     repositories.EscrowRepository
	withdrawals repositories.WithdrawalRepository
	ledger      repositories.LedgerRepository
	projects    repositories.ProjectRepository
	apps        repositories.ApplicationRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	return &fixture{
		db:          db,
		users:       repositories.NewUserRepository(db),
		payments:    repositories.NewPaymentRepository(db),
		escrows:     repositories.NewEscrowRepository(db),
		withdrawals: repositories.NewWithdrawalRepository(db),
		ledger:      repositories.NewLedgerRepository(db),
		projects:    repositories.NewProjectRepository(db),
		apps:        repositories.NewApplicationRepository(db),
	}
}

func (f *fixture) seedUser(t *testing.T, userType db_models.UserType, balance int64) *db_models.User {
	t.Helper()
	user := &db_models.User{
		ExternalUID:      uuid.NewString(),
		Email:            uuid.NewString() + "@example.com",
		Name:             "Test User",
		UserType:         userType,
		AvailableBalance: balance,
		IsActive:         true,
	}
	if err := f.users.Insert(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func (f *fixture) seedProject(t *testing.T, clientID uuid.UUID, status db_models.ProjectStatus) *db_models.Project {
	t.Helper()
	project := &db_models.Project{
		Title:       "Landing page",
		Description: "Build a landing page",
		BudgetMin:   5000,
		BudgetMax:   15000,
		Currency:    "INR",
		Category:    "Web Development",
		Duration:    "2 weeks",
		ClientID:    clientID,
		Status:      status,
	}
	if err := f.projects.Insert(context.Background(), project); err != nil {
		t.Fatalf("seed project: %v", err)
	}
	return project
}

func (f *fixture) seedEscrow(t *testing.T, projectID, payerID, payeeID, paymentID uuid.UUID, total, fee, earnings int64) *db_models.Escrow {
	t.Helper()
	escrow := &db_models.Escrow{
		ProjectID:     projectID,
		PayerID:       payerID,
		PayeeID:       payeeID,
		PaymentID:     paymentID,
		TotalAmount:   total,
		PlatformFee:   fee,
		PayeeEarnings: earnings,
		Status:        db_models.EscrowStatusHeld,
	}
	if err := f.db.Create(escrow).Error; err != nil {
		t.Fatalf("seed escrow: %v", err)
	}
	return escrow
}
