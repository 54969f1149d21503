package testutil

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/booksmart-api/internal/db"
	"github.com/BruksfildServices01/booksmart-api/internal/models"
)

// NewDB opens a private in-memory sqlite database with the full schema.
// A single connection keeps every query on the same in-memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, pragma := range []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA case_sensitive_like = ON",
	} {
		if err := gdb.Exec(pragma).Error; err != nil {
			t.Fatalf("%s: %v", pragma, err)
		}
	}

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

// ------------------------------------------------------
// Fixtures
// ------------------------------------------------------

func CreateUser(t *testing.T, gdb *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	u := &models.User{
		FirstName:    "Test",
		LastName:     "User",
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func CreateBusiness(t *testing.T, gdb *gorm.DB, ownerID uint, name string) *models.Business {
	t.Helper()

	b := &models.Business{
		Name:         name,
		Address:      "1 Main Street",
		Description:  name + " description",
		WorkingHours: "Mon-Fri 9-17",
		City:         "Springfield",
		OwnerID:      ownerID,
	}
	if err := gdb.Create(b).Error; err != nil {
		t.Fatalf("create business: %v", err)
	}
	return b
}

func CreateEmployee(t *testing.T, gdb *gorm.DB, businessID uint, name string) *models.Employee {
	t.Helper()

	e := &models.Employee{
		Name:       name,
		Position:   "Stylist",
		BusinessID: businessID,
	}
	if err := gdb.Create(e).Error; err != nil {
		t.Fatalf("create employee: %v", err)
	}
	return e
}

func CreateServiceType(t *testing.T, gdb *gorm.DB, businessID uint, employeeID *uint, name string) *models.ServiceType {
	t.Helper()

	s := &models.ServiceType{
		Name:        name,
		Description: name,
		Price:       decimal.NewFromInt(25),
		BusinessID:  businessID,
		EmployeeID:  employeeID,
	}
	if err := gdb.Create(s).Error; err != nil {
		t.Fatalf("create service type: %v", err)
	}
	return s
}

func CreateAppointment(t *testing.T, gdb *gorm.DB, userID, serviceID, employeeID uint, at time.Time) *models.Appointment {
	t.Helper()

	ap := &models.Appointment{
		UserID:          userID,
		ServiceTypeID:   serviceID,
		EmployeeID:      employeeID,
		AppointmentTime: at.UTC(),
		Status:          "SCHEDULED",
	}
	if err := gdb.Create(ap).Error; err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	return ap
}

func Count(t *testing.T, gdb *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()

	var n int64
	q := gdb.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
