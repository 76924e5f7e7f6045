package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"startup-compliance-be/internal/entity"
	"startup-compliance-be/internal/repository/specification"
	"startup-compliance-be/internal/repository/unitofwork"
	"startup-compliance-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.ChecklistRepository())
	assert.NotNil(t, uow.DocumentRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check Checklist Repository", func(t *testing.T) {
		count, err := uow.ChecklistRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Checklist count: %d", count)
	})

	t.Run("Check Compliance Alert Repository", func(t *testing.T) {
		count, err := uow.ComplianceAlertRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("ComplianceAlert count: %d", count)
	})
}

func TestChecklistUniqueNamePerOwner(t *testing.T) {
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)

	uow := unitofwork.NewRepositoryFactory(gormDB).NewUnitOfWork(context.Background())
	ctx := context.Background()
	userId := uuid.New()

	checklist := &entity.Checklist{Id: uuid.New(), UserId: userId, Name: "Integration Test Checklist"}
	require.NoError(t, uow.ChecklistRepository().Create(ctx, checklist))
	defer func() {
		_ = uow.ChecklistRepository().Delete(ctx, checklist.Id)
	}()

	// Second insert with the same (owner, name) must surface the unique
	// index violation as a typed error.
	dup := &entity.Checklist{Id: uuid.New(), UserId: userId, Name: "Integration Test Checklist"}
	err = uow.ChecklistRepository().Create(ctx, dup)
	assert.Error(t, err)

	found, err := uow.ChecklistRepository().FindOne(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.ByName{Name: "Integration Test Checklist"},
	)
	assert.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, checklist.Id, found.Id)
}
