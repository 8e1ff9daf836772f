package history

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"config-diff/core/database"
	"config-diff/core/diff"
	"config-diff/feature/compare"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

// setupSQLite creates a migrated in-memory history store.
func setupSQLite(t *testing.T) *Service {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	svc := NewService(db, zap.NewNop())
	require.NoError(t, svc.Migrate())
	return svc
}

func sampleResult(id string, started time.Time) *compare.Result {
	help := "Database host"
	rows := []diff.Row{
		{File: "app.ini", Group: "db", Key: "host", Help: &help, Differs: true, Values: [][]string{{"1.1.1.1"}, {"2.2.2.2"}}},
		{File: "app.ini", Group: "db", Key: "port", Values: [][]string{{"5432"}, {"5432"}}},
		{File: "cache.ini", Group: diff.MissingMarker, Key: diff.SourceLabel(2), Differs: true, Values: [][]string{{}, {}}, Source: 2},
	}
	res := &compare.Result{
		RunID:      id,
		HelpFolder: "help",
		Folders:    []string{"a", "b"},
		Files: []compare.FileResult{
			{File: "app.ini", Rows: rows[:2], Summary: diff.Summarize(rows[:2])},
			{File: "cache.ini", Rows: rows[2:], Summary: diff.Summarize(rows[2:])},
		},
		StartedAt: started,
		Duration:  1500 * time.Millisecond,
	}
	for _, f := range res.Files {
		res.Summary.Add(f.Summary)
	}
	return res
}

func TestService_StoreAndGet(t *testing.T) {
	svc := setupSQLite(t)
	ctx := context.Background()

	res := sampleResult("run-1", time.Now())
	require.NoError(t, svc.Store(ctx, res, "result.csv"))

	run, err := svc.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "help", run.HelpFolder)
	assert.Equal(t, []string{"a", "b"}, run.FolderList())
	assert.Equal(t, "result.csv", run.ReportPath)
	assert.Equal(t, 2, run.Files)
	assert.Equal(t, 2, run.Keys)
	assert.Equal(t, 1, run.Differing)
	assert.Equal(t, 1, run.MissingSources)
	assert.Equal(t, int64(1500), run.DurationMs)
	require.Len(t, run.Rows, 3)

	for i, rec := range run.Rows {
		row, err := rec.Row()
		require.NoError(t, err)
		assert.Equal(t, res.Rows()[i], row)
	}
}

func TestService_GetUnknown(t *testing.T) {
	svc := setupSQLite(t)

	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestService_Recent(t *testing.T) {
	svc := setupSQLite(t)
	ctx := context.Background()
	base := time.Now()

	require.NoError(t, svc.Store(ctx, sampleResult("old", base.Add(-time.Hour)), "result.csv"))
	require.NoError(t, svc.Store(ctx, sampleResult("new", base), "result.csv"))

	runs, err := svc.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "new", runs[0].ID)
	assert.Equal(t, "old", runs[1].ID)
	assert.Empty(t, runs[0].Rows)

	runs, err = svc.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestService_StoreEmptyRun(t *testing.T) {
	svc := setupSQLite(t)
	res := &compare.Result{RunID: "empty", HelpFolder: "help", Folders: []string{"a", "b"}, StartedAt: time.Now()}

	require.NoError(t, svc.Store(context.Background(), res, "result.csv"))

	run, err := svc.Get(context.Background(), "empty")
	require.NoError(t, err)
	assert.Empty(t, run.Rows)
}

func TestService_Verify(t *testing.T) {
	t.Run("Migrated Schema Matches", func(t *testing.T) {
		svc := setupSQLite(t)

		report, err := svc.Verify()
		require.NoError(t, err)
		assert.Empty(t, report)
	})

	t.Run("Missing Tables", func(t *testing.T) {
		db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)

		report, err := NewService(db, zap.NewNop()).Verify()
		require.NoError(t, err)
		assert.Equal(t, RunColumns, report["comparison_runs"])
		assert.Equal(t, RowColumns, report["comparison_rows"])
	})
}

func TestService_StoreFailureRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `comparison_runs`").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := svc.Store(context.Background(), sampleResult("run-1", time.Now()), "result.csv")
	assert.ErrorContains(t, err, "failed to insert run")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler(t *testing.T) {
	svc := setupSQLite(t)
	require.NoError(t, svc.Store(context.Background(), sampleResult("run-1", time.Now()), "result.csv"))

	app := fiber.New()
	feature := NewFeature(svc)
	assert.Equal(t, "history", feature.Name())
	require.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))

	t.Run("Recent", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/history", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		var runs []Run
		require.NoError(t, json.Unmarshal(body, &runs))
		require.Len(t, runs, 1)
		assert.Equal(t, "run-1", runs[0].ID)
	})

	t.Run("Get", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/history/run-1", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		var run Run
		require.NoError(t, json.Unmarshal(body, &run))
		assert.Len(t, run.Rows, 3)
	})

	t.Run("Not Found", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/history/missing", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestFeature_DisabledWithoutService(t *testing.T) {
	assert.False(t, NewFeature(nil).IsEnabled())
}
