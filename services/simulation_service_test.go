package services

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/luk14236/food-advice-agent/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.FavoriteFood{}))
	return db
}

type stubGenerator struct {
	calls int
}

func (g *stubGenerator) GenerateAnswer(ctx context.Context, question string) (string, error) {
	g.calls++
	return "Feijoada; Sushi; Bibimbap", nil
}

// stubParser fails on the call numbers listed in failOn (1-based).
type stubParser struct {
	calls  int
	failOn map[int]bool
}

func (p *stubParser) ParseAnswer(ctx context.Context, answer string) ([]FavoriteFoodEntry, error) {
	p.calls++
	if p.failOn[p.calls] {
		return nil, fmt.Errorf("%w: injected failure", ErrParse)
	}
	return []FavoriteFoodEntry{
		{Name: "Feijoada", PossibleIngredients: []string{"black beans", "pork", "rice"}, Diet: models.DietNormal},
		{Name: "Sushi", PossibleIngredients: []string{"rice", "salmon", "nori"}, Diet: models.DietNormal},
		{Name: "Bibimbap", PossibleIngredients: []string{"rice", "spinach", "egg"}, Diet: models.DietVegetarian},
	}, nil
}

func runSimulation(t *testing.T, db *gorm.DB, runs int) (*SimulationResult, error) {
	t.Helper()
	svc := NewSimulationService(db, &stubGenerator{}, &stubParser{})
	return svc.Run(context.Background(), runs)
}

func TestRunInsertsThreeRowsPerIteration(t *testing.T) {
	db := newTestDB(t)

	result, err := runSimulation(t, db, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Runs)
	assert.Equal(t, 12, result.InsertedRows)

	var all []models.FavoriteFood
	require.NoError(t, db.Find(&all).Error)
	require.Len(t, all, 12)

	perUser := map[string]int{}
	for _, f := range all {
		perUser[f.UserID]++
		assert.NotEmpty(t, f.Name)
		assert.NotEmpty(t, f.PossibleIngredients)
		assert.True(t, f.Diet.Valid())
	}
	assert.Len(t, perUser, 4, "one user id per iteration")
	for userID, n := range perUser {
		assert.Equal(t, 3, n, "user %s should own exactly 3 rows", userID)
	}
}

func TestRunFlushesInBatchesOfTenIterations(t *testing.T) {
	db := newTestDB(t)

	var batchSizes []int
	require.NoError(t, db.Callback().Create().After("gorm:create").
		Register("test:capture_batch_size", func(tx *gorm.DB) {
			if tx.Statement.Table == "favorite_foods" && tx.Statement.ReflectValue.Kind() == reflect.Slice {
				batchSizes = append(batchSizes, tx.Statement.ReflectValue.Len())
			}
		}))

	result, err := runSimulation(t, db, 12)
	require.NoError(t, err)
	assert.Equal(t, 36, result.InsertedRows)
	assert.Equal(t, []int{30, 6}, batchSizes, "10 iterations per flush, remainder at the end")
}

func TestRunSkipsFailedIterations(t *testing.T) {
	db := newTestDB(t)
	parser := &stubParser{failOn: map[int]bool{2: true}}
	svc := NewSimulationService(db, &stubGenerator{}, parser)

	result, err := svc.Run(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Runs)
	assert.Equal(t, 6, result.InsertedRows, "failed iteration contributes no rows")

	var count int64
	require.NoError(t, db.Model(&models.FavoriteFood{}).Count(&count).Error)
	assert.EqualValues(t, 6, count)
}

func TestRunRejectsNonPositiveRuns(t *testing.T) {
	db := newTestDB(t)
	gen := &stubGenerator{}
	svc := NewSimulationService(db, gen, &stubParser{})

	for _, runs := range []int{0, -3} {
		_, err := svc.Run(context.Background(), runs)
		require.ErrorIs(t, err, ErrInvalidArgument)
	}
	assert.Equal(t, 0, gen.calls, "no side effects on invalid input")
}

func TestRunCapsRunsPerRequest(t *testing.T) {
	db := newTestDB(t)

	result, err := runSimulation(t, db, 500)
	require.NoError(t, err)
	assert.Equal(t, maxRunsPerRequest, result.Runs)
	assert.Equal(t, maxRunsPerRequest*3, result.InsertedRows)
}

func TestRunFailsWhenFlushFails(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.FavoriteFood{}))

	_, err := runSimulation(t, db, 2)
	require.ErrorIs(t, err, ErrStore)
}
