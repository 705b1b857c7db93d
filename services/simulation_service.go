package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/luk14236/food-advice-agent/models"
)

const (
	// flushEveryIterations iterations (30 rows) per batch insert.
	flushEveryIterations = 10
	// maxRunsPerRequest caps one /simulate invocation.
	maxRunsPerRequest = 50

	simulationQuestion = "Please list your three favorite foods. Only food dishes (no drinks), can be very complex dishes."
)

type AnswerGenerator interface {
	GenerateAnswer(ctx context.Context, question string) (string, error)
}

type AnswerParser interface {
	ParseAnswer(ctx context.Context, answer string) ([]FavoriteFoodEntry, error)
}

// SimulationService drives generate→parse iterations and persists the
// results in batches.
type SimulationService struct {
	db        *gorm.DB
	generator AnswerGenerator
	parser    AnswerParser
}

func NewSimulationService(db *gorm.DB, generator AnswerGenerator, parser AnswerParser) *SimulationService {
	return &SimulationService{db: db, generator: generator, parser: parser}
}

type SimulationResult struct {
	Runs         int `json:"runs"`
	InsertedRows int `json:"inserted_rows"`
}

// Run performs up to maxRunsPerRequest sequential iterations. An iteration is
// atomic: its three rows are buffered together or not at all. A failed
// iteration is logged and skipped, so InsertedRows may be below 3*Runs; a
// failed flush aborts the run.
func (s *SimulationService) Run(ctx context.Context, runs int) (*SimulationResult, error) {
	if runs <= 0 {
		return nil, fmt.Errorf("%w: 'runs' must be > 0", ErrInvalidArgument)
	}
	if runs > maxRunsPerRequest {
		runs = maxRunsPerRequest
	}

	buffer := make([]models.FavoriteFood, 0, flushEveryIterations*3)
	inserted := 0

	for i := 0; i < runs; i++ {
		rows, err := s.iterate(ctx)
		if err != nil {
			log.Printf("simulation: iteration %d/%d skipped: %v", i+1, runs, err)
		} else {
			buffer = append(buffer, rows...)
		}

		if (i+1)%flushEveryIterations == 0 || i == runs-1 {
			n, err := s.flush(ctx, buffer)
			if err != nil {
				return nil, err
			}
			inserted += n
			buffer = buffer[:0]
		}
	}

	return &SimulationResult{Runs: runs, InsertedRows: inserted}, nil
}

// iterate runs one generate→parse cycle and tags the three entries with a
// fresh user id.
func (s *SimulationService) iterate(ctx context.Context) ([]models.FavoriteFood, error) {
	answer, err := s.generator.GenerateAnswer(ctx, simulationQuestion)
	if err != nil {
		return nil, err
	}
	entries, err := s.parser.ParseAnswer(ctx, answer)
	if err != nil {
		return nil, err
	}

	userID := uuid.NewString()
	rows := make([]models.FavoriteFood, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, models.FavoriteFood{
			UserID:              userID,
			Name:                e.Name,
			PossibleIngredients: datatypes.JSONSlice[string](e.PossibleIngredients),
			Diet:                e.Diet,
		})
	}
	return rows, nil
}

func (s *SimulationService) flush(ctx context.Context, batch []models.FavoriteFood) (int, error) {
	if len(batch) == 0 {
		return 0, nil
	}
	if err := s.db.WithContext(ctx).Create(&batch).Error; err != nil {
		return 0, fmt.Errorf("%w: batch insert of %d rows failed: %v", ErrStore, len(batch), err)
	}
	return len(batch), nil
}
