package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/platform/logger"
	"github.com/phrazzld/workout-api/internal/store"
)

const exerciseService = "exercise"

// ExerciseService provides exercise-related operations
type ExerciseService interface {
	// ListExercises returns every exercise ordered by ID.
	ListExercises(ctx context.Context) ([]domain.Exercise, error)

	// GetExercise returns an exercise with the distinct workouts it appears in.
	// Returns store.ErrExerciseNotFound if it does not exist.
	GetExercise(ctx context.Context, id int64) (*domain.ExerciseDetail, error)

	// CreateExercise validates the input and stores a new exercise.
	// Returns a *domain.ValidationError or store.ErrExerciseNameExists.
	CreateExercise(ctx context.Context, in domain.ExerciseInput) (*domain.Exercise, error)

	// DeleteExercise removes an exercise together with its workout exercises.
	// Returns store.ErrExerciseNotFound if it does not exist.
	DeleteExercise(ctx context.Context, id int64) error
}

// exerciseServiceImpl implements the ExerciseService interface
type exerciseServiceImpl struct {
	db        *sql.DB
	exercises store.ExerciseStore
	logger    *slog.Logger
}

// NewExerciseService creates a new ExerciseService
// It returns an error if any of the required dependencies are nil.
func NewExerciseService(db *sql.DB, exercises store.ExerciseStore, logger *slog.Logger) (ExerciseService, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}
	if exercises == nil {
		return nil, errors.New("exercise store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &exerciseServiceImpl{
		db:        db,
		exercises: exercises,
		logger:    logger.With(slog.String("component", "exercise_service")),
	}, nil
}

// ListExercises implements ExerciseService.ListExercises
func (s *exerciseServiceImpl) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	exercises, err := s.exercises.List(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list exercises",
			slog.String("error", err.Error()))
		return nil, wrapError(exerciseService, "list_exercises", err)
	}
	return exercises, nil
}

// GetExercise implements ExerciseService.GetExercise
// The exercise and its workouts are read in one transaction so the summary
// matches the exercise it is attached to.
func (s *exerciseServiceImpl) GetExercise(ctx context.Context, id int64) (*domain.ExerciseDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("retrieving exercise", slog.Int64("exercise_id", id))

	var detail *domain.ExerciseDetail
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txExercises := s.exercises.WithTx(tx)

		exercise, err := txExercises.GetByID(ctx, id)
		if err != nil {
			return err
		}
		workouts, err := txExercises.ListWorkouts(ctx, id)
		if err != nil {
			return err
		}

		detail = &domain.ExerciseDetail{Exercise: *exercise, Workouts: workouts}
		return nil
	})
	if err != nil {
		if !store.IsNotFoundError(err) {
			log.Error("failed to retrieve exercise",
				slog.String("error", err.Error()),
				slog.Int64("exercise_id", id))
		}
		return nil, wrapError(exerciseService, "get_exercise", err)
	}
	return detail, nil
}

// CreateExercise implements ExerciseService.CreateExercise
func (s *exerciseServiceImpl) CreateExercise(ctx context.Context, in domain.ExerciseInput) (*domain.Exercise, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var created *domain.Exercise
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		exercise, err := domain.NewExercise(in)
		if err != nil {
			return err
		}
		if err := s.exercises.WithTx(tx).Create(ctx, exercise); err != nil {
			return err
		}
		created = exercise
		return nil
	})
	if err != nil {
		if isExpected(err) {
			log.Debug("exercise rejected", slog.String("error", err.Error()))
		} else {
			log.Error("failed to create exercise", slog.String("error", err.Error()))
		}
		return nil, wrapError(exerciseService, "create_exercise", err)
	}
	return created, nil
}

// DeleteExercise implements ExerciseService.DeleteExercise
func (s *exerciseServiceImpl) DeleteExercise(ctx context.Context, id int64) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.exercises.WithTx(tx).Delete(ctx, id)
	})
	if err != nil && !isExpected(err) {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to delete exercise",
			slog.String("error", err.Error()),
			slog.Int64("exercise_id", id))
	}
	return wrapError(exerciseService, "delete_exercise", err)
}
