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

const workoutService = "workout"

// WorkoutService provides workout-related operations, including the
// workout exercises that link workouts to exercises.
type WorkoutService interface {
	// ListWorkouts returns every workout ordered by ID, each with its
	// workout exercises and their exercises.
	ListWorkouts(ctx context.Context) ([]domain.Workout, error)

	// GetWorkout returns one workout with its workout exercises.
	// Returns store.ErrWorkoutNotFound if it does not exist.
	GetWorkout(ctx context.Context, id int64) (*domain.Workout, error)

	// CreateWorkout validates the input and stores a new workout.
	CreateWorkout(ctx context.Context, in domain.WorkoutInput) (*domain.Workout, error)

	// DeleteWorkout removes a workout together with its workout exercises.
	DeleteWorkout(ctx context.Context, id int64) error

	// AddExerciseToWorkout records an exercise within a workout. The workout
	// is looked up first, then the exercise, and only then is the input
	// validated, so a missing parent is reported before any payload problem.
	AddExerciseToWorkout(
		ctx context.Context,
		workoutID, exerciseID int64,
		in domain.WorkoutExerciseInput,
	) (*domain.WorkoutExercise, error)

	// GetWorkoutExercise returns one workout exercise with its exercise.
	GetWorkoutExercise(ctx context.Context, id int64) (*domain.WorkoutExercise, error)

	// DeleteWorkoutExercise removes a single workout exercise.
	DeleteWorkoutExercise(ctx context.Context, id int64) error
}

// workoutServiceImpl implements the WorkoutService interface
type workoutServiceImpl struct {
	db               *sql.DB
	workouts         store.WorkoutStore
	exercises        store.ExerciseStore
	workoutExercises store.WorkoutExerciseStore
	logger           *slog.Logger
}

// NewWorkoutService creates a new WorkoutService
// It returns an error if any of the required dependencies are nil.
func NewWorkoutService(
	db *sql.DB,
	workouts store.WorkoutStore,
	exercises store.ExerciseStore,
	workoutExercises store.WorkoutExerciseStore,
	logger *slog.Logger,
) (WorkoutService, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}
	if workouts == nil || exercises == nil || workoutExercises == nil {
		return nil, errors.New("workout, exercise and workout exercise stores are required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &workoutServiceImpl{
		db:               db,
		workouts:         workouts,
		exercises:        exercises,
		workoutExercises: workoutExercises,
		logger:           logger.With(slog.String("component", "workout_service")),
	}, nil
}

// ListWorkouts implements WorkoutService.ListWorkouts
func (s *workoutServiceImpl) ListWorkouts(ctx context.Context) ([]domain.Workout, error) {
	var workouts []domain.Workout
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		workouts, err = s.workouts.WithTx(tx).List(ctx)
		if err != nil {
			return err
		}
		items, err := s.workoutExercises.WithTx(tx).ListAll(ctx)
		if err != nil {
			return err
		}

		byWorkout := make(map[int64][]domain.WorkoutExercise, len(workouts))
		for _, we := range items {
			byWorkout[we.WorkoutID] = append(byWorkout[we.WorkoutID], we)
		}
		for i := range workouts {
			if nested, ok := byWorkout[workouts[i].ID]; ok {
				workouts[i].WorkoutExercises = nested
			}
		}
		return nil
	})
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list workouts",
			slog.String("error", err.Error()))
		return nil, wrapError(workoutService, "list_workouts", err)
	}
	return workouts, nil
}

// GetWorkout implements WorkoutService.GetWorkout
func (s *workoutServiceImpl) GetWorkout(ctx context.Context, id int64) (*domain.Workout, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("retrieving workout", slog.Int64("workout_id", id))

	var workout *domain.Workout
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		w, err := s.workouts.WithTx(tx).GetByID(ctx, id)
		if err != nil {
			return err
		}
		items, err := s.workoutExercises.WithTx(tx).ListByWorkout(ctx, id)
		if err != nil {
			return err
		}
		w.WorkoutExercises = items
		workout = w
		return nil
	})
	if err != nil {
		if !store.IsNotFoundError(err) {
			log.Error("failed to retrieve workout",
				slog.String("error", err.Error()),
				slog.Int64("workout_id", id))
		}
		return nil, wrapError(workoutService, "get_workout", err)
	}
	return workout, nil
}

// CreateWorkout implements WorkoutService.CreateWorkout
func (s *workoutServiceImpl) CreateWorkout(ctx context.Context, in domain.WorkoutInput) (*domain.Workout, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var created *domain.Workout
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		workout, err := domain.NewWorkout(in)
		if err != nil {
			return err
		}
		if err := s.workouts.WithTx(tx).Create(ctx, workout); err != nil {
			return err
		}
		created = workout
		return nil
	})
	if err != nil {
		if isExpected(err) {
			log.Debug("workout rejected", slog.String("error", err.Error()))
		} else {
			log.Error("failed to create workout", slog.String("error", err.Error()))
		}
		return nil, wrapError(workoutService, "create_workout", err)
	}
	return created, nil
}

// DeleteWorkout implements WorkoutService.DeleteWorkout
func (s *workoutServiceImpl) DeleteWorkout(ctx context.Context, id int64) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.workouts.WithTx(tx).Delete(ctx, id)
	})
	if err != nil && !isExpected(err) {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to delete workout",
			slog.String("error", err.Error()),
			slog.Int64("workout_id", id))
	}
	return wrapError(workoutService, "delete_workout", err)
}

// AddExerciseToWorkout implements WorkoutService.AddExerciseToWorkout
func (s *workoutServiceImpl) AddExerciseToWorkout(
	ctx context.Context,
	workoutID, exerciseID int64,
	in domain.WorkoutExerciseInput,
) (*domain.WorkoutExercise, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(
		slog.Int64("workout_id", workoutID),
		slog.Int64("exercise_id", exerciseID))

	var created *domain.WorkoutExercise
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := s.workouts.WithTx(tx).GetByID(ctx, workoutID); err != nil {
			return err
		}
		exercise, err := s.exercises.WithTx(tx).GetByID(ctx, exerciseID)
		if err != nil {
			return err
		}

		we, err := domain.NewWorkoutExercise(workoutID, exerciseID, in)
		if err != nil {
			return err
		}
		if err := s.workoutExercises.WithTx(tx).Create(ctx, we); err != nil {
			return err
		}
		we.Exercise = exercise
		created = we
		return nil
	})
	if err != nil {
		if isExpected(err) {
			log.Debug("workout exercise rejected", slog.String("error", err.Error()))
		} else {
			log.Error("failed to add exercise to workout", slog.String("error", err.Error()))
		}
		return nil, wrapError(workoutService, "add_exercise_to_workout", err)
	}

	log.Info("exercise added to workout", slog.Int64("workout_exercise_id", created.ID))
	return created, nil
}

// GetWorkoutExercise implements WorkoutService.GetWorkoutExercise
func (s *workoutServiceImpl) GetWorkoutExercise(ctx context.Context, id int64) (*domain.WorkoutExercise, error) {
	we, err := s.workoutExercises.GetByID(ctx, id)
	if err != nil {
		if !store.IsNotFoundError(err) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to retrieve workout exercise",
				slog.String("error", err.Error()),
				slog.Int64("workout_exercise_id", id))
		}
		return nil, wrapError(workoutService, "get_workout_exercise", err)
	}
	return we, nil
}

// DeleteWorkoutExercise implements WorkoutService.DeleteWorkoutExercise
func (s *workoutServiceImpl) DeleteWorkoutExercise(ctx context.Context, id int64) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.workoutExercises.WithTx(tx).Delete(ctx, id)
	})
	if err != nil && !isExpected(err) {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to delete workout exercise",
			slog.String("error", err.Error()),
			slog.Int64("workout_exercise_id", id))
	}
	return wrapError(workoutService, "delete_workout_exercise", err)
}
