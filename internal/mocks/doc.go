// Package mocks provides centralized mock implementations of the service
// interfaces for handler tests.
//
// Each mock has one function field per interface method. A nil field falls
// back to the mock's default values and DefaultError:
//
//	svc := &mocks.MockWorkoutService{
//	    GetWorkoutFn: func(ctx context.Context, id int64) (*domain.Workout, error) {
//	        return nil, store.ErrWorkoutNotFound
//	    },
//	}
package mocks
