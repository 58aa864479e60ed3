// Package service contains the application use cases for exercises,
// workouts and the workout exercises that link them.
//
// Every mutating operation runs inside store.RunInTransaction: input
// validation, parent existence checks and the write share one transaction,
// and any failure (including a panic) rolls the whole operation back.
// Services depend on the store interfaces, never on a concrete database.
package service
