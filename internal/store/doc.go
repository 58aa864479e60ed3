// Package store defines interfaces for data persistence operations on
// exercises, workouts and the workout-exercise join. These interfaces keep the
// service layer independent of the concrete SQL dialect, and the package also
// provides the shared error vocabulary and transaction helper that every
// implementation uses.
package store
