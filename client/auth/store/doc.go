// Package store defines the token store used by the authenticated transport.
//
// A store persists two string values, keyed `accessToken` and `refreshToken`.
// It ships with an in-memory implementation for tests and short lived
// processes, an afs backed file store for CLI use, and a redis store for
// services sharing one session across replicas.
package store
