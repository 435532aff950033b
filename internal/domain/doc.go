// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (layers, stackups, geometry, results, errors) and
// contracts (interfaces) only.
package domain
