// Package repository defines the athlete-row store interface and errors.
package repository

import (
	"context"

	"github.com/okian/podium/internal/domain/model"
)

// Store provides read access to the athletes dataset. Returned slices are
// shared with the store and must not be modified.
type Store interface {
	// Sports returns the distinct sports, ascending.
	Sports(ctx context.Context) []string
	// Countries returns the distinct NOC codes, ascending.
	Countries(ctx context.Context) []string

	// BySport returns every row of a sport.
	// Returns ErrNotFound if the sport is unknown.
	BySport(ctx context.Context, sport string) ([]model.AthleteEvent, error)
	// ByCountry returns every row of a NOC.
	// Returns ErrNotFound if the NOC is unknown.
	ByCountry(ctx context.Context, noc string) ([]model.AthleteEvent, error)

	// All returns every row.
	All(ctx context.Context) []model.AthleteEvent
	// Count returns the number of rows.
	Count(ctx context.Context) int
}
