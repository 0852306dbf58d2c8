package seed

import (
	"context"
	"fmt"

	"trivia/pkg/types"
)

type CategoryUpserter interface {
	UpsertCategory(ctx context.Context, category *types.Category) error
}

// Categories is the source of truth for the category table. Ids are fixed so
// questions created against one database stay valid after a reseed.
var Categories = []types.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}

// SeedCategories inserts missing categories and renames changed ones.
func SeedCategories(ctx context.Context, repo CategoryUpserter) ([]types.Category, error) {
	for i := range Categories {
		category := Categories[i]
		if err := repo.UpsertCategory(ctx, &category); err != nil {
			return nil, fmt.Errorf("failed to seed category %s: %w", category.Type, err)
		}
	}

	return Categories, nil
}
