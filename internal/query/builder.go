// Package query builds the recipe collection filters for browsing and
// searching. Every read in the application goes through RecipeFilter.
package query

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/seareny/tastebook/internal/httperr"
)

// Category selectors with special meaning; anything else is treated as a
// concrete food category label.
const (
	CategoryAll  = "all-types"
	CategoryMine = "my_recipes"
)

// RecipeFilter maps a (category selector, search term) pair and the current
// session identity to a Mongo filter. First match wins:
//
//	all-types            -> match all, or $text when a term is given
//	my_recipes           -> created_by == currentUser, optionally AND $text
//	<category label>     -> food_category == selector, optionally AND $text
//
// Selecting my_recipes without a session identity is an authorization
// failure, not an empty query.
func RecipeFilter(categorySelect, searchTerm, currentUser string) (bson.M, error) {
	switch categorySelect {
	case CategoryAll:
		if searchTerm != "" {
			return textSearch(searchTerm), nil
		}
		return bson.M{}, nil
	case CategoryMine:
		if currentUser == "" {
			return nil, httperr.ErrUnauthorized
		}
		owned := bson.M{"created_by": currentUser}
		if searchTerm != "" {
			return bson.M{"$and": bson.A{owned, textSearch(searchTerm)}}, nil
		}
		return owned, nil
	default:
		byCategory := bson.M{"food_category": categorySelect}
		if searchTerm != "" {
			return bson.M{"$and": bson.A{byCategory, textSearch(searchTerm)}}, nil
		}
		return byCategory, nil
	}
}

func textSearch(term string) bson.M {
	return bson.M{"$text": bson.M{"$search": term}}
}
