package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FoodCategories is the fixed set of category labels a recipe may carry.
var FoodCategories = []string{
	"breakfast",
	"lunch",
	"dinner",
	"dessert",
	"snack",
	"soup",
	"drink",
}

// ValidCategory reports whether label is one of FoodCategories.
func ValidCategory(label string) bool {
	for _, c := range FoodCategories {
		if c == label {
			return true
		}
	}
	return false
}

// Recipe is a recipe document. The known fields are typed; anything else a
// client submits survives round trips through Extra, which is stored inline
// next to the typed fields.
type Recipe struct {
	ID           primitive.ObjectID     `bson:"_id,omitempty" json:"id,omitempty"`
	Title        string                 `bson:"title" json:"title"`
	Description  string                 `bson:"description" json:"description"`
	FoodCategory string                 `bson:"food_category" json:"food_category"`
	Ingredients  []string               `bson:"ingredients" json:"ingredients"`
	Steps        []string               `bson:"steps" json:"steps"`
	ImageURL     string                 `bson:"image_url" json:"image_url"`
	CreatedBy    string                 `bson:"created_by" json:"created_by"`
	CreatedAt    time.Time              `bson:"created_at" json:"created_at"`
	Extra        map[string]interface{} `bson:",inline" json:"-"`
}

// knownRecipeFields are keys handled by the typed Recipe fields; a submitted
// document may not smuggle values into them through Extra.
var knownRecipeFields = map[string]bool{
	"_id":           true,
	"id":            true,
	"title":         true,
	"description":   true,
	"food_category": true,
	"ingredients":   true,
	"steps":         true,
	"image_url":     true,
	"created_by":    true,
	"created_at":    true,
}

// RecipeFromDoc builds a Recipe from a loosely-typed submitted document,
// stamped with the acting user as owner. Whatever created_by or id the
// document claims is discarded.
func RecipeFromDoc(doc map[string]interface{}, owner string) Recipe {
	r := Recipe{
		Title:        stringField(doc, "title"),
		Description:  stringField(doc, "description"),
		FoodCategory: stringField(doc, "food_category"),
		Ingredients:  stringSliceField(doc, "ingredients"),
		Steps:        stringSliceField(doc, "steps"),
		ImageURL:     stringField(doc, "image_url"),
		CreatedBy:    owner,
	}
	for k, v := range doc {
		if knownRecipeFields[k] {
			continue
		}
		if r.Extra == nil {
			r.Extra = map[string]interface{}{}
		}
		r.Extra[k] = v
	}
	return r
}

// UpdateFields returns the $set document for a full field replacement.
// The id and creation time are never part of an update.
func (r Recipe) UpdateFields() bson.M {
	m := bson.M{
		"title":         r.Title,
		"description":   r.Description,
		"food_category": r.FoodCategory,
		"ingredients":   r.Ingredients,
		"steps":         r.Steps,
		"image_url":     r.ImageURL,
		"created_by":    r.CreatedBy,
	}
	for k, v := range r.Extra {
		if !knownRecipeFields[k] {
			m[k] = v
		}
	}
	return m
}

func stringField(doc map[string]interface{}, key string) string {
	s, _ := doc[key].(string)
	return s
}

func stringSliceField(doc map[string]interface{}, key string) []string {
	raw, ok := doc[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
