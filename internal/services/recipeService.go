package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/seareny/tastebook/internal/httperr"
	"github.com/seareny/tastebook/internal/models"
	"github.com/seareny/tastebook/internal/query"
)

// ErrInvalidCategory rejects a recipe whose food_category is not one of the
// fixed labels. Surfaced as a flash message, not an error page.
var ErrInvalidCategory = errors.New("pick a valid food category")

// RecipeService owns the recipes collection.
type RecipeService struct {
	recipes *mongo.Collection
}

func NewRecipeService(database *mongo.Database) *RecipeService {
	return &RecipeService{recipes: database.Collection("recipes")}
}

// ListAll returns every recipe in insertion order.
func (s *RecipeService) ListAll(ctx context.Context) ([]models.Recipe, error) {
	return s.find(ctx, bson.M{})
}

// Search runs the query-builder filter for a category/term pair.
func (s *RecipeService) Search(ctx context.Context, categorySelect, searchTerm, currentUser string) ([]models.Recipe, error) {
	filter, err := query.RecipeFilter(categorySelect, searchTerm, currentUser)
	if err != nil {
		return nil, err
	}
	return s.find(ctx, filter)
}

// ByOwner returns the recipes created by username.
func (s *RecipeService) ByOwner(ctx context.Context, username string) ([]models.Recipe, error) {
	return s.find(ctx, bson.M{"created_by": username})
}

// Get fetches one recipe by its hex id. A malformed or unknown id is
// NotFound either way.
func (s *RecipeService) Get(ctx context.Context, id string) (models.Recipe, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Recipe{}, httperr.ErrNotFound
	}
	var recipe models.Recipe
	err = s.recipes.FindOne(ctx, bson.M{"_id": objID}).Decode(&recipe)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Recipe{}, httperr.ErrNotFound
	}
	if err != nil {
		return models.Recipe{}, err
	}
	return recipe, nil
}

// Create inserts a recipe built from a submitted document, stamped with the
// acting user as owner.
func (s *RecipeService) Create(ctx context.Context, doc map[string]interface{}, owner string) (models.Recipe, error) {
	recipe := models.RecipeFromDoc(doc, owner)
	if !models.ValidCategory(recipe.FoodCategory) {
		return models.Recipe{}, ErrInvalidCategory
	}
	recipe.ID = primitive.NewObjectID()
	recipe.CreatedAt = time.Now()
	if _, err := s.recipes.InsertOne(ctx, recipe); err != nil {
		return models.Recipe{}, err
	}
	return recipe, nil
}

// Update replaces the recipe's fields with the submitted document. The
// owner stamp is rewritten with the acting user on every edit, whatever
// created_by the document claimed.
func (s *RecipeService) Update(ctx context.Context, id string, doc map[string]interface{}, owner string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return httperr.ErrNotFound
	}
	recipe := models.RecipeFromDoc(doc, owner)
	if !models.ValidCategory(recipe.FoodCategory) {
		return ErrInvalidCategory
	}
	result, err := s.recipes.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": recipe.UpdateFields()})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return httperr.ErrNotFound
	}
	return nil
}

// Delete removes a recipe. Deleting an id that no longer exists is
// NotFound, not a silent success.
func (s *RecipeService) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return httperr.ErrNotFound
	}
	result, err := s.recipes.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return httperr.ErrNotFound
	}
	return nil
}

func (s *RecipeService) find(ctx context.Context, filter bson.M) ([]models.Recipe, error) {
	cursor, err := s.recipes.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recipes []models.Recipe
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}
