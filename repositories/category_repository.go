package repositories

import (
	"context"

	"orchid-shop/config"
	"orchid-shop/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

func (r *CategoryRepository) collection() *mongo.Collection {
	return config.DB.Collection("categories")
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "categoryName", Value: 1}})
	cursor, err := r.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*models.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var category models.Category
	if err := r.collection().FindOne(ctx, bson.M{"_id": oid}).Decode(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	err := r.collection().FindOne(ctx, bson.M{"categoryName": name}).Decode(&category)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Insert(ctx context.Context, category *models.Category) error {
	category.ID = primitive.NewObjectID()
	_, err := r.collection().InsertOne(ctx, category)
	return err
}

func (r *CategoryRepository) Update(ctx context.Context, category *models.Category) error {
	update := bson.M{"$set": bson.M{"categoryName": category.CategoryName}}
	result, err := r.collection().UpdateOne(ctx, bson.M{"_id": category.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	_, err = r.collection().DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
