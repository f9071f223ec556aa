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

type OrchidRepository struct{}

func NewOrchidRepository() *OrchidRepository {
	return &OrchidRepository{}
}

func (r *OrchidRepository) collection() *mongo.Collection {
	return config.DB.Collection("orchids")
}

func (r *OrchidRepository) find(ctx context.Context, filter bson.M) ([]models.Orchid, error) {
	opts := options.Find().SetSort(bson.D{{Key: "orchidName", Value: 1}})
	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orchids := []models.Orchid{}
	if err := cursor.All(ctx, &orchids); err != nil {
		return nil, err
	}
	return orchids, nil
}

func (r *OrchidRepository) FindAll(ctx context.Context) ([]models.Orchid, error) {
	return r.find(ctx, bson.M{})
}

func (r *OrchidRepository) FindByID(ctx context.Context, id string) (*models.Orchid, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var orchid models.Orchid
	if err := r.collection().FindOne(ctx, bson.M{"_id": oid}).Decode(&orchid); err != nil {
		return nil, err
	}
	return &orchid, nil
}

func (r *OrchidRepository) FindByCategory(ctx context.Context, categoryID string) ([]models.Orchid, error) {
	oid, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return []models.Orchid{}, nil
	}
	return r.find(ctx, bson.M{"categoryId": oid})
}

func (r *OrchidRepository) SearchByName(ctx context.Context, name string) ([]models.Orchid, error) {
	filter := bson.M{"orchidName": bson.M{"$regex": name, "$options": "i"}}
	return r.find(ctx, filter)
}

func (r *OrchidRepository) FindByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]models.Orchid, error) {
	return r.find(ctx, bson.M{"price": bson.M{"$gte": minPrice, "$lte": maxPrice}})
}

func (r *OrchidRepository) FindByNatural(ctx context.Context, isNatural bool) ([]models.Orchid, error) {
	return r.find(ctx, bson.M{"isNatural": isNatural})
}

func (r *OrchidRepository) Insert(ctx context.Context, orchid *models.Orchid) error {
	orchid.ID = primitive.NewObjectID()
	_, err := r.collection().InsertOne(ctx, orchid)
	return err
}

func (r *OrchidRepository) Update(ctx context.Context, orchid *models.Orchid) error {
	update := bson.M{"$set": bson.M{
		"orchidName":  orchid.OrchidName,
		"description": orchid.Description,
		"orchidUrl":   orchid.OrchidURL,
		"price":       orchid.Price,
		"isNatural":   orchid.IsNatural,
		"categoryId":  orchid.CategoryID,
	}}
	result, err := r.collection().UpdateOne(ctx, bson.M{"_id": orchid.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *OrchidRepository) UpdateURL(ctx context.Context, id string, url string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	result, err := r.collection().UpdateOne(ctx, bson.M{"_id": oid},
		bson.M{"$set": bson.M{"orchidUrl": url}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *OrchidRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	_, err = r.collection().DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func (r *OrchidRepository) Count(ctx context.Context) (int64, error) {
	return r.collection().CountDocuments(ctx, bson.M{})
}
