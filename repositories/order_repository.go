package repositories

import (
	"context"
	"time"

	"orchid-shop/config"
	"orchid-shop/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) collection() *mongo.Collection {
	return config.DB.Collection("orders")
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "orderDate", Value: -1}})
	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var order models.Order
	if err := r.collection().FindOne(ctx, bson.M{"_id": oid}).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) FindByAccount(ctx context.Context, accountID string) ([]models.Order, error) {
	oid, err := primitive.ObjectIDFromHex(accountID)
	if err != nil {
		return []models.Order{}, nil
	}
	return r.find(ctx, bson.M{"accountId": oid})
}

func (r *OrderRepository) FindByStatus(ctx context.Context, status string) ([]models.Order, error) {
	return r.find(ctx, bson.M{"orderStatus": status})
}

func (r *OrderRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]models.Order, error) {
	return r.find(ctx, bson.M{"orderDate": bson.M{"$gte": start, "$lte": end}})
}

func (r *OrderRepository) Insert(ctx context.Context, order *models.Order) error {
	order.ID = primitive.NewObjectID()
	_, err := r.collection().InsertOne(ctx, order)
	return err
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	result, err := r.collection().UpdateOne(ctx, bson.M{"_id": oid},
		bson.M{"$set": bson.M{"orderStatus": status}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	return r.collection().CountDocuments(ctx, bson.M{})
}
