package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Orchid struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrchidName  string             `bson:"orchidName" json:"orchid_name"`
	Description string             `bson:"description" json:"description"`
	OrchidURL   string             `bson:"orchidUrl" json:"orchid_url"`
	Price       float64            `bson:"price" json:"price"`
	IsNatural   bool               `bson:"isNatural" json:"is_natural"`
	CategoryID  primitive.ObjectID `bson:"categoryId" json:"category_id"`
}
