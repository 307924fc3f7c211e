package models

import "go.mongodb.org/mongo-driver/v2/bson"

type Rider struct {
	Id    bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string        `bson:"name" json:"name"`
	Phone string        `bson:"phone" json:"phone"`
}
