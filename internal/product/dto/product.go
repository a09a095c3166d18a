package dto

import "go.mongodb.org/mongo-driver/bson/primitive"

// InsertResult mirrors the store's insertion acknowledgment the
// original API handed straight back to the client.
type InsertResult struct {
	Acknowledged bool               `json:"acknowledged"`
	InsertedID   primitive.ObjectID `json:"insertedId"`
}
