package conversationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"barberflow/database"
	"barberflow/models"
)

// MongoConversationRepo is the MongoDB-backed conversation context store.
type MongoConversationRepo struct {
	coll *mongo.Collection
}

// NewMongoConversationRepo returns a repository bound to the conversations collection.
func NewMongoConversationRepo() *MongoConversationRepo {
	return &MongoConversationRepo{coll: database.Collection("conversations")}
}

// Create inserts a new conversation document.
func (repo *MongoConversationRepo) Create(ctx context.Context, conv *models.Conversation) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctxWithTimeout, conv); err != nil {
		return fmt.Errorf("error creating conversation: %w", err)
	}
	return nil
}

// GetByID retrieves a conversation by its ID.
func (repo *MongoConversationRepo) GetByID(ctx context.Context, id string) (*models.Conversation, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var conv models.Conversation
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": id}).Decode(&conv)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching conversation %s: %w", id, err)
	}
	return &conv, nil
}

// Update replaces an existing conversation document.
func (repo *MongoConversationRepo) Update(ctx context.Context, conv *models.Conversation) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": conv.ID}
	update := bson.M{"$set": conv}
	if _, err := repo.coll.UpdateOne(ctxWithTimeout, filter, update); err != nil {
		return fmt.Errorf("error updating conversation %s: %w", conv.ID, err)
	}
	return nil
}
