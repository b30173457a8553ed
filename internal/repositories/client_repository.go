package repositories

import (
	"context"
	"errors"
	"fmt"

	"dash-backend/internal/models"
	"dash-backend/internal/timeutil"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a record does not exist in its collection.
var ErrNotFound = errors.New("record not found")

type ClientRepository struct {
	Col *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{Col: db.Collection("clients")}
}

// Create inserts the client and fills in its id and timestamps.
func (r *ClientRepository) Create(ctx context.Context, client *models.Client) error {
	now := timeutil.Now()
	client.ID = primitive.NewObjectID()
	client.CreatedAt = now
	client.UpdatedAt = now

	if _, err := r.Col.InsertOne(ctx, client); err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

func (r *ClientRepository) Get(ctx context.Context, id string) (*models.Client, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var client models.Client
	err = r.Col.FindOne(ctx, bson.M{"_id": oid}).Decode(&client)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &client, nil
}

// List returns all clients, newest first.
func (r *ClientRepository) List(ctx context.Context) ([]*models.Client, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer cursor.Close(ctx)

	var clients []*models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, fmt.Errorf("decode clients: %w", err)
	}
	return clients, nil
}

// Update replaces the editable fields of a client. Last write wins;
// no concurrency token is checked.
func (r *ClientRepository) Update(ctx context.Context, id string, client *models.Client) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"cin":       client.CIN,
		"name":      client.Name,
		"email":     client.Email,
		"phone":     client.Phone,
		"location":  client.Location,
		"status":    client.Status,
		"updatedAt": timeutil.Now(),
	}}

	res, err := r.Col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ClientRepository) Count(ctx context.Context) (int, error) {
	n, err := r.Col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return int(n), nil
}
