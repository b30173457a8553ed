package repositories

import (
	"context"
	"fmt"

	"dash-backend/internal/models"
	"dash-backend/internal/timeutil"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type InvoiceRepository struct {
	Col *mongo.Collection
}

func NewInvoiceRepository(db *mongo.Database) *InvoiceRepository {
	return &InvoiceRepository{Col: db.Collection("invoices")}
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	now := timeutil.Now()
	invoice.ID = primitive.NewObjectID()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	if _, err := r.Col.InsertOne(ctx, invoice); err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepository) Get(ctx context.Context, id string) (*models.Invoice, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var invoice models.Invoice
	err = r.Col.FindOne(ctx, bson.M{"_id": oid}).Decode(&invoice)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &invoice, nil
}

// GetByNumber retrieves an invoice by its human-facing number.
func (r *InvoiceRepository) GetByNumber(ctx context.Context, number string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.Col.FindOne(ctx, bson.M{"invoiceNumber": number}).Decode(&invoice)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get invoice by number: %w", err)
	}
	return &invoice, nil
}

func (r *InvoiceRepository) List(ctx context.Context) ([]*models.Invoice, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer cursor.Close(ctx)

	var invoices []*models.Invoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, fmt.Errorf("decode invoices: %w", err)
	}
	return invoices, nil
}

func (r *InvoiceRepository) UpdateStatus(ctx context.Context, id, status string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": timeutil.Now(),
	}}

	res, err := r.Col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *InvoiceRepository) Count(ctx context.Context) (int, error) {
	n, err := r.Col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return int(n), nil
}
