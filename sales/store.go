package sales

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"perfnight/db"
	"perfnight/models"
)

// Store is the record-store boundary: insert and retrieve-all are the only
// operations the booking flow needs. Records are append-only.
type Store interface {
	Insert(ctx context.Context, records []models.TicketSale) error
	RetrieveAll(ctx context.Context) ([]models.TicketSale, error)
	Count(ctx context.Context) (int64, error)
}

type mongoStore struct{}

// NewStore returns the MongoDB-backed store.
func NewStore() Store {
	return mongoStore{}
}

func (mongoStore) Insert(ctx context.Context, records []models.TicketSale) error {
	docs := make([]interface{}, len(records))
	for i, r := range records {
		docs[i] = r
	}
	_, err := db.TicketSalesCollection.InsertMany(ctx, docs)
	return err
}

func (mongoStore) RetrieveAll(ctx context.Context) ([]models.TicketSale, error) {
	cur, err := db.TicketSalesCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var records []models.TicketSale
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (mongoStore) Count(ctx context.Context) (int64, error) {
	return db.TicketSalesCollection.CountDocuments(ctx, bson.M{})
}
