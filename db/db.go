package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	TicketSalesCollection    *mongo.Collection
	ScannedTicketsCollection *mongo.Collection
	NotificationsCollection  *mongo.Collection
	Client                   *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("performance-night")
	TicketSalesCollection = database.Collection("ticket_sales")
	ScannedTicketsCollection = database.Collection("scanned_tickets")
	NotificationsCollection = database.Collection("notifications")
}
