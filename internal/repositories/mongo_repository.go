package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sunshare/internal/models"
)

const (
	MongoBackendName     = "mongodb"
	PropertiesCollection = "properties"
)

type propertyDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	models.Property `bson:",inline"`
}

type MongoPropertyRepository struct {
	collection *mongo.Collection
}

func NewMongoPropertyRepository(db *mongo.Database) *MongoPropertyRepository {
	return &MongoPropertyRepository{collection: db.Collection(PropertiesCollection)}
}

func (r *MongoPropertyRepository) Name() string {
	return MongoBackendName
}

func (r *MongoPropertyRepository) List(ctx context.Context) ([]models.Property, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []propertyDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	properties := make([]models.Property, 0, len(docs))
	for _, doc := range docs {
		p := doc.Property
		p.ID = doc.ID.Hex()
		properties = append(properties, p)
	}
	return properties, nil
}

func (r *MongoPropertyRepository) Create(ctx context.Context, property *models.Property) error {
	doc := propertyDocument{
		ID:       primitive.NewObjectID(),
		Property: *property,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}

	property.ID = doc.ID.Hex()
	return nil
}
