package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bestlocations/internal/models"
)

// MongoStore keeps places as documents in a MongoDB collection.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore returns a MongoStore using the places collection of db.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(placesCollection)}
}

type placeDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Price       string             `bson:"price"`
	Description string             `bson:"description"`
	Location    string             `bson:"location"`
	Image       string             `bson:"image"`
}

func newPlaceDocument(in models.CreatePlaceInput) placeDocument {
	return placeDocument{
		Title:       in.Title,
		Price:       in.Price,
		Description: in.Description,
		Location:    in.Location,
		Image:       in.Image,
	}
}

func (d placeDocument) place() models.Place {
	return models.Place{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Price:       d.Price,
		Description: d.Description,
		Location:    d.Location,
		Image:       d.Image,
	}
}

// ListPlaces returns every place in insertion order.
func (s *MongoStore) ListPlaces(ctx context.Context) ([]models.Place, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find places: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []placeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode places: %w", err)
	}

	places := make([]models.Place, 0, len(docs))
	for _, doc := range docs {
		places = append(places, doc.place())
	}
	return places, nil
}

// GetPlace retrieves a single place by its hex ObjectID.
func (s *MongoStore) GetPlace(ctx context.Context, id string) (models.Place, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Place{}, ErrPlaceNotFound
	}

	var doc placeDocument
	err = s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Place{}, ErrPlaceNotFound
	}
	if err != nil {
		return models.Place{}, fmt.Errorf("find place %s: %w", id, err)
	}

	return doc.place(), nil
}

// CreatePlace inserts a new place document.
func (s *MongoStore) CreatePlace(ctx context.Context, in models.CreatePlaceInput) (models.Place, error) {
	doc := newPlaceDocument(in)
	doc.ID = primitive.NewObjectID()

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return models.Place{}, fmt.Errorf("insert place: %w", err)
	}

	return doc.place(), nil
}

// UpdatePlace sets only the fields present in the input. Unknown and
// malformed ids are ignored.
func (s *MongoStore) UpdatePlace(ctx context.Context, id string, in models.UpdatePlaceInput) error {
	if in.IsEmpty() {
		return nil
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	fields := in.Fields()
	set := bson.D{}
	for _, name := range models.PlaceFields {
		if value, ok := fields[name]; ok {
			set = append(set, bson.E{Key: name, Value: value})
		}
	}

	if _, err := s.coll.UpdateByID(ctx, oid, bson.D{{Key: "$set", Value: set}}); err != nil {
		return fmt.Errorf("update place %s: %w", id, err)
	}
	return nil
}

// DeletePlace removes a place. Unknown and malformed ids are ignored.
func (s *MongoStore) DeletePlace(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	if _, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}}); err != nil {
		return fmt.Errorf("delete place %s: %w", id, err)
	}
	return nil
}

// CountPlaces returns the number of stored places.
func (s *MongoStore) CountPlaces(ctx context.Context) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count places: %w", err)
	}
	return n, nil
}

// ReplaceAllPlaces empties the collection and bulk inserts places.
func (s *MongoStore) ReplaceAllPlaces(ctx context.Context, places []models.CreatePlaceInput) error {
	if _, err := s.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("delete places: %w", err)
	}
	if len(places) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(places))
	for _, in := range places {
		docs = append(docs, newPlaceDocument(in))
	}

	if _, err := s.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert places: %w", err)
	}
	return nil
}
