package store

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"bestlocations/internal/models"
)

func placesNamespace(mt *mtest.T) string {
	return mt.DB.Name() + "." + placesCollection
}

func TestMongoStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("list places", func(mt *mtest.T) {
		first, second := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, placesNamespace(mt), mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: first},
				{Key: "title", Value: "Borobudur"},
				{Key: "price", Value: "Rp 25.000"},
				{Key: "location", Value: "Magelang"},
			},
			bson.D{
				{Key: "_id", Value: second},
				{Key: "title", Value: "Pantai Kuta"},
			},
		))

		places, err := NewMongoStore(mt.DB).ListPlaces(context.Background())
		if err != nil {
			mt.Fatalf("ListPlaces: %v", err)
		}
		if len(places) != 2 {
			mt.Fatalf("expected 2 places, got %d", len(places))
		}
		want := models.Place{ID: first.Hex(), Title: "Borobudur", Price: "Rp 25.000", Location: "Magelang"}
		if places[0] != want {
			mt.Fatalf("expected %+v, got %+v", want, places[0])
		}
		if places[1].ID != second.Hex() || places[1].Title != "Pantai Kuta" {
			mt.Fatalf("unexpected second place %+v", places[1])
		}
	})

	mt.Run("list empty", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, placesNamespace(mt), mtest.FirstBatch))

		places, err := NewMongoStore(mt.DB).ListPlaces(context.Background())
		if err != nil {
			mt.Fatalf("ListPlaces: %v", err)
		}
		if places == nil || len(places) != 0 {
			mt.Fatalf("expected empty slice, got %#v", places)
		}
	})

	mt.Run("get place", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, placesNamespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "title", Value: "Kawah Putih"},
			{Key: "image", Value: "https://example.com/k.jpg"},
		}))

		got, err := NewMongoStore(mt.DB).GetPlace(context.Background(), id.Hex())
		if err != nil {
			mt.Fatalf("GetPlace: %v", err)
		}
		if got.ID != id.Hex() || got.Title != "Kawah Putih" || got.Image != "https://example.com/k.jpg" {
			mt.Fatalf("unexpected place %+v", got)
		}
	})

	mt.Run("get missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, placesNamespace(mt), mtest.FirstBatch))

		_, err := NewMongoStore(mt.DB).GetPlace(context.Background(), primitive.NewObjectID().Hex())
		if !errors.Is(err, ErrPlaceNotFound) {
			mt.Fatalf("expected ErrPlaceNotFound, got %v", err)
		}
	})

	mt.Run("get malformed id", func(mt *mtest.T) {
		// No response is queued: a query would fail with a different error.
		_, err := NewMongoStore(mt.DB).GetPlace(context.Background(), "create")
		if !errors.Is(err, ErrPlaceNotFound) {
			mt.Fatalf("expected ErrPlaceNotFound, got %v", err)
		}
	})

	mt.Run("create place", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		got, err := NewMongoStore(mt.DB).CreatePlace(context.Background(), models.CreatePlaceInput{
			Title:    "Borobudur",
			Price:    "Rp 25.000",
			Location: "Magelang",
		})
		if err != nil {
			mt.Fatalf("CreatePlace: %v", err)
		}
		if _, err := primitive.ObjectIDFromHex(got.ID); err != nil {
			mt.Fatalf("expected hex ObjectID, got %q", got.ID)
		}
		if got.Title != "Borobudur" || got.Location != "Magelang" {
			mt.Fatalf("unexpected place %+v", got)
		}
	})

	mt.Run("create duplicate", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := NewMongoStore(mt.DB).CreatePlace(context.Background(), models.CreatePlaceInput{Title: "x"})
		var writeErr mongo.WriteException
		if !errors.As(err, &writeErr) {
			mt.Fatalf("expected write exception, got %v", err)
		}
	})

	mt.Run("update sets present fields", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		id := primitive.NewObjectID().Hex()
		err := NewMongoStore(mt.DB).UpdatePlace(context.Background(), id, models.UpdatePlaceInput{Price: strPtr("X")})
		if err != nil {
			mt.Fatalf("UpdatePlace: %v", err)
		}

		evt := mt.GetStartedEvent()
		if evt == nil || evt.CommandName != "update" {
			mt.Fatalf("expected update command, got %+v", evt)
		}
		set, ok := evt.Command.Lookup("updates", "0", "u", "$set").DocumentOK()
		if !ok {
			mt.Fatalf("expected $set document in %s", evt.Command)
		}
		if price, _ := set.Lookup("price").StringValueOK(); price != "X" {
			mt.Fatalf("expected price X, got %q", price)
		}
		if _, err := set.LookupErr("title"); err == nil {
			mt.Fatalf("absent field title must not be set: %s", set)
		}
	})

	mt.Run("update without fields or with malformed id", func(mt *mtest.T) {
		s := NewMongoStore(mt.DB)
		if err := s.UpdatePlace(context.Background(), primitive.NewObjectID().Hex(), models.UpdatePlaceInput{}); err != nil {
			mt.Fatalf("UpdatePlace empty: %v", err)
		}
		if err := s.UpdatePlace(context.Background(), "bogus", models.UpdatePlaceInput{Title: strPtr("x")}); err != nil {
			mt.Fatalf("UpdatePlace malformed: %v", err)
		}
		if evt := mt.GetStartedEvent(); evt != nil {
			mt.Fatalf("expected no command, got %s", evt.CommandName)
		}
	})

	mt.Run("delete place", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		s := NewMongoStore(mt.DB)
		if err := s.DeletePlace(context.Background(), primitive.NewObjectID().Hex()); err != nil {
			mt.Fatalf("DeletePlace: %v", err)
		}
		if err := s.DeletePlace(context.Background(), "bogus"); err != nil {
			mt.Fatalf("DeletePlace malformed: %v", err)
		}
	})

	mt.Run("count places", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, placesNamespace(mt), mtest.FirstBatch,
			bson.D{{Key: "n", Value: int32(3)}},
		))

		n, err := NewMongoStore(mt.DB).CountPlaces(context.Background())
		if err != nil {
			mt.Fatalf("CountPlaces: %v", err)
		}
		if n != 3 {
			mt.Fatalf("expected 3, got %d", n)
		}
	})

	mt.Run("replace all places", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 4}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}),
		)

		err := NewMongoStore(mt.DB).ReplaceAllPlaces(context.Background(), []models.CreatePlaceInput{
			{Title: "Pantai Kuta"},
			{Title: "Malioboro"},
		})
		if err != nil {
			mt.Fatalf("ReplaceAllPlaces: %v", err)
		}

		if evt := mt.GetStartedEvent(); evt == nil || evt.CommandName != "delete" {
			mt.Fatalf("expected delete first, got %+v", evt)
		}
		evt := mt.GetStartedEvent()
		if evt == nil || evt.CommandName != "insert" {
			mt.Fatalf("expected insert second, got %+v", evt)
		}
		docs, err := evt.Command.Lookup("documents").Array().Values()
		if err != nil {
			mt.Fatalf("documents: %v", err)
		}
		if len(docs) != 2 {
			mt.Fatalf("expected 2 inserted documents, got %d", len(docs))
		}
	})

	mt.Run("delete failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    8000,
			Message: "unauthorized",
			Name:    "AtlasError",
		}))

		err := NewMongoStore(mt.DB).ReplaceAllPlaces(context.Background(), nil)
		if err == nil {
			mt.Fatalf("expected error")
		}
	})
}
