package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/auctionerrors"
	model "github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/models"
)

const auctionCollection = "auctions"

// MongoRepo is a MongoDB-backed implementation of AuctionStore. One document
// per auction; concurrent writers are fenced with a version field so Update
// is a single compare-and-swap, never an internal retry loop.
type MongoRepo struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoRepo connects to MongoDB and prepares the auctions collection with
// a unique index on auctionId.
func NewMongoRepo(ctx context.Context, uri, dbName string) (*MongoRepo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	coll := client.Database(dbName).Collection(auctionCollection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "auctionId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("create auction index: %w", err)
	}

	return &MongoRepo{client: client, collection: coll}, nil
}

// Close disconnects the underlying client.
func (r *MongoRepo) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *MongoRepo) Create(ctx context.Context, auction model.Auction) error {
	if _, err := r.collection.InsertOne(ctx, auction); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("create auction %s: %w", auction.AuctionID, auctionerrors.ErrAuctionExists)
		}
		return fmt.Errorf("create auction %s: %v: %w", auction.AuctionID, err, auctionerrors.ErrTransient)
	}
	return nil
}

func (r *MongoRepo) Get(ctx context.Context, auctionID string) (model.Auction, error) {
	var auction model.Auction
	err := r.collection.FindOne(ctx, bson.D{{Key: "auctionId", Value: auctionID}}).Decode(&auction)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Auction{}, fmt.Errorf("auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
		}
		return model.Auction{}, fmt.Errorf("get auction %s: %v: %w", auctionID, err, auctionerrors.ErrTransient)
	}
	return auction, nil
}

func (r *MongoRepo) List(ctx context.Context) ([]model.Auction, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list auctions: %v: %w", err, auctionerrors.ErrTransient)
	}

	var auctions []model.Auction
	if err := cursor.All(ctx, &auctions); err != nil {
		return nil, fmt.Errorf("decode auctions: %v: %w", err, auctionerrors.ErrTransient)
	}
	return auctions, nil
}

// Update performs one optimistic read-modify-write cycle. A version mismatch
// on the write means another writer got there first; the caller sees
// ErrTransient and retries on its own schedule (next tick, next request).
func (r *MongoRepo) Update(ctx context.Context, auctionID string, mutate func(*model.Auction) error) (model.Auction, error) {
	auction, err := r.Get(ctx, auctionID)
	if err != nil {
		return model.Auction{}, err
	}

	loadedVersion := auction.Version
	if err := mutate(&auction); err != nil {
		return model.Auction{}, err
	}
	auction.Version = loadedVersion + 1

	res, err := r.collection.ReplaceOne(ctx,
		bson.D{
			{Key: "auctionId", Value: auctionID},
			{Key: "version", Value: loadedVersion},
		},
		auction,
	)
	if err != nil {
		return model.Auction{}, fmt.Errorf("update auction %s: %v: %w", auctionID, err, auctionerrors.ErrTransient)
	}
	if res.MatchedCount == 0 {
		return model.Auction{}, fmt.Errorf("update auction %s: concurrent write detected: %w", auctionID, auctionerrors.ErrTransient)
	}
	return auction, nil
}
