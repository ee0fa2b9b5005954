package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lord-charite/blogApp/internal/document"
)

// Mongo persists documents in a single collection, the way the
// platform's hosted deployment stores them. Insertion order is _id
// order since ObjectIDs are generated at insert time.
type Mongo struct {
	client *mongo.Client
	col    *mongo.Collection
}

// mongoDoc pairs the stored document with its ObjectID so updates can
// target exactly the row a lookup resolved.
type mongoDoc struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	document.Document `bson:",inline"`
}

// NewMongo connects, pings, and ensures the permalink index. The index
// is not unique: duplicate permalinks are allowed to coexist and
// lookups bind to the first inserted match.
func NewMongo(ctx context.Context, uri, db, collection string, timeout time.Duration) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	col := client.Database(db).Collection(collection)
	idx := mongo.IndexModel{Keys: bson.D{{Key: "permalink", Value: 1}}}
	if _, err := col.Indexes().CreateOne(ctx, idx); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo index: %w", err)
	}

	return &Mongo{client: client, col: col}, nil
}

func (m *Mongo) Insert(ctx context.Context, doc document.Document) error {
	if _, err := m.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}
	return nil
}

func (m *Mongo) FindByPermalink(ctx context.Context, permalink string) (document.Document, error) {
	var d mongoDoc
	err := m.col.FindOne(ctx, bson.M{"permalink": permalink},
		options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return document.Document{}, ErrNotFound
	}
	if err != nil {
		return document.Document{}, err
	}
	return d.Document, nil
}

func (m *Mongo) FindByBlogAndKind(ctx context.Context, blog string, kind document.Kind, opts ...FindOption) ([]document.Document, error) {
	o := applyOptions(opts)
	sort := bson.D{{Key: "_id", Value: 1}}
	if o.sortByTimestamp {
		dir := 1
		if o.descending {
			dir = -1
		}
		// _id as secondary key keeps ties in insertion order
		sort = bson.D{{Key: "timestamp", Value: dir}, {Key: "_id", Value: 1}}
	}

	return m.find(ctx, bson.M{"blogname": blog, "kind": kind}, sort)
}

func (m *Mongo) FindByParent(ctx context.Context, blog, parentPermalink string) ([]document.Document, error) {
	filter := bson.M{"blogname": blog, "parent_permalink": parentPermalink}
	return m.find(ctx, filter, bson.D{{Key: "_id", Value: 1}})
}

func (m *Mongo) find(ctx context.Context, filter bson.M, sort bson.D) ([]document.Document, error) {
	cur, err := m.col.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []document.Document
	for cur.Next(ctx) {
		var d mongoDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		docs = append(docs, d.Document)
	}
	return docs, cur.Err()
}

func (m *Mongo) Update(ctx context.Context, permalink string, mutate func(*document.Document)) error {
	var d mongoDoc
	err := m.col.FindOne(ctx, bson.M{"permalink": permalink},
		options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	mutate(&d.Document)

	if _, err := m.col.ReplaceOne(ctx, bson.M{"_id": d.ID}, d.Document); err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}
	return nil
}

func (m *Mongo) Blogs(ctx context.Context) ([]string, error) {
	values, err := m.col.Distinct(ctx, "blogname", bson.M{})
	if err != nil {
		return nil, err
	}
	blogs := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			blogs = append(blogs, s)
		}
	}
	sort.Strings(blogs)
	return blogs, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
