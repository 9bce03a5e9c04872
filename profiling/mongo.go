package profiling

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/percona/pt-mongodb-slow-query-check/proto"
)

// MongoStore implements DataStore against one database of a MongoDB
// deployment.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{db: client.Database(database)}
}

func (s *MongoStore) SetProfilingLevel(ctx context.Context, level int) error {
	res := s.db.RunCommand(ctx, primitive.M{"profile": level})
	return res.Err()
}

// QueryProfilingLog returns the profiled read/write operations whose plan
// did not use an index scan or a direct id lookup, excluding the profiling
// log's own namespace. Records without a planSummary still match; the op
// filter alone keeps profiling internals and commands out.
func (s *MongoStore) QueryProfilingLog(ctx context.Context) ([]proto.ProfiledOperation, error) {
	filter := primitive.M{
		"op":          primitive.M{"$in": []string{"query", "update", "remove"}},
		"ns":          primitive.M{"$ne": s.db.Name() + "." + ProfileCollection},
		"planSummary": primitive.M{"$nin": []string{"IDHACK", "IXSCAN"}},
	}

	cursor, err := s.db.Collection(ProfileCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	docs := []proto.ProfiledOperation{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *MongoStore) CollectionExists(ctx context.Context, name string) (bool, error) {
	names, err := s.db.ListCollectionNames(ctx, primitive.M{"name": name})
	if err != nil {
		return false, err
	}
	return len(names) > 0, nil
}

func (s *MongoStore) DropCollection(ctx context.Context, name string) error {
	return s.db.Collection(name).Drop(ctx)
}
