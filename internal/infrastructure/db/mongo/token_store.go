package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/castmate/castmate-client/internal/core/ports"
)

const sessionsCollection = "sessions"

// TokenStore keeps one session document per namespace in the sessions
// collection.
type TokenStore struct {
	coll      *mongo.Collection
	namespace string
	now       func() time.Time
}

type sessionDoc struct {
	ID          string    `bson:"_id"`
	AccessToken string    `bson:"access_token"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func NewTokenStore(db *mongo.Database, namespace string) *TokenStore {
	if namespace == "" {
		namespace = "default"
	}
	return &TokenStore{coll: db.Collection(sessionsCollection), namespace: namespace, now: time.Now}
}

func (s *TokenStore) Get(ctx context.Context) (string, error) {
	var doc sessionDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": s.namespace}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", ports.ErrTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("find session: %w", err)
	}
	if doc.AccessToken == "" {
		return "", ports.ErrTokenNotFound
	}
	return doc.AccessToken, nil
}

func (s *TokenStore) Set(ctx context.Context, token string) error {
	doc := sessionDoc{ID: s.namespace, AccessToken: token, UpdatedAt: s.now().UTC()}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": s.namespace}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

func (s *TokenStore) Clear(ctx context.Context) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": s.namespace}); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Ping reports whether the database is reachable.
func (s *TokenStore) Ping(ctx context.Context) error {
	return s.coll.Database().Client().Ping(ctx, nil)
}

var _ ports.TokenStore = (*TokenStore)(nil)
