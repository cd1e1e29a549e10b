package index

import (
	"context"
	"time"

	"github.com/46h1/buzzer/internal/domain/entity"
	"github.com/46h1/buzzer/internal/domain/repository"
	"github.com/46h1/buzzer/internal/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	fieldLatitude    = "latitude"
	fieldLongitude   = "longitude"
	fieldAccuracy    = "accuracy"
	fieldGeohash     = "geohash"
	fieldSharing     = "isLocationSharingEnabled"
	fieldLastUpdated = "lastUpdated"
)

type firestoreLocation struct {
	Latitude       float64   `firestore:"latitude"`
	Longitude      float64   `firestore:"longitude"`
	Accuracy       float64   `firestore:"accuracy"`
	Geohash        string    `firestore:"geohash"`
	SharingEnabled bool      `firestore:"isLocationSharingEnabled"`
	LastUpdated    time.Time `firestore:"lastUpdated"`
}

func (l *firestoreLocation) toDomain(userID string) *entity.UserLocationRecord {
	return &entity.UserLocationRecord{
		UserID:         userID,
		Latitude:       l.Latitude,
		Longitude:      l.Longitude,
		Accuracy:       l.Accuracy,
		Geohash:        l.Geohash,
		SharingEnabled: l.SharingEnabled,
		LastUpdated:    l.LastUpdated.UTC(),
	}
}

// FirestoreIndex keeps location fields on the users/{uid} documents, merged next to whatever
// else the document holds. Geohash range scans use the single-field index Firestore maintains.
type FirestoreIndex struct {
	client     *firestore.Client
	collection string
	precision  int
}

// NewFirestoreIndex creates an index over collection.
func NewFirestoreIndex(client *firestore.Client, collection string, precision int) *FirestoreIndex {
	return &FirestoreIndex{
		client:     client,
		collection: collection,
		precision:  precision,
	}
}

func (f *FirestoreIndex) doc(userID string) *firestore.DocumentRef {
	return f.client.Collection(f.collection).Doc(userID)
}

func (f *FirestoreIndex) Upsert(ctx context.Context, record *entity.UserLocationRecord) (bool, error) {
	next := record.Clone()
	next.Rehash(f.precision)
	ref := f.doc(next.UserID)

	var applied bool
	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		applied = false

		snap, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}
		if snap != nil && snap.Exists() {
			var prev firestoreLocation
			if err := snap.DataTo(&prev); err != nil {
				return err
			}
			if next.LastUpdated.Before(prev.LastUpdated) {
				return nil
			}
		}

		applied = true

		return tx.Set(ref, map[string]interface{}{
			fieldLatitude:    next.Latitude,
			fieldLongitude:   next.Longitude,
			fieldAccuracy:    next.Accuracy,
			fieldGeohash:     next.Geohash,
			fieldSharing:     next.SharingEnabled,
			fieldLastUpdated: next.LastUpdated,
		}, firestore.MergeAll)
	})
	if err != nil {
		return false, errors.Wrap(err, "firestore upsert location")
	}

	return applied, nil
}

func (f *FirestoreIndex) SetSharing(ctx context.Context, userID string, enabled bool) error {
	_, err := f.doc(userID).Update(ctx, []firestore.Update{{Path: fieldSharing, Value: enabled}})
	if err != nil && status.Code(err) != codes.NotFound {
		return errors.Wrap(err, "firestore set sharing")
	}

	return nil
}

func (f *FirestoreIndex) RangeQuery(ctx context.Context, lower, upper string) ([]*entity.UserLocationRecord, error) {
	iter := f.client.Collection(f.collection).
		Where(fieldGeohash, ">=", lower).
		Where(fieldGeohash, "<", upper).
		Documents(ctx)
	defer iter.Stop()

	var out []*entity.UserLocationRecord
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "firestore range query")
		}

		var loc firestoreLocation
		if err := snap.DataTo(&loc); err != nil {
			return nil, errors.Wrapf(err, "decode location of %s", snap.Ref.ID)
		}
		// sharing is filtered here; an equality filter would need a composite index
		if loc.SharingEnabled {
			out = append(out, loc.toDomain(snap.Ref.ID))
		}
	}

	return out, nil
}

func (f *FirestoreIndex) Get(ctx context.Context, userID string) (*entity.UserLocationRecord, error) {
	snap, err := f.doc(userID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, repository.ErrLocationNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "firestore get location")
	}

	var loc firestoreLocation
	if err := snap.DataTo(&loc); err != nil {
		return nil, errors.Wrapf(err, "decode location of %s", userID)
	}
	// a profile document without a reported location
	if loc.Geohash == "" {
		return nil, repository.ErrLocationNotFound
	}

	return loc.toDomain(userID), nil
}

var _ repository.SpatialIndex = (*FirestoreIndex)(nil)
