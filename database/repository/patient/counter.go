package patientRepo

import (
	"fmt"
	"strconv"
	"time"

	"caregrid/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const patientCounterKey = "patientId"

// NextPatientID atomically increments the persisted patient-ID sequence and
// returns the new value as a string. On first use the counter is seeded from
// the highest numeric patient ID already present, so existing records keep
// their identifiers.
func (r *MongoPatientRepo) NextPatientID() (string, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	count, err := r.counterColl.CountDocuments(ctx, bson.M{"key": patientCounterKey})
	if err != nil {
		return "", fmt.Errorf("failed to check patient counter: %w", err)
	}
	if count == 0 {
		if err := r.seedCounter(); err != nil {
			return "", err
		}
	}

	now := time.Now().UTC()
	update := bson.M{
		"$inc":         bson.M{"value": 1},
		"$set":         bson.M{"updatedBy": "system", "source": models.SourceAPI, "updatedAt": now},
		"$setOnInsert": bson.M{"createdBy": "system", "createdAt": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var counter models.Counter
	if err := r.counterColl.FindOneAndUpdate(ctx, bson.M{"key": patientCounterKey}, update, opts).Decode(&counter); err != nil {
		return "", fmt.Errorf("failed to increment patient counter: %w", err)
	}
	return strconv.FormatInt(counter.Value, 10), nil
}

// seedCounter initializes the sequence at the highest numeric patient ID.
func (r *MongoPatientRepo) seedCounter() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"id": bson.M{"$regex": "^[0-9]+$"}}},
		{"$addFields": bson.M{"numericId": bson.M{"$toLong": "$id"}}},
		{"$sort": bson.M{"numericId": -1}},
		{"$limit": 1},
		{"$project": bson.M{"_id": 0, "numericId": 1}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("failed to find max patient id: %w", err)
	}
	defer cursor.Close(ctx)

	var startValue int64
	if cursor.Next(ctx) {
		var result struct {
			NumericID int64 `bson:"numericId"`
		}
		if err := cursor.Decode(&result); err != nil {
			return fmt.Errorf("failed to decode max patient id: %w", err)
		}
		startValue = result.NumericID
	}

	now := time.Now().UTC()
	update := bson.M{
		"$setOnInsert": bson.M{
			"value":     startValue,
			"createdBy": "system",
			"updatedBy": "system",
			"source":    models.SourceAPI,
			"createdAt": now,
			"updatedAt": now,
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.counterColl.UpdateOne(ctx, bson.M{"key": patientCounterKey}, update, opts); err != nil {
		return fmt.Errorf("failed to seed patient counter: %w", err)
	}
	return nil
}
