package scheduleRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"caregrid/config"
	"caregrid/database"
	"caregrid/models"
	"caregrid/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoScheduleRepo implements ScheduleRepository using MongoDB with a Redis
// read-through cache in front of lookups.
type MongoScheduleRepo struct {
	coll  *mongo.Collection
	cache *redis.Client
}

// NewMongoScheduleRepo creates a new instance of ScheduleRepository using MongoDB.
func NewMongoScheduleRepo() ScheduleRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("doctor_schedules")
	repo := &MongoScheduleRepo{coll: coll, cache: utils.GetCacheClient()}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoScheduleRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "doctorId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByDoctorID retrieves a doctor's schedule, serving from cache when possible.
func (r *MongoScheduleRepo) GetByDoctorID(doctorID string) (*models.DoctorSchedule, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cacheKey := utils.ScheduleCachePrefix + doctorID
	if cached, err := r.cache.Get(ctx, cacheKey).Result(); err == nil {
		var schedule models.DoctorSchedule
		if err := json.Unmarshal([]byte(cached), &schedule); err == nil {
			return &schedule, nil
		}
		// Corrupt cache entry; drop it and fall through to Mongo.
		_ = r.cache.Del(ctx, cacheKey).Err()
	}

	var schedule models.DoctorSchedule
	if err := r.coll.FindOne(ctx, bson.M{"doctorId": doctorID}).Decode(&schedule); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch schedule for doctor %s: %w", doctorID, err)
	}

	if payload, err := json.Marshal(schedule); err == nil {
		_ = r.cache.Set(ctx, cacheKey, payload, utils.ScheduleCacheTTL).Err()
	}
	return &schedule, nil
}

// Upsert writes the schedule template and invalidates the cached copy.
func (r *MongoScheduleRepo) Upsert(schedule *models.DoctorSchedule) (*models.DoctorSchedule, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now().UTC()
	filter := bson.M{"doctorId": schedule.DoctorID}
	update := bson.M{
		"$set": bson.M{
			"doctorId":           schedule.DoctorID,
			"doctorName":         schedule.DoctorName,
			"department":         schedule.Department,
			"weeklyAvailability": schedule.WeeklyAvailability,
			"updatedBy":          schedule.UpdatedBy,
			"source":             schedule.Source,
			"updatedAt":          now,
		},
		"$setOnInsert": bson.M{
			"createdBy": schedule.CreatedBy,
			"createdAt": now,
		},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var stored models.DoctorSchedule
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return nil, fmt.Errorf("failed to upsert schedule for doctor %s: %w", schedule.DoctorID, err)
	}

	_ = r.cache.Del(ctx, utils.ScheduleCachePrefix+schedule.DoctorID).Err()
	return &stored, nil
}
