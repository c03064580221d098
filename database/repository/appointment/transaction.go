package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"caregrid/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateIfFree inserts the appointment inside a transaction that first
// re-checks the overlap condition. A plain find-then-insert leaves a window
// where two conflicting bookings both pass the check; running both steps in
// one transaction closes it.
func (r *MongoAppointmentRepo) CreateIfFree(ctx context.Context, appointment *models.Appointment) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	now := time.Now().UTC()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now

	txnFn := func(sc mongo.SessionContext) error {
		// Half-open overlap: existing.start < new.end && existing.end > new.start.
		overlapFilter := bson.M{
			"doctorId": appointment.DoctorID,
			"status":   models.StatusBooked,
			"start":    bson.M{"$lt": appointment.End},
			"end":      bson.M{"$gt": appointment.Start},
		}

		count, err := r.coll.CountDocuments(sc, overlapFilter)
		if err != nil {
			return fmt.Errorf("overlap check failed: %w", err)
		}
		if count > 0 {
			return ErrBookingConflict
		}

		if _, err := r.coll.InsertOne(sc, appointment); err != nil {
			return fmt.Errorf("insert appointment failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrBookingConflict) {
			return ErrBookingConflict
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}
