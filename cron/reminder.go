package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"caregrid/config"
	appointmentRepo "caregrid/database/repository/appointment"
	"caregrid/models"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeAppointmentReminder = "reminder:appointment"

// ReminderPayload is the task body for a scheduled appointment reminder.
type ReminderPayload struct {
	AppointmentID string    `json:"appointmentId"`
	PatientID     string    `json:"patientId"`
	DoctorName    string    `json:"doctorName"`
	Start         time.Time `json:"start"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// AsynqReminderScheduler enqueues reminder tasks due shortly before an
// appointment starts.
type AsynqReminderScheduler struct {
	client *asynq.Client
	lead   time.Duration
}

// NewReminderScheduler creates a scheduler backed by the reminder queue.
func NewReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		client: asynq.NewClient(redisOpts()),
		lead:   time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}
}

// ScheduleAppointmentReminder enqueues a reminder for the appointment.
// Appointments starting inside the lead window get no reminder.
func (s *AsynqReminderScheduler) ScheduleAppointmentReminder(appointment *models.Appointment) error {
	fireAt := appointment.Start.Add(-s.lead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(ReminderPayload{
		AppointmentID: appointment.ID,
		PatientID:     appointment.PatientID,
		DoctorName:    appointment.DoctorName,
		Start:         appointment.Start,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeAppointmentReminder, payload)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(appointments appointmentRepo.AppointmentRepository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAppointmentReminder, handleReminderTask(appointments))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(appointments appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] Invalid payload: %v", err)
			return err
		}

		appointment, err := appointments.GetByID(p.AppointmentID)
		if err != nil {
			return err
		}
		// Cancelled or deleted appointments get no reminder.
		if appointment == nil || appointment.Status != models.StatusBooked {
			return nil
		}

		log.Printf("[ReminderHandler] Reminding patient %s: appointment with %s at %s",
			p.PatientID, p.DoctorName, p.Start.Format(time.RFC3339))

		return appointments.MarkReminderSent(p.AppointmentID, time.Now().UTC())
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
