package store

import (
	"gorm.io/gorm"

	"github.com/mergington-high/activity-directory/internal/models"
)

// Store is the only component that touches the database. Each method is a
// single logical operation; callers sequence them without cross-call
// transactions.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// UpsertActivity creates the activity or overwrites its description, schedule
// and capacity, keyed by name.
func (s *Store) UpsertActivity(name, description, schedule string, maxParticipants int) error {
	var activity models.Activity
	if err := s.db.FirstOrInit(&activity, models.Activity{Name: name}).Error; err != nil {
		return err
	}

	activity.Description = description
	activity.Schedule = schedule
	activity.MaxParticipants = maxParticipants

	return s.db.Save(&activity).Error
}

// UpsertParticipant creates the membership if the pair is new, otherwise
// leaves the existing row untouched.
func (s *Store) UpsertParticipant(activityName, email string) error {
	var participant models.Participant
	return s.db.
		Where(models.Participant{ActivityName: activityName, Email: email}).
		FirstOrCreate(&participant).Error
}

func (s *Store) ListActivities() ([]models.Activity, error) {
	var activities []models.Activity
	if err := s.db.Preload("Participants").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

// GetActivity returns the activity with its participants, or
// gorm.ErrRecordNotFound.
func (s *Store) GetActivity(name string) (*models.Activity, error) {
	var activity models.Activity
	if err := s.db.Preload("Participants").First(&activity, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

func (s *Store) CountParticipants(activityName string) (int64, error) {
	var count int64
	err := s.db.Model(&models.Participant{}).Where("activity_name = ?", activityName).Count(&count).Error
	return count, err
}

// FindParticipant returns the membership row, or gorm.ErrRecordNotFound.
func (s *Store) FindParticipant(activityName, email string) (*models.Participant, error) {
	var participant models.Participant
	err := s.db.Where("activity_name = ? AND email = ?", activityName, email).First(&participant).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

// InsertParticipant adds the membership unconditionally; the caller has
// already validated existence, capacity and uniqueness.
func (s *Store) InsertParticipant(activityName, email string) error {
	participant := models.Participant{ActivityName: activityName, Email: email}
	return s.db.Create(&participant).Error
}

// DeleteParticipant removes the membership row for good. Participant carries
// gorm.Model, so the delete must be unscoped: a soft-deleted row would still
// occupy the (activity_name, email) unique index and block a later re-signup.
// Deleting an absent pair is a no-op; callers check existence first so they
// can report not-found.
func (s *Store) DeleteParticipant(activityName, email string) error {
	return s.db.Unscoped().
		Where("activity_name = ? AND email = ?", activityName, email).
		Delete(&models.Participant{}).Error
}
