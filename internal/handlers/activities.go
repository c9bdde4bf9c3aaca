package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"gorm.io/gorm"

	"github.com/mergington-high/activity-directory/internal/store"
)

type ActivityHandler struct {
	store *store.Store
}

func NewActivityHandler(store *store.Store) *ActivityHandler {
	return &ActivityHandler{store: store}
}

type ActivityDetail struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

type ListActivitiesResponse struct {
	Body map[string]ActivityDetail
}

func (h *ActivityHandler) HandleListActivities(ctx context.Context, input *struct{}) (*ListActivitiesResponse, error) {
	activities, err := h.store.ListActivities()
	if err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}

	res := &ListActivitiesResponse{Body: make(map[string]ActivityDetail, len(activities))}
	for _, activity := range activities {
		emails := make([]string, 0, len(activity.Participants))
		for _, p := range activity.Participants {
			emails = append(emails, p.Email)
		}
		res.Body[activity.Name] = ActivityDetail{
			Description:     activity.Description,
			Schedule:        activity.Schedule,
			MaxParticipants: activity.MaxParticipants,
			Participants:    emails,
		}
	}
	return res, nil
}

type SignupRequest struct {
	ActivityName string `path:"activity_name" doc:"Name of the activity to sign up for"`
	Email        string `query:"email" required:"true" doc:"Email address of the student"`
}

type MessageResponse struct {
	Body struct {
		Message string `json:"message"`
	}
}

// HandleSignup runs three reads before the insert. The reads are not wrapped
// in a transaction, so two concurrent signups can both pass the capacity check
// for the last open slot; the unique index on (activity_name, email) still
// rejects a concurrent duplicate at insert time.
func (h *ActivityHandler) HandleSignup(ctx context.Context, input *SignupRequest) (*MessageResponse, error) {
	// 1. Activity must exist
	activity, err := h.store.GetActivity(input.ActivityName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("Activity not found")
		}
		return nil, huma.Error500InternalServerError(err.Error())
	}

	// 2. Activity must not be full
	count, err := h.store.CountParticipants(input.ActivityName)
	if err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}
	if count >= int64(activity.MaxParticipants) {
		return nil, huma.Error400BadRequest("Activity is full")
	}

	// 3. Student must not already be signed up
	if _, err := h.store.FindParticipant(input.ActivityName, input.Email); err == nil {
		return nil, huma.Error400BadRequest("Already signed up for this activity")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, huma.Error500InternalServerError(err.Error())
	}

	// 4. Add participant
	if err := h.store.InsertParticipant(input.ActivityName, input.Email); err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}

	res := &MessageResponse{}
	res.Body.Message = fmt.Sprintf("Successfully signed up for %s", input.ActivityName)
	return res, nil
}

type UnregisterRequest struct {
	ActivityName string `path:"activity_name" doc:"Name of the activity"`
	Email        string `path:"email" doc:"Email address of the participant to remove"`
}

func (h *ActivityHandler) HandleUnregister(ctx context.Context, input *UnregisterRequest) (*MessageResponse, error) {
	// 1. Membership must exist
	if _, err := h.store.FindParticipant(input.ActivityName, input.Email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("Participant not found in activity")
		}
		return nil, huma.Error500InternalServerError(err.Error())
	}

	// 2. Remove participant
	if err := h.store.DeleteParticipant(input.ActivityName, input.Email); err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}

	res := &MessageResponse{}
	res.Body.Message = fmt.Sprintf("Successfully removed from %s", input.ActivityName)
	return res, nil
}
