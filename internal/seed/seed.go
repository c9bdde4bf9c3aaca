package seed

import (
	"fmt"

	"github.com/mergington-high/activity-directory/internal/store"
)

type ActivitySeed struct {
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// Catalog is the fixed set of activities loaded at startup. It is data, not
// logic: Run upserts it verbatim and repeated runs leave the store unchanged.
var Catalog = map[string]ActivitySeed{
	"Chess Club": {
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	},
	"Programming Class": {
		Description:     "Learn programming fundamentals and build software projects",
		Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 20,
		Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
	},
	"Gym Class": {
		Description:     "Physical education and sports activities",
		Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
		MaxParticipants: 30,
		Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
	},
	"Soccer Team": {
		Description:     "Join the school soccer team and compete in local leagues",
		Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 18,
		Participants:    []string{"lucas@mergington.edu", "mia@mergington.edu"},
	},
	"Basketball Club": {
		Description:     "Practice basketball skills and play friendly matches",
		Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
		MaxParticipants: 15,
		Participants:    []string{"liam@mergington.edu", "ava@mergington.edu"},
	},
	"Art Club": {
		Description:     "Explore painting, drawing, and other visual arts",
		Schedule:        "Mondays, 3:30 PM - 5:00 PM",
		MaxParticipants: 16,
		Participants:    []string{"noah@mergington.edu", "isabella@mergington.edu"},
	},
	"Drama Society": {
		Description:     "Participate in acting, stage production, and school plays",
		Schedule:        "Fridays, 4:00 PM - 5:30 PM",
		MaxParticipants: 20,
		Participants:    []string{"charlotte@mergington.edu", "jackson@mergington.edu"},
	},
	"Math Club": {
		Description:     "Solve challenging math problems and prepare for competitions",
		Schedule:        "Thursdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 14,
		Participants:    []string{"amelia@mergington.edu", "benjamin@mergington.edu"},
	},
	"Science Olympiad": {
		Description:     "Engage in science experiments and academic competitions",
		Schedule:        "Wednesdays, 4:00 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{"elijah@mergington.edu", "harper@mergington.edu"},
	},
}

// Run upserts the catalog into the store. Any failure aborts seeding and is
// returned; callers treat it as fatal to startup.
func Run(s *store.Store) error {
	for name, details := range Catalog {
		if err := s.UpsertActivity(name, details.Description, details.Schedule, details.MaxParticipants); err != nil {
			return fmt.Errorf("seed activity %q: %w", name, err)
		}
		for _, email := range details.Participants {
			if err := s.UpsertParticipant(name, email); err != nil {
				return fmt.Errorf("seed participant %q for %q: %w", email, name, err)
			}
		}
	}
	return nil
}
