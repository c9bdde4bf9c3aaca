package models

type Activity struct {
	Name            string        `gorm:"primaryKey" json:"name"`
	Description     string        `json:"description"`
	Schedule        string        `json:"schedule"`
	MaxParticipants int           `json:"max_participants"`
	Participants    []Participant `gorm:"foreignKey:ActivityName;references:Name" json:"participants"`
}
