package models

// Rider is a club member record.
type Rider struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"column:first_name" json:"first_name"`
	LastName  string `gorm:"column:last_name" json:"last_name"`
	Email     string `gorm:"column:email" json:"email"`
}

// TableName returns the table name for the Rider model.
func (Rider) TableName() string {
	return "riders"
}

// Candidate is one possible match for a registering rider, enriched
// with participation history so a human can pick the right record.
type Candidate struct {
	ID                  uint   `json:"id"`
	FirstName           string `json:"first_name"`
	LastName            string `json:"last_name"`
	FullName            string `json:"full_name"`
	FirstSeasonSeen     *int   `json:"first_season_seen,omitempty"`
	TotalParticipations int    `json:"total_participations"`
}

// ParticipationStats summarizes one rider's recorded results.
type ParticipationStats struct {
	RiderID     uint
	FirstSeason int
	Total       int
}
