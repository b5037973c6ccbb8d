package db_models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Avatar       string
	Role         string `gorm:"default:user"`
	// Running total of leaderboard points. Only ever incremented, by
	// recording a finished quiz attempt.
	Score   int
	History []QuizHistoryEntry `gorm:"foreignKey:AccountID"`
}
