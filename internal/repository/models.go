package repository

// Credential is the single persisted Tenderly credential record. Exactly one
// row exists per slot and it is always replaced wholesale.
type Credential struct {
	Slot      string `gorm:"primaryKey;size:32"`
	UserID    string `gorm:"not null"`
	ProjectID string `gorm:"not null"`
	AccessKey string `gorm:"not null"`
}

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}
