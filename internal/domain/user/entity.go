package user

// User is an account that can sign in to the application. Username is the
// identity recorded on uploads and downloads, stored there as plain text
// rather than a foreign key.
type User struct {
	ID           int64  `gorm:"column:id;primaryKey" json:"id"`
	Username     string `gorm:"column:username;uniqueIndex" json:"username"`
	PasswordHash string `gorm:"column:password" json:"-"`
	Department   string `gorm:"column:department" json:"department"`
	Name         string `gorm:"column:name" json:"name"`
}

func (User) TableName() string { return "users" }
