package model

type User struct {
	BaseModel
	Name  string `json:"name" gorm:"column:name"`
	Email string `json:"email" gorm:"column:email"`
	Role  string `json:"role" gorm:"column:role"`
}

func (User) TableName() string {
	return "users"
}
