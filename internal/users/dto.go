package users

import "time"

// UserDTO is the outward-facing representation of an account.
type UserDTO struct {
	UserID      int64      `json:"userId"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	UserUUID    string     `json:"userUuid"`
	CreatedOn   time.Time  `json:"createdOn"`
	LastLoginOn *time.Time `json:"lastLoginOn"`
	IsLocked    bool       `json:"isLocked"`
	Role        string     `json:"role"`
}

// ToDTO converts a User for API responses. The password hash is dropped.
func ToDTO(user User) UserDTO {
	return UserDTO{
		UserID:      user.ID,
		Username:    user.Username,
		Email:       user.Email,
		UserUUID:    user.UUID,
		CreatedOn:   user.CreatedOn,
		LastLoginOn: user.LastLoginOn,
		IsLocked:    user.IsLocked,
		Role:        user.Role,
	}
}
