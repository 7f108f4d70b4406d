package models

// User represents a registered Feastly user.
type User struct {
	ID           int    `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Email        string `json:"email" gorm:"index;type:varchar(255)" validate:"required,email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	ProfileImage string `json:"profileImage,omitempty"`
	PasswordHash string `json:"-" gorm:"type:varchar(255)"` // Never serialized
}

// ProfileUpdate carries a partial set of profile fields. Nil pointers mean
// "leave the field as it is".
type ProfileUpdate struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
}

// Apply merges the non-nil fields of the update into the user.
func (p ProfileUpdate) Apply(user *User) {
	if p.Name != nil {
		user.Name = *p.Name
	}
	if p.Email != nil {
		user.Email = *p.Email
	}
	if p.Phone != nil {
		user.Phone = *p.Phone
	}
	if p.Address != nil {
		user.Address = *p.Address
	}
	if p.ProfileImage != nil {
		user.ProfileImage = *p.ProfileImage
	}
}
