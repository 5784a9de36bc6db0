package models

// SaveProfileRequest is the POST /profile body. The server generates the
// userId; region is geocoded on save.
type SaveProfileRequest struct {
	Region               string              `json:"region" validate:"required"`
	Birthday             string              `json:"birthday" validate:"required,datetime=2006-01-02"`
	Gender               string              `json:"gender" validate:"omitempty,oneof=male female other"`
	NotificationsEnabled *bool               `json:"notificationsEnabled" validate:"required"`
	Nickname             string              `json:"nickname" validate:"omitempty,min=1,max=30"`
	Family               []FamilyMemberInput `json:"family" validate:"omitempty,max=10,dive"`
}

// FamilyMemberInput accepts both birthday formats seen from clients
// (YYYY-MM-DD and YYYY/MM/DD); the boundary normalizes to YYYY-MM-DD.
type FamilyMemberInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Birthday string `json:"birthday" validate:"required,birthday"`
	Gender   string `json:"gender" validate:"required,oneof=male female other"`
}

// UpdateProfileRequest is the PATCH /profile/{userId} body. Only supplied
// fields are written; a body with zero fields set is rejected.
type UpdateProfileRequest struct {
	Region               *string `json:"region" validate:"omitempty,min=1"`
	Birthday             *string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
	Gender               *string `json:"gender" validate:"omitempty,oneof=male female other"`
	NotificationsEnabled *bool   `json:"notificationsEnabled"`
	Nickname             *string `json:"nickname" validate:"omitempty,min=1,max=30"`
}

// IsEmpty reports whether no updatable field was supplied.
func (r *UpdateProfileRequest) IsEmpty() bool {
	return r.Region == nil && r.Birthday == nil && r.Gender == nil &&
		r.NotificationsEnabled == nil && r.Nickname == nil
}

// ReplaceFamilyRequest is the PUT /profile/{userId} body. An empty list
// removes the family attribute entirely.
type ReplaceFamilyRequest struct {
	Family []FamilyMemberInput `json:"family" validate:"required,max=10,dive"`
}

// ClothesRequest is the POST /clothes body.
type ClothesRequest struct {
	UserID       string `json:"userId" validate:"required"`
	WithProducts bool   `json:"withProducts"`
}

// SaveProfileResponse is the success body for profile mutations.
type SaveProfileResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}
