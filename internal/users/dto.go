package users

import (
	"strings"

	"github.com/mak-alamin/bestools-server/pkg/db/models"
	"github.com/mak-alamin/bestools-server/pkg/enums"
)

// ProfileInput carries the writable profile fields of a user. Role is
// deliberately absent: the profile routes can never escalate privileges.
type ProfileInput struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,max=120"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=40"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=300"`
}

func (p ProfileInput) toModel(email string) *models.User {
	user := &models.User{
		Email: email,
		Role:  enums.RoleUser,
	}
	if p.Name != nil {
		user.Name = strings.TrimSpace(*p.Name)
	}
	if p.Phone != nil {
		user.Phone = p.Phone
	}
	if p.Address != nil {
		user.Address = p.Address
	}
	return user
}

// assignments lists only the submitted fields, so an upsert leaves anything
// unspecified untouched.
func (p ProfileInput) assignments() map[string]any {
	out := map[string]any{}
	if p.Name != nil {
		out["name"] = strings.TrimSpace(*p.Name)
	}
	if p.Phone != nil {
		out["phone"] = *p.Phone
	}
	if p.Address != nil {
		out["address"] = *p.Address
	}
	return out
}

// NormalizeEmail lowers and trims an email used as a natural key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
