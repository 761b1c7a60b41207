package service

import (
	"github.com/devconnector/devconnector-api/internal/core/domain"
	"github.com/devconnector/devconnector-api/internal/core/ports"
)

// buildProfileView shapes a stored profile and its owner into the externally
// visible projection. Only the owner's display fields cross the boundary;
// email, password hash and everything else on the account stay internal.
func buildProfileView(p *domain.Profile, owner *domain.User) *ports.ProfileView {
	return &ports.ProfileView{
		Profile:    *p,
		UserName:   owner.Name,
		UserAvatar: owner.AvatarURL,
	}
}
