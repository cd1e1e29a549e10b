// Package entity contains the core business objects of the project.
package entity

import "time"

// UserProfile is the public profile of a user. The same document carries the ghost mode flag.
type UserProfile struct {
	UID                      string    `json:"uid"`                         // Identifier issued by the auth provider.
	DisplayName              string    `json:"display_name"`                // Name shown to nearby users.
	Email                    string    `json:"email"`                       // Contact email from the auth provider.
	ProfilePictureURL        string    `json:"profile_picture_url"`         // Download URL returned by media storage.
	IsLocationSharingEnabled bool      `json:"is_location_sharing_enabled"` // Defaults to true; false hides the user from proximity queries.
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// ParticipantInfo is the display snapshot copied into buzzes and chats.
type ParticipantInfo struct {
	DisplayName       string `json:"display_name"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

// Snapshot returns the profile's display fields as they are right now.
func (p *UserProfile) Snapshot() ParticipantInfo {
	return ParticipantInfo{
		DisplayName:       p.DisplayName,
		ProfilePictureURL: p.ProfilePictureURL,
	}
}
