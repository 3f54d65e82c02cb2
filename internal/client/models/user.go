// Package models declares the JSON shapes exchanged with the DevPair API.
//
// Response types mirror what the server returns; request payloads are
// separate types so that client-only fields (such as a password
// confirmation) are never serialised.
package models

import (
	"strings"
	"time"
)

// User is the identity record returned by /api/auth/me, /api/users/me and
// the user listing endpoints.
type User struct {
	ID              int64  `json:"id"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	FullName        string `json:"full_name"`
	Bio             string `json:"bio"`
	GithubURL       string `json:"github_url"`
	LinkedinURL     string `json:"linkedin_url"`
	PortfolioURL    string `json:"portfolio_url"`
	Skills          string `json:"skills"`
	ExperienceLevel string `json:"experience_level"`
	AvatarURL       string `json:"avatar_url"`
	IsAvailable     bool   `json:"is_available"`
	DarkMode        bool   `json:"dark_mode"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// SkillList splits the comma-delimited Skills field.
func (u User) SkillList() []string {
	return SplitList(u.Skills)
}

// DisplayName prefers the full name and falls back to the username.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	FullName        string `json:"full_name"`
	Bio             string `json:"bio,omitempty"`
	GithubURL       string `json:"github_url,omitempty"`
	LinkedinURL     string `json:"linkedin_url,omitempty"`
	Skills          string `json:"skills,omitempty"`
	ExperienceLevel string `json:"experience_level,omitempty"`
}

// ProfileUpdate is a partial update of the current user. Nil fields are
// not sent.
type ProfileUpdate struct {
	FullName        *string `json:"full_name,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	GithubURL       *string `json:"github_url,omitempty"`
	LinkedinURL     *string `json:"linkedin_url,omitempty"`
	PortfolioURL    *string `json:"portfolio_url,omitempty"`
	Skills          *string `json:"skills,omitempty"`
	ExperienceLevel *string `json:"experience_level,omitempty"`
	IsAvailable     *bool   `json:"is_available,omitempty"`
	DarkMode        *bool   `json:"dark_mode,omitempty"`
}

// UserInput is the payload of the user administration endpoints.
type UserInput struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Bio             string `json:"bio,omitempty"`
	GithubUsername  string `json:"github_username,omitempty"`
	Skills          string `json:"skills"`
	ExperienceLevel string `json:"experience_level"`
}

// Skill is an entry of the skill catalogue.
type Skill struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// UserSkill links a user to a catalogue skill with a 1..5 proficiency.
type UserSkill struct {
	ID               int64  `json:"id"`
	UserID           int64  `json:"user_id"`
	SkillID          int64  `json:"skill_id"`
	ProficiencyLevel int    `json:"proficiency_level"`
	Skill            *Skill `json:"skill,omitempty"`
}

type UserSkillInput struct {
	UserID           int64 `json:"user_id"`
	SkillID          int64 `json:"skill_id"`
	ProficiencyLevel int   `json:"proficiency_level"`
}

// SplitList splits a comma-delimited field, trimming blanks.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTime parses the timestamp formats produced by the API. Naive
// timestamps are taken as UTC.
func ParseTime(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
