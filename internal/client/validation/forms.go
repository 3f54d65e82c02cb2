package validation

import (
	"github.com/dmitrijs2005/devpair/internal/client/models"
)

// DateLayout is the due-date format accepted by the milestone form.
const DateLayout = "2006-01-02"

// DefaultMaxCollaborators pre-fills a new project form.
const DefaultMaxCollaborators = 3

// Allowed values of enumerated fields.
var (
	ExperienceLevels = []string{"beginner", "intermediate", "advanced", "expert"}
	DifficultyLevels = []string{"beginner", "intermediate", "advanced"}
	ProjectStatuses  = []string{"ongoing", "completed", "paused"}
	SessionStatuses  = []string{"pending", "active", "completed", "cancelled"}
	RequestStatuses  = []string{"pending", "approved", "rejected"}
)

type LoginForm struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (LoginForm) messages() map[string]string {
	return map[string]string{
		"username.required": "Username is required",
		"password.required": "Password is required",
	}
}

type RegisterForm struct {
	Username        string `json:"username" validate:"required,min=3,max=20,username"`
	Email           string `json:"email" validate:"required,email"`
	FullName        string `json:"full_name" validate:"required,min=2"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	ExperienceLevel string `json:"experience_level" validate:"required,oneof=beginner intermediate advanced expert"`
	Bio             string `json:"bio"`
	GithubURL       string `json:"github_url"`
	LinkedinURL     string `json:"linkedin_url"`
	Skills          string `json:"skills"`
}

func (RegisterForm) messages() map[string]string {
	return map[string]string{
		"username.required":         "Username is required",
		"username.min":              "Username must be at least 3 characters",
		"username.max":              "Username must be less than 20 characters",
		"username.username":         "Username can only contain letters, numbers, and underscores",
		"email.required":            "Email is required",
		"email.email":               "Invalid email format",
		"full_name.required":        "Full name is required",
		"full_name.min":             "Full name must be at least 2 characters",
		"password.required":         "Password is required",
		"password.min":              "Password must be at least 6 characters",
		"confirm_password.required": "Please confirm your password",
		"confirm_password.eqfield":  "Passwords must match",
		"experience_level.required": "Experience level is required",
		"experience_level.oneof":    "Please select a valid experience level",
	}
}

// Request drops the confirmation and returns the wire payload.
func (f RegisterForm) Request() models.RegisterRequest {
	return models.RegisterRequest{
		Username:        f.Username,
		Email:           f.Email,
		Password:        f.Password,
		FullName:        f.FullName,
		Bio:             f.Bio,
		GithubURL:       f.GithubURL,
		LinkedinURL:     f.LinkedinURL,
		Skills:          f.Skills,
		ExperienceLevel: f.ExperienceLevel,
	}
}

type ProfileForm struct {
	FullName        string `json:"full_name" validate:"required,min=2"`
	Bio             string `json:"bio" validate:"max=500"`
	GithubURL       string `json:"github_url" validate:"omitempty,url,contains=github.com"`
	LinkedinURL     string `json:"linkedin_url" validate:"omitempty,url,contains=linkedin.com"`
	PortfolioURL    string `json:"portfolio_url" validate:"omitempty,url"`
	Skills          string `json:"skills" validate:"required"`
	ExperienceLevel string `json:"experience_level" validate:"required,oneof=beginner intermediate advanced expert"`
	IsAvailable     bool   `json:"is_available"`
}

// ProfileFormFrom pre-fills the form with the current identity.
func ProfileFormFrom(u models.User) ProfileForm {
	return ProfileForm{
		FullName:        u.FullName,
		Bio:             u.Bio,
		GithubURL:       u.GithubURL,
		LinkedinURL:     u.LinkedinURL,
		PortfolioURL:    u.PortfolioURL,
		Skills:          u.Skills,
		ExperienceLevel: u.ExperienceLevel,
		IsAvailable:     u.IsAvailable,
	}
}

func (ProfileForm) messages() map[string]string {
	return map[string]string{
		"full_name.required":        "Full name is required",
		"full_name.min":             "Full name must be at least 2 characters",
		"bio.max":                   "Bio must be less than 500 characters",
		"github_url.url":            "Please enter a valid URL",
		"github_url.contains":       "Please enter a valid GitHub URL",
		"linkedin_url.url":          "Please enter a valid URL",
		"linkedin_url.contains":     "Please enter a valid LinkedIn URL",
		"portfolio_url.url":         "Please enter a valid URL",
		"skills.required":           "Skills are required",
		"experience_level.required": "Experience level is required",
		"experience_level.oneof":    "Please select a valid experience level",
	}
}

// Update sends every field of the form.
func (f ProfileForm) Update() models.ProfileUpdate {
	return models.ProfileUpdate{
		FullName:        &f.FullName,
		Bio:             &f.Bio,
		GithubURL:       &f.GithubURL,
		LinkedinURL:     &f.LinkedinURL,
		PortfolioURL:    &f.PortfolioURL,
		Skills:          &f.Skills,
		ExperienceLevel: &f.ExperienceLevel,
		IsAvailable:     &f.IsAvailable,
	}
}

type ProjectForm struct {
	Title            string `json:"title" validate:"required,min=5,max=200"`
	Description      string `json:"description" validate:"required,min=20,max=1000"`
	TechStack        string `json:"tech_stack" validate:"required"`
	Tags             string `json:"tags"`
	DifficultyLevel  string `json:"difficulty_level" validate:"required,oneof=beginner intermediate advanced"`
	Status           string `json:"status" validate:"required,oneof=ongoing completed paused"`
	RepositoryURL    string `json:"repository_url" validate:"omitempty,url"`
	DemoURL          string `json:"demo_url" validate:"omitempty,url"`
	IsPublic         bool   `json:"is_public"`
	MaxCollaborators int    `json:"max_collaborators" validate:"required,min=1,max=10"`
}

// NewProjectForm returns the defaults of an empty project form.
func NewProjectForm() ProjectForm {
	return ProjectForm{
		DifficultyLevel:  "beginner",
		Status:           "ongoing",
		IsPublic:         true,
		MaxCollaborators: DefaultMaxCollaborators,
	}
}

// ProjectFormFrom pre-fills the form for editing p.
func ProjectFormFrom(p models.Project) ProjectForm {
	return ProjectForm{
		Title:            p.Title,
		Description:      p.Description,
		TechStack:        p.TechStack,
		Tags:             p.Tags,
		DifficultyLevel:  p.DifficultyLevel,
		Status:           p.Status,
		RepositoryURL:    p.RepositoryURL,
		DemoURL:          p.DemoURL,
		IsPublic:         p.IsPublic,
		MaxCollaborators: p.MaxCollaborators,
	}
}

func (ProjectForm) messages() map[string]string {
	return map[string]string{
		"title.required":             "Title is required",
		"title.min":                  "Title must be at least 5 characters",
		"title.max":                  "Title must be less than 200 characters",
		"description.required":       "Description is required",
		"description.min":            "Description must be at least 20 characters",
		"description.max":            "Description must be less than 1000 characters",
		"tech_stack.required":        "Tech stack is required",
		"difficulty_level.required":  "Difficulty level is required",
		"difficulty_level.oneof":     "Please select a valid difficulty level",
		"status.required":            "Status is required",
		"status.oneof":               "Please select a valid status",
		"repository_url.url":         "Please enter a valid URL",
		"demo_url.url":               "Please enter a valid URL",
		"max_collaborators.required": "Max collaborators is required",
		"max_collaborators.min":      "Must allow at least 1 collaborator",
		"max_collaborators.max":      "Cannot exceed 10 collaborators",
	}
}

func (f ProjectForm) Input() models.ProjectInput {
	return models.ProjectInput{
		Title:            f.Title,
		Description:      f.Description,
		TechStack:        f.TechStack,
		Tags:             f.Tags,
		DifficultyLevel:  f.DifficultyLevel,
		Status:           f.Status,
		RepositoryURL:    f.RepositoryURL,
		DemoURL:          f.DemoURL,
		IsPublic:         f.IsPublic,
		MaxCollaborators: f.MaxCollaborators,
	}
}

type PairingRequestForm struct {
	Message string `json:"message" validate:"required,min=10,max=500"`
}

func (PairingRequestForm) messages() map[string]string {
	return map[string]string{
		"message.required": "Message is required",
		"message.min":      "Message must be at least 10 characters",
		"message.max":      "Message must be less than 500 characters",
	}
}

type MilestoneForm struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"max=500"`
	DueDate     string `json:"due_date" validate:"omitempty,datetime=2006-01-02,future"`
}

func (MilestoneForm) messages() map[string]string {
	return map[string]string{
		"title.required":    "Title is required",
		"title.min":         "Title must be at least 3 characters",
		"title.max":         "Title must be less than 200 characters",
		"description.max":   "Description must be less than 500 characters",
		"due_date.datetime": "Please enter a date as YYYY-MM-DD",
		"due_date.future":   "Due date must be in the future",
	}
}

func (f MilestoneForm) Input() models.MilestoneInput {
	return models.MilestoneInput{Title: f.Title, Description: f.Description, DueDate: f.DueDate}
}

type CommentForm struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

func (CommentForm) messages() map[string]string {
	return map[string]string{
		"content.required": "Comment is required",
		"content.min":      "Comment cannot be empty",
		"content.max":      "Comment must be less than 1000 characters",
	}
}

type SkillForm struct {
	SkillID          int64 `json:"skill_id" validate:"required"`
	ProficiencyLevel int   `json:"proficiency_level" validate:"required,min=1,max=5"`
}

func (SkillForm) messages() map[string]string {
	return map[string]string{
		"skill_id.required":          "Skill is required",
		"proficiency_level.required": "Proficiency is required",
		"proficiency_level.min":      "Proficiency must be between 1 and 5",
		"proficiency_level.max":      "Proficiency must be between 1 and 5",
	}
}

func (f SkillForm) Input(userID int64) models.UserSkillInput {
	return models.UserSkillInput{UserID: userID, SkillID: f.SkillID, ProficiencyLevel: f.ProficiencyLevel}
}

type UserForm struct {
	Username        string `json:"username" validate:"required,min=3,max=20"`
	Email           string `json:"email" validate:"required,email"`
	Bio             string `json:"bio" validate:"max=500"`
	GithubUsername  string `json:"github_username" validate:"omitempty,ghuser"`
	Skills          string `json:"skills" validate:"required"`
	ExperienceLevel string `json:"experience_level" validate:"required,oneof=beginner intermediate advanced"`
}

func UserFormFrom(u models.User) UserForm {
	return UserForm{
		Username:        u.Username,
		Email:           u.Email,
		Bio:             u.Bio,
		Skills:          u.Skills,
		ExperienceLevel: u.ExperienceLevel,
	}
}

func (UserForm) messages() map[string]string {
	return map[string]string{
		"username.required":         "Username is required",
		"username.min":              "Username must be at least 3 characters",
		"username.max":              "Username must be less than 20 characters",
		"email.required":            "Email is required",
		"email.email":               "Invalid email format",
		"bio.max":                   "Bio must be less than 500 characters",
		"github_username.ghuser":    "GitHub username can only contain letters, numbers, and hyphens",
		"skills.required":           "Skills are required",
		"experience_level.required": "Experience level is required",
		"experience_level.oneof":    "Please select a valid experience level",
	}
}

func (f UserForm) Input() models.UserInput {
	return models.UserInput{
		Username:        f.Username,
		Email:           f.Email,
		Bio:             f.Bio,
		GithubUsername:  f.GithubUsername,
		Skills:          f.Skills,
		ExperienceLevel: f.ExperienceLevel,
	}
}

type PairingSessionForm struct {
	UserID          int64  `json:"user_id" validate:"required"`
	ProjectID       int64  `json:"project_id" validate:"required"`
	Status          string `json:"status" validate:"required,oneof=pending active completed cancelled"`
	Notes           string `json:"notes" validate:"max=1000"`
	DurationMinutes int    `json:"duration_minutes" validate:"min=0"`
	Rating          int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

func (PairingSessionForm) messages() map[string]string {
	return map[string]string{
		"user_id.required":     "User is required",
		"project_id.required":  "Project is required",
		"status.required":      "Status is required",
		"status.oneof":         "Please select a valid status",
		"notes.max":            "Notes must be less than 1000 characters",
		"duration_minutes.min": "Duration cannot be negative",
		"rating.min":           "Rating must be between 1 and 5",
		"rating.max":           "Rating must be between 1 and 5",
	}
}

func (f PairingSessionForm) Input() models.PairingSessionInput {
	return models.PairingSessionInput{
		UserID:          f.UserID,
		ProjectID:       f.ProjectID,
		Status:          f.Status,
		Notes:           f.Notes,
		DurationMinutes: f.DurationMinutes,
		Rating:          f.Rating,
	}
}
