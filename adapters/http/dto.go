package http

import (
	"time"

	"github.com/google/uuid"

	aboutUC "github.com/hoangtran/portfolio-api/internal/application/usecase/about"
	contactUC "github.com/hoangtran/portfolio-api/internal/application/usecase/contact"
	experienceUC "github.com/hoangtran/portfolio-api/internal/application/usecase/experience"
	"github.com/hoangtran/portfolio-api/internal/application/usecase/portfolio"
	projectUC "github.com/hoangtran/portfolio-api/internal/application/usecase/project"
	skillUC "github.com/hoangtran/portfolio-api/internal/application/usecase/skill"
	"github.com/hoangtran/portfolio-api/internal/domain/about"
	"github.com/hoangtran/portfolio-api/internal/domain/contact"
	"github.com/hoangtran/portfolio-api/internal/domain/experience"
	"github.com/hoangtran/portfolio-api/internal/domain/project"
	"github.com/hoangtran/portfolio-api/internal/domain/skill"
	"github.com/hoangtran/portfolio-api/pkg/patch"
)

// Project DTOs

type CreateProjectRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Technologies  []string `json:"technologies"`
	RepositoryURL string   `json:"repository_url"`
	DemoURL       *string  `json:"demo_url"`
	VideoURL      *string  `json:"video_url"`
	Featured      bool     `json:"featured"`
	DisplayOrder  int      `json:"display_order"`
}

func (r *CreateProjectRequest) ToInput() projectUC.CreateProjectInput {
	return projectUC.CreateProjectInput{
		Title:         r.Title,
		Description:   r.Description,
		Technologies:  r.Technologies,
		RepositoryURL: r.RepositoryURL,
		DemoURL:       r.DemoURL,
		VideoURL:      r.VideoURL,
		Featured:      r.Featured,
		DisplayOrder:  r.DisplayOrder,
	}
}

// UpdateProjectRequest carries tri-state fields: a key left out of the JSON
// body is untouched, an explicit null clears the optional field.
type UpdateProjectRequest struct {
	Title         patch.Field[string]   `json:"title"`
	Description   patch.Field[string]   `json:"description"`
	Technologies  patch.Field[[]string] `json:"technologies"`
	RepositoryURL patch.Field[string]   `json:"repository_url"`
	DemoURL       patch.Field[string]   `json:"demo_url"`
	VideoURL      patch.Field[string]   `json:"video_url"`
	Featured      patch.Field[bool]     `json:"featured"`
	DisplayOrder  patch.Field[int]      `json:"display_order"`
}

func (r *UpdateProjectRequest) ToInput(id uuid.UUID) projectUC.UpdateProjectInput {
	return projectUC.UpdateProjectInput{
		ID:            id,
		Title:         r.Title,
		Description:   r.Description,
		Technologies:  r.Technologies,
		RepositoryURL: r.RepositoryURL,
		DemoURL:       r.DemoURL,
		VideoURL:      r.VideoURL,
		Featured:      r.Featured,
		DisplayOrder:  r.DisplayOrder,
	}
}

type ProjectDTO struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Technologies  []string  `json:"technologies"`
	RepositoryURL string    `json:"repository_url"`
	DemoURL       *string   `json:"demo_url"`
	VideoURL      *string   `json:"video_url"`
	Featured      bool      `json:"featured"`
	DisplayOrder  int       `json:"display_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToProjectDTO(p *project.Project) ProjectDTO {
	return ProjectDTO{
		ID:            p.ID.String(),
		Title:         p.Title,
		Description:   p.Description,
		Technologies:  p.Technologies,
		RepositoryURL: p.RepositoryURL,
		DemoURL:       p.DemoURL,
		VideoURL:      p.VideoURL,
		Featured:      p.Featured,
		DisplayOrder:  p.DisplayOrder,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func ToProjectDTOs(projects []*project.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		dtos[i] = ToProjectDTO(p)
	}
	return dtos
}

// Experience DTOs

type CreateExperienceRequest struct {
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	Description  string     `json:"description"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Location     *string    `json:"location"`
	Technologies []string   `json:"technologies"`
	DisplayOrder int        `json:"display_order"`
}

func (r *CreateExperienceRequest) ToInput() experienceUC.CreateExperienceInput {
	return experienceUC.CreateExperienceInput{
		Company:      r.Company,
		Position:     r.Position,
		Description:  r.Description,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Location:     r.Location,
		Technologies: r.Technologies,
		DisplayOrder: r.DisplayOrder,
	}
}

type UpdateExperienceRequest struct {
	Company      patch.Field[string]    `json:"company"`
	Position     patch.Field[string]    `json:"position"`
	Description  patch.Field[string]    `json:"description"`
	StartDate    patch.Field[time.Time] `json:"start_date"`
	EndDate      patch.Field[time.Time] `json:"end_date"`
	Location     patch.Field[string]    `json:"location"`
	Technologies patch.Field[[]string]  `json:"technologies"`
	DisplayOrder patch.Field[int]       `json:"display_order"`
}

func (r *UpdateExperienceRequest) ToInput(id uuid.UUID) experienceUC.UpdateExperienceInput {
	return experienceUC.UpdateExperienceInput{
		ID:           id,
		Company:      r.Company,
		Position:     r.Position,
		Description:  r.Description,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Location:     r.Location,
		Technologies: r.Technologies,
		DisplayOrder: r.DisplayOrder,
	}
}

type ExperienceDTO struct {
	ID           string     `json:"id"`
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	Description  string     `json:"description"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Location     *string    `json:"location"`
	Technologies []string   `json:"technologies"`
	DisplayOrder int        `json:"display_order"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func ToExperienceDTO(e *experience.Experience) ExperienceDTO {
	return ExperienceDTO{
		ID:           e.ID.String(),
		Company:      e.Company,
		Position:     e.Position,
		Description:  e.Description,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		Location:     e.Location,
		Technologies: e.Technologies,
		DisplayOrder: e.DisplayOrder,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToExperienceDTOs(entries []*experience.Experience) []ExperienceDTO {
	dtos := make([]ExperienceDTO, len(entries))
	for i, e := range entries {
		dtos[i] = ToExperienceDTO(e)
	}
	return dtos
}

// Skill DTOs

type CreateSkillRequest struct {
	Name             string `json:"name"`
	Category         string `json:"category"`
	ProficiencyLevel int    `json:"proficiency_level"`
	DisplayOrder     int    `json:"display_order"`
}

func (r *CreateSkillRequest) ToInput() skillUC.CreateSkillInput {
	return skillUC.CreateSkillInput{
		Name:             r.Name,
		Category:         r.Category,
		ProficiencyLevel: r.ProficiencyLevel,
		DisplayOrder:     r.DisplayOrder,
	}
}

type UpdateSkillRequest struct {
	Name             patch.Field[string] `json:"name"`
	Category         patch.Field[string] `json:"category"`
	ProficiencyLevel patch.Field[int]    `json:"proficiency_level"`
	DisplayOrder     patch.Field[int]    `json:"display_order"`
}

func (r *UpdateSkillRequest) ToInput(id uuid.UUID) skillUC.UpdateSkillInput {
	return skillUC.UpdateSkillInput{
		ID:               id,
		Name:             r.Name,
		Category:         r.Category,
		ProficiencyLevel: r.ProficiencyLevel,
		DisplayOrder:     r.DisplayOrder,
	}
}

type SkillDTO struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	ProficiencyLevel int       `json:"proficiency_level"`
	DisplayOrder     int       `json:"display_order"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func ToSkillDTO(s *skill.Skill) SkillDTO {
	return SkillDTO{
		ID:               s.ID.String(),
		Name:             s.Name,
		Category:         s.Category,
		ProficiencyLevel: s.ProficiencyLevel,
		DisplayOrder:     s.DisplayOrder,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func ToSkillDTOs(skills []*skill.Skill) []SkillDTO {
	dtos := make([]SkillDTO, len(skills))
	for i, s := range skills {
		dtos[i] = ToSkillDTO(s)
	}
	return dtos
}

// AboutMe DTOs

type UpsertAboutRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	ProfileImageURL *string `json:"profile_image_url"`
	ResumeURL       *string `json:"resume_url"`
}

func (r *UpsertAboutRequest) ToInput() aboutUC.UpsertAboutInput {
	return aboutUC.UpsertAboutInput{
		Title:           r.Title,
		Description:     r.Description,
		ProfileImageURL: r.ProfileImageURL,
		ResumeURL:       r.ResumeURL,
	}
}

type AboutMeDTO struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ProfileImageURL *string   `json:"profile_image_url"`
	ResumeURL       *string   `json:"resume_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToAboutMeDTO(a *about.AboutMe) *AboutMeDTO {
	if a == nil {
		return nil
	}
	return &AboutMeDTO{
		ID:              a.ID.String(),
		Title:           a.Title,
		Description:     a.Description,
		ProfileImageURL: a.ProfileImageURL,
		ResumeURL:       a.ResumeURL,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// ContactInfo DTOs

type UpsertContactRequest struct {
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	LinkedinURL *string `json:"linkedin_url"`
	GithubURL   *string `json:"github_url"`
	TwitterURL  *string `json:"twitter_url"`
	Location    *string `json:"location"`
}

func (r *UpsertContactRequest) ToInput() contactUC.UpsertContactInput {
	return contactUC.UpsertContactInput{
		Email:       r.Email,
		Phone:       r.Phone,
		LinkedinURL: r.LinkedinURL,
		GithubURL:   r.GithubURL,
		TwitterURL:  r.TwitterURL,
		Location:    r.Location,
	}
}

type ContactInfoDTO struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	LinkedinURL *string   `json:"linkedin_url"`
	GithubURL   *string   `json:"github_url"`
	TwitterURL  *string   `json:"twitter_url"`
	Location    *string   `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToContactInfoDTO(c *contact.ContactInfo) *ContactInfoDTO {
	if c == nil {
		return nil
	}
	return &ContactInfoDTO{
		ID:          c.ID.String(),
		Email:       c.Email,
		Phone:       c.Phone,
		LinkedinURL: c.LinkedinURL,
		GithubURL:   c.GithubURL,
		TwitterURL:  c.TwitterURL,
		Location:    c.Location,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// Portfolio snapshot DTO

type PortfolioDTO struct {
	Projects    []ProjectDTO    `json:"projects"`
	Experience  []ExperienceDTO `json:"experience"`
	Skills      []SkillDTO      `json:"skills"`
	AboutMe     *AboutMeDTO     `json:"about_me"`
	ContactInfo *ContactInfoDTO `json:"contact_info"`
	Degraded    bool            `json:"degraded"`
	LoadedAt    time.Time       `json:"loaded_at"`
}

func ToPortfolioDTO(snap *portfolio.Snapshot) PortfolioDTO {
	return PortfolioDTO{
		Projects:    ToProjectDTOs(snap.Projects),
		Experience:  ToExperienceDTOs(snap.Experience),
		Skills:      ToSkillDTOs(snap.Skills),
		AboutMe:     ToAboutMeDTO(snap.AboutMe),
		ContactInfo: ToContactInfoDTO(snap.ContactInfo),
		Degraded:    snap.Degraded,
		LoadedAt:    snap.LoadedAt,
	}
}
