// models.go this is our database models
package main

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryFrontEnd  = "Front-end"
	CategoryBackEnd   = "Back-end"
	CategoryFullStack = "Full-stack"
	CategoryWebApp    = "Web App"

	SkillDevelopment = "Development"
	SkillDesign      = "Design"
)

var projectCategories = []string{CategoryFrontEnd, CategoryBackEnd, CategoryFullStack, CategoryWebApp}

var skillCategories = []string{SkillDevelopment, SkillDesign}

type User struct {
	gorm.Model
	Name     string
	Email    string `gorm:"uniqueIndex"`
	Password string
}

// SocialLinks is stored as a single JSON column keyed by provider.
type SocialLinks struct {
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Instagram string `json:"instagram"`
}

type Profile struct {
	ID          string      `json:"id" gorm:"primaryKey"`
	Bio         string      `json:"bio"`
	AvatarURL   string      `json:"avatar_url"`
	CVURL       string      `json:"cv_url" gorm:"column:cv_url"`
	SocialLinks SocialLinks `json:"social_links" gorm:"serializer:json"`
	UpdatedAt   time.Time   `json:"updated_at" gorm:"autoUpdateTime:false"`
}

func (Profile) TableName() string { return tableProfiles }

type Project struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies" gorm:"serializer:json"`
	ProjectURL   string    `json:"project_url"`
	GithubURL    string    `json:"github_url"`
	ImageURL     string    `json:"image_url"`
	Category     string    `json:"category"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Project) TableName() string { return tableProjects }

type Skill struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	IconURL   string    `json:"icon_url"`
	Level     string    `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

// The hosted schema names this table with a capital letter.
func (Skill) TableName() string { return tableSkills }

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
