package domain

import (
	"strings"
	"time"
)

// SettingsID is the fixed document id of the settings singleton.
const SettingsID = "main"

// SocialProfiles holds the company's public profile URLs.
type SocialProfiles struct {
	Facebook  string `json:"facebook"`
	LinkedIn  string `json:"linkedin"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	GitHub    string `json:"github"`
	YouTube   string `json:"youtube"`
}

// Settings is the site-wide configuration singleton. Saves are full
// replacements, never partial patches.
type Settings struct {
	ID              string         `json:"id,omitempty"`
	SiteName        string         `json:"siteName"`
	Tagline         string         `json:"tagline"`
	Description     string         `json:"description"`
	LogoURL         string         `json:"logoUrl"`
	ContactEmail    string         `json:"contactEmail"`
	Phone           string         `json:"phone"`
	Address         string         `json:"address"`
	MetaTitle       string         `json:"metaTitle"`
	MetaDescription string         `json:"metaDescription"`
	Socials         SocialProfiles `json:"socials"`
	CreatedAt       time.Time      `json:"createdAt,omitzero"`
	UpdatedAt       time.Time      `json:"updatedAt,omitzero"`
}

func (s *Settings) Normalize() {
	s.ID = SettingsID
	s.SiteName = strings.TrimSpace(s.SiteName)
	s.Tagline = strings.TrimSpace(s.Tagline)
	s.Description = strings.TrimSpace(s.Description)
	s.LogoURL = strings.TrimSpace(s.LogoURL)
	s.ContactEmail = strings.ToLower(strings.TrimSpace(s.ContactEmail))
	s.Phone = strings.TrimSpace(s.Phone)
	s.Address = strings.TrimSpace(s.Address)
	s.MetaTitle = strings.TrimSpace(s.MetaTitle)
	s.MetaDescription = strings.TrimSpace(s.MetaDescription)
	s.Socials.Facebook = strings.TrimSpace(s.Socials.Facebook)
	s.Socials.LinkedIn = strings.TrimSpace(s.Socials.LinkedIn)
	s.Socials.Twitter = strings.TrimSpace(s.Socials.Twitter)
	s.Socials.Instagram = strings.TrimSpace(s.Socials.Instagram)
	s.Socials.GitHub = strings.TrimSpace(s.Socials.GitHub)
	s.Socials.YouTube = strings.TrimSpace(s.Socials.YouTube)
}

func (s *Settings) Validate() error {
	if strings.TrimSpace(s.SiteName) == "" {
		return Required("siteName")
	}
	if email := strings.TrimSpace(s.ContactEmail); email != "" && !strings.Contains(email, "@") {
		return Invalid("contactEmail", "not an email address")
	}
	return nil
}
