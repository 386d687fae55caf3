package models

// Portfolio is the whole static content store
type Portfolio struct {
	Personal     Personal     `json:"personal" yaml:"personal"`
	Navigation   Navigation   `json:"navigation" yaml:"navigation"`
	SocialLinks  []SocialLink `json:"socialLinks" yaml:"socialLinks"`
	Technologies []string     `json:"technologies" yaml:"technologies"`
	Projects     []Project    `json:"projects" yaml:"projects"`
	About        About        `json:"about" yaml:"about"`
	Sections     Sections     `json:"sections" yaml:"sections"`
	Contact      Contact      `json:"contact" yaml:"contact"`
}

// Personal holds the profile shown on Home and About
type Personal struct {
	Name         string `json:"name" yaml:"name"`
	Title        string `json:"title" yaml:"title"`
	Bio          string `json:"bio" yaml:"bio"`
	Location     string `json:"location" yaml:"location"`
	ProfileImage string `json:"profileImage" yaml:"profileImage"`
	ResumeURL    string `json:"resumeUrl" yaml:"resumeUrl"`
}

// Navigation holds the navbar brand and links
type Navigation struct {
	Brand string    `json:"brand" yaml:"brand"`
	Links []NavLink `json:"links" yaml:"links"`
}

// NavLink is a single navbar entry
type NavLink struct {
	Label string `json:"label" yaml:"label"`
	Path  string `json:"path" yaml:"path"`
}

// SocialLink is an external profile or contact channel
type SocialLink struct {
	Platform string `json:"platform" yaml:"platform"`
	Label    string `json:"label" yaml:"label"`
	Href     string `json:"href" yaml:"href"`
	Icon     string `json:"icon" yaml:"icon"`
	Value    string `json:"value,omitempty" yaml:"value"`
}

// External reports whether the link leaves the site
func (l SocialLink) External() bool {
	return len(l.Href) >= 4 && l.Href[:4] == "http"
}

// About holds the About page copy
type About struct {
	Intro       string          `json:"intro" yaml:"intro"`
	Description string          `json:"description" yaml:"description"` // markdown
	Skills      []SkillSet      `json:"skills" yaml:"skills"`
	Timeline    []TimelineEntry `json:"timeline" yaml:"timeline"`
}

// SkillSet groups skills under a category
type SkillSet struct {
	Category string   `json:"category" yaml:"category"`
	Items    []string `json:"items" yaml:"items"`
}

// TimelineEntry is one step of the experience timeline
type TimelineEntry struct {
	Year        string `json:"year" yaml:"year"`
	Title       string `json:"title" yaml:"title"`
	Company     string `json:"company" yaml:"company"`
	Description string `json:"description" yaml:"description"`
}

// Sections holds reusable block copy
type Sections struct {
	Hero         Block `json:"hero" yaml:"hero"`
	Technologies Block `json:"technologies" yaml:"technologies"`
	CTA          Block `json:"cta" yaml:"cta"`
}

// Block is a titled call-to-action style section
type Block struct {
	Title      string `json:"title" yaml:"title"`
	Subtitle   string `json:"subtitle,omitempty" yaml:"subtitle"`
	ButtonText string `json:"buttonText,omitempty" yaml:"buttonText"`
}

// Contact holds the Contact page copy and direct channels
type Contact struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Location    string `json:"location" yaml:"location"`
	Email       string `json:"email" yaml:"email"`
	Phone       string `json:"phone" yaml:"phone"`
}
