package domain

import (
	"time"
)

// Document type discriminators. The discriminator doubles as the physical
// partition key of the document container.
const (
	DocTypeUser          = "user"
	DocTypeSession       = "session"
	DocTypeHelpArticle   = "help-article"
	DocTypeDocumentation = "documentation"
	DocTypeVideo         = "video"
	DocTypeCareer        = "career"
	DocTypeBlogPost      = "blog-post"
)

// Content ids are derived from the title once at creation time and stay fixed
// even if the title is edited later.

type HelpArticle struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Content        string    `json:"content"`
	VideoURL       string    `json:"videoUrl,omitempty"`
	VideoThumbnail string    `json:"videoThumbnail,omitempty"`
	Tags           []string  `json:"tags"`
	Published      bool      `json:"published"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Documentation struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Section     string    `json:"section"` // getting-started | api | user-guide | integrations
	Content     string    `json:"content"`
	Order       int       `json:"order"`
	Tags        []string  `json:"tags"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Video struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	Duration    string    `json:"duration,omitempty"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Career struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Department       string    `json:"department"`
	Location         string    `json:"location"`
	Type             string    `json:"type"` // Full-time | Part-time | Contract | Internship
	Description      string    `json:"description"`
	Responsibilities string    `json:"responsibilities"`
	Qualifications   string    `json:"qualifications"`
	Benefits         string    `json:"benefits,omitempty"`
	SalaryRange      string    `json:"salaryRange,omitempty"`
	ApplyURL         string    `json:"applyUrl,omitempty"`
	Tags             []string  `json:"tags"`
	Published        bool      `json:"published"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// BlogPost keys on slug instead of id on the wire; in the store the document
// id equals the slug.
type BlogPost struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Date        string    `json:"date"` // YYYY-MM-DD, shown on the site
	Author      string    `json:"author"`
	CoverImage  string    `json:"coverImage,omitempty"`
	Tags        []string  `json:"tags"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
