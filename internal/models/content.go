package models

// Banner is a hero slide on the home page
type Banner struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Subtitle    string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Image       string `json:"image" yaml:"image"`
	CTAText     string `json:"ctaText,omitempty" yaml:"ctaText,omitempty"`
	CTALink     string `json:"ctaLink,omitempty" yaml:"ctaLink,omitempty"`
	Order       int    `json:"order" yaml:"order"`
	Active      bool   `json:"active" yaml:"active"`
}

func (b Banner) GetID() string  { return b.ID }
func (b Banner) IsActive() bool { return b.Active }
func (b Banner) GetOrder() int  { return b.Order }

// Testimonial is a customer quote
type Testimonial struct {
	ID       string `json:"id" yaml:"id"`
	Author   string `json:"author" yaml:"author"`
	Role     string `json:"role,omitempty" yaml:"role,omitempty"`
	Company  string `json:"company,omitempty" yaml:"company,omitempty"`
	Rating   int    `json:"rating" yaml:"rating"`
	Content  string `json:"content" yaml:"content"`
	Date     string `json:"date" yaml:"date"`
	Avatar   string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	Featured bool   `json:"featured" yaml:"featured"`
	Active   bool   `json:"active" yaml:"active"`
}

func (t Testimonial) GetID() string  { return t.ID }
func (t Testimonial) IsActive() bool { return t.Active }

// Album groups gallery media
type Album struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Slug        string `json:"slug" yaml:"slug"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	CoverImage  string `json:"coverImage" yaml:"coverImage"`
	Order       int    `json:"order" yaml:"order"`
	Active      bool   `json:"active" yaml:"active"`
}

func (a Album) GetID() string   { return a.ID }
func (a Album) GetSlug() string { return a.Slug }
func (a Album) IsActive() bool  { return a.Active }
func (a Album) GetOrder() int   { return a.Order }

// MediaType distinguishes photos from videos in an album
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// MediaItem is a single photo or video inside an album
type MediaItem struct {
	ID        string    `json:"id" yaml:"id"`
	AlbumID   string    `json:"albumId" yaml:"albumId"`
	Type      MediaType `json:"type" yaml:"type"`
	URL       string    `json:"url" yaml:"url"`
	Thumbnail string    `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Title     string    `json:"title,omitempty" yaml:"title,omitempty"`
	Caption   string    `json:"caption,omitempty" yaml:"caption,omitempty"`
	Order     int       `json:"order" yaml:"order"`
}

func (m MediaItem) GetOrder() int { return m.Order }

// Job is an open position on the careers board
type Job struct {
	ID               string   `json:"id" yaml:"id"`
	Title            string   `json:"title" yaml:"title"`
	Slug             string   `json:"slug" yaml:"slug"`
	Department       string   `json:"department" yaml:"department"`
	Location         string   `json:"location" yaml:"location"`
	Type             string   `json:"type" yaml:"type"`
	Experience       string   `json:"experience" yaml:"experience"`
	Description      string   `json:"description" yaml:"description"`
	Requirements     []string `json:"requirements" yaml:"requirements"`
	Responsibilities []string `json:"responsibilities" yaml:"responsibilities"`
	PostedDate       string   `json:"postedDate" yaml:"postedDate"`
	Active           bool     `json:"active" yaml:"active"`
}

func (j Job) GetID() string   { return j.ID }
func (j Job) GetSlug() string { return j.Slug }
func (j Job) IsActive() bool  { return j.Active }

// Page is a static CMS page such as the privacy policy
type Page struct {
	ID              string `json:"id" yaml:"id"`
	Slug            string `json:"slug" yaml:"slug"`
	Title           string `json:"title" yaml:"title"`
	Content         string `json:"content" yaml:"content"`
	MetaTitle       string `json:"metaTitle,omitempty" yaml:"metaTitle,omitempty"`
	MetaDescription string `json:"metaDescription,omitempty" yaml:"metaDescription,omitempty"`
	LastUpdated     string `json:"lastUpdated" yaml:"lastUpdated"`
	Active          bool   `json:"active" yaml:"active"`
}

func (p Page) GetID() string   { return p.ID }
func (p Page) GetSlug() string { return p.Slug }
func (p Page) IsActive() bool  { return p.Active }

// WorkingHours are the store's opening hours as displayed
type WorkingHours struct {
	Weekdays string `json:"weekdays" yaml:"weekdays"`
	Saturday string `json:"saturday" yaml:"saturday"`
	Sunday   string `json:"sunday" yaml:"sunday"`
}

// SocialLinks are the store's social media profiles; empty links are hidden
type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty" yaml:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty" yaml:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty" yaml:"twitter,omitempty"`
	YouTube   string `json:"youtube,omitempty" yaml:"youtube,omitempty"`
}

// StoreInfo is the contact and location data behind the contact, about and footer sections
type StoreInfo struct {
	Name         string       `json:"name" yaml:"name"`
	Tagline      string       `json:"tagline,omitempty" yaml:"tagline,omitempty"`
	Address      string       `json:"address" yaml:"address"`
	City         string       `json:"city" yaml:"city"`
	State        string       `json:"state" yaml:"state"`
	Pincode      string       `json:"pincode" yaml:"pincode"`
	Country      string       `json:"country" yaml:"country"`
	Phone        []string     `json:"phone" yaml:"phone"`
	WhatsApp     string       `json:"whatsapp,omitempty" yaml:"whatsapp,omitempty"`
	Email        string       `json:"email" yaml:"email"`
	WorkingHours WorkingHours `json:"workingHours" yaml:"workingHours"`
	MapURL       string       `json:"mapUrl,omitempty" yaml:"mapUrl,omitempty"`
	MapEmbedURL  string       `json:"mapEmbedUrl,omitempty" yaml:"mapEmbedUrl,omitempty"`
	SocialMedia  SocialLinks  `json:"socialMedia" yaml:"socialMedia"`
}
