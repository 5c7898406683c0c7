package tenant

// OrganizationConfig is the display-ready public content for one tenant. It
// is assembled per load from the organization repositories and never
// persisted as a whole; admin-edited school settings overlay it before it
// is served.
type OrganizationConfig struct {
	OrgID     string          `json:"org_id"`
	Subdomain string          `json:"subdomain"`
	Branding  Branding        `json:"branding"`
	Contact   Contact         `json:"contact"`
	Hero      Hero            `json:"hero"`
	About     About           `json:"about"`
	Programs  []Program       `json:"programs"`
	Stats     Stats           `json:"stats"`
	Faculty   []FacultyMember `json:"faculty"`
}

// Branding holds tenant look-and-feel values.
type Branding struct {
	SchoolName     string `json:"school_name"`
	LogoURL        string `json:"logo_url"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
}

// Contact holds tenant contact details.
type Contact struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Hero holds the landing banner content.
type Hero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"image_url"`
}

// About holds the about-section content.
type About struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Program is one academic program entry.
type Program struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Stats are headline counters for the public site.
type Stats struct {
	Students int `json:"students"`
	Teachers int `json:"teachers"`
	Programs int `json:"programs"`
	Exams    int `json:"exams"`
}

// FacultyMember is one public faculty listing.
type FacultyMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	PhotoURL string `json:"photo_url"`
}

// RawOrganizationData carries the unmerged results of the per-tenant content
// fetches. Any field may be zero when the source omits it; BuildConfig fills
// documented defaults so the rendered config is always total.
type RawOrganizationData struct {
	OrgID     string
	Subdomain string
	Name      string
	LogoURL   string
	Primary   string
	Secondary string

	ContactEmail   string
	ContactPhone   string
	ContactAddress string

	HeroTitle    string
	HeroSubtitle string
	HeroImageURL string

	AboutHeading string
	AboutBody    string

	Programs []Program
	Stats    Stats
	Faculty  []FacultyMember
}

// Default values used when upstream content omits a field. Exported so the
// settings overlay and templates can distinguish "default" from "edited".
const (
	DefaultSchoolName     = "Our School"
	DefaultPrimaryColor   = "#1d4ed8"
	DefaultSecondaryColor = "#f59e0b"
	DefaultHeroTitle      = "Welcome"
	DefaultHeroSubtitle   = "Learning for everyone"
	DefaultAboutHeading   = "About Us"
)

// BuildConfig maps raw per-tenant data to a fully populated
// OrganizationConfig. The mapping is pure and total: every field has a
// defined value even for a zero RawOrganizationData, and slices are never
// nil so JSON renders [] rather than null.
func BuildConfig(raw RawOrganizationData) OrganizationConfig {
	cfg := OrganizationConfig{
		OrgID:     raw.OrgID,
		Subdomain: raw.Subdomain,
		Branding: Branding{
			SchoolName:     orDefault(raw.Name, DefaultSchoolName),
			LogoURL:        raw.LogoURL,
			PrimaryColor:   orDefault(raw.Primary, DefaultPrimaryColor),
			SecondaryColor: orDefault(raw.Secondary, DefaultSecondaryColor),
		},
		Contact: Contact{
			Email:   raw.ContactEmail,
			Phone:   raw.ContactPhone,
			Address: raw.ContactAddress,
		},
		Hero: Hero{
			Title:    orDefault(raw.HeroTitle, DefaultHeroTitle),
			Subtitle: orDefault(raw.HeroSubtitle, DefaultHeroSubtitle),
			ImageURL: raw.HeroImageURL,
		},
		About: About{
			Heading: orDefault(raw.AboutHeading, DefaultAboutHeading),
			Body:    raw.AboutBody,
		},
		Programs: raw.Programs,
		Stats:    raw.Stats,
		Faculty:  raw.Faculty,
	}

	if cfg.Hero.Title == DefaultHeroTitle && raw.Name != "" {
		cfg.Hero.Title = "Welcome to " + raw.Name
	}
	if cfg.Programs == nil {
		cfg.Programs = []Program{}
	}
	if cfg.Faculty == nil {
		cfg.Faculty = []FacultyMember{}
	}
	return cfg
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
