package model

// Owner describes the person behind a listed business
type Owner struct {
	Name string `json:"name"`
	Bio  string `json:"bio,omitempty"`
}

// SocialMedia holds optional social handles
type SocialMedia struct {
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

// Contact holds optional public contact details
type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// Business is a single directory listing. Records are read-only once loaded.
type Business struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Slug        string       `json:"slug"` // unique, used as the external lookup key
	Description string       `json:"description"`
	Category    string       `json:"category"` // display label, e.g. "Beauty & Wellness"
	City        string       `json:"city"`
	State       string       `json:"state"`
	Website     string       `json:"website"`
	Owner       Owner        `json:"owner"`
	Image       string       `json:"image,omitempty"`
	Services    []string     `json:"services"` // display order matters
	SocialMedia *SocialMedia `json:"socialMedia,omitempty"`
	Contact     *Contact     `json:"contact,omitempty"`
	Featured    bool         `json:"featured"`
	CreatedAt   string       `json:"createdAt"` // YYYY-MM-DD
}

// City is a declared directory city
type City struct {
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	State         string `json:"state"`
	BusinessCount int    `json:"businessCount"`
}

// Category is a declared directory category
type Category struct {
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	BusinessCount int    `json:"businessCount"`
}

// Stats aggregates directory counters
type Stats struct {
	TotalBusinesses    int `json:"totalBusinesses"`
	FeaturedBusinesses int `json:"featuredBusinesses"`
	Cities             int `json:"cities"`
	Categories         int `json:"categories"`
}
