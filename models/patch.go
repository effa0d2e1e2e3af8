package models

// Patch types describe partial updates submitted through the CMS forms.
// Nil fields are left untouched; only non-nil fields are written, matching
// the COALESCE semantics of the underlying UPDATE statements.

type ServicePatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	OrderIndex  *int    `json:"order_index"`
	IsActive    *bool   `json:"is_active"`
}

type EducationPatch struct {
	Degree      *string `json:"degree"`
	Institution *string `json:"institution"`
	Years       *string `json:"years"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	OrderIndex  *int    `json:"order_index"`
	IsActive    *bool   `json:"is_active"`
}

type TechStackPatch struct {
	Name       *string `json:"name"`
	Icon       *string `json:"icon"`
	Category   *string `json:"category"`
	OrderIndex *int    `json:"order_index"`
	IsActive   *bool   `json:"is_active"`
}

type ProjectPatch struct {
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	TechStack   *StringList `json:"tech_stack"`
	LiveLink    *string     `json:"live_link"`
	GithubLink  *string     `json:"github_link"`
	ImageURL    *string     `json:"image_url"`
	IsFeatured  *bool       `json:"is_featured"`
	OrderIndex  *int        `json:"order_index"`
	IsActive    *bool       `json:"is_active"`
}

type TestimonialPatch struct {
	Name       *string `json:"name"`
	Title      *string `json:"title"`
	Company    *string `json:"company"`
	Quote      *string `json:"quote"`
	Rating     *int    `json:"rating"`
	AvatarURL  *string `json:"avatar_url"`
	OrderIndex *int    `json:"order_index"`
	IsActive   *bool   `json:"is_active"`
}

type ArticlePatch struct {
	Title         *string `json:"title"`
	Slug          *string `json:"slug"`
	Description   *string `json:"description"`
	Content       *string `json:"content"`
	Category      *string `json:"category"`
	ReadTime      *string `json:"read_time"`
	FeaturedImage *string `json:"featured_image"`
	IsPublished   *bool   `json:"is_published"`
	IsFeatured    *bool   `json:"is_featured"`
	OrderIndex    *int    `json:"order_index"`
}

type ExperiencePatch struct {
	Company          *string     `json:"company"`
	Position         *string     `json:"position"`
	Location         *string     `json:"location"`
	StartDate        *string     `json:"start_date"`
	EndDate          *string     `json:"end_date"`
	IsCurrent        *bool       `json:"is_current"`
	Description      *string     `json:"description"`
	Responsibilities *StringList `json:"responsibilities"`
	Technologies     *StringList `json:"technologies"`
	Achievements     *StringList `json:"achievements"`
	CompanyLogo      *string     `json:"company_logo"`
	CompanyWebsite   *string     `json:"company_website"`
	OrderIndex       *int        `json:"order_index"`
	IsActive         *bool       `json:"is_active"`
}
