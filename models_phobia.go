package fobini

// PaginationMeta describes the page window of a list response.
type PaginationMeta struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	Limit    int `json:"limit"`
	LastPage int `json:"lastPage"`
}

// PhobiaCategory is a catalog category a phobia belongs to.
type PhobiaCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Phobia is one entry of the phobia catalog.
type Phobia struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	EnglishName string           `json:"englishName"`
	Description string           `json:"description"`
	Percentage  float64          `json:"percentage"`
	Categories  []PhobiaCategory `json:"categories"`
	ImageURL    *string          `json:"imageUrl,omitempty"`
	CreatedAt   string           `json:"createdAt"`
	UpdatedAt   string           `json:"updatedAt"`
}

// PhobiaList is the data payload of the phobia list endpoint: the page of
// phobias plus the full category set for filtering.
type PhobiaList struct {
	Categories []PhobiaCategory `json:"categories"`
	Data       []Phobia         `json:"data"`
	Meta       PaginationMeta   `json:"meta"`
}

type phobiaListResponse struct {
	Success bool       `json:"success"`
	Data    PhobiaList `json:"data"`
}

// PhobiaDetail is the full record for a single phobia, including its
// symptom list and the therapies available for it.
type PhobiaDetail struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	EnglishName    string          `json:"englishName"`
	Description    string          `json:"description"`
	Percentage     float64         `json:"percentage"`
	ImageURL       *string         `json:"imageUrl,omitempty"`
	CommonSymptoms []string        `json:"commonSymptoms"`
	Therapies      []PhobiaTherapy `json:"therapies"`
}

// PhobiaTherapy is a therapy summary embedded in a phobia detail.
type PhobiaTherapy struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Strategies []StrategyHeader `json:"strategies"`
}

// StrategyHeader is a coping-strategy summary embedded in a phobia detail.
type StrategyHeader struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type phobiaDetailResponse struct {
	Success bool         `json:"success"`
	Data    PhobiaDetail `json:"data"`
}

// CreateUserPhobiaRequest is the payload for tracking a phobia.
type CreateUserPhobiaRequest struct {
	PhobiaID string `json:"phobiaId" validate:"required"`
}

// UserPhobia is a phobia the user tracks.
type UserPhobia struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type createUserPhobiaResponse struct {
	Success bool       `json:"success"`
	Data    UserPhobia `json:"data"`
}

// UserPhobiaListItem is one tracked phobia with its catalog record.
type UserPhobiaListItem struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	Phobia    Phobia `json:"phobia"`
}

type userPhobiaListResponse struct {
	Success bool `json:"success"`
	Data    struct {
		UserPhobias []UserPhobiaListItem `json:"userPhobias"`
		Meta        PaginationMeta       `json:"meta"`
	} `json:"data"`
}
