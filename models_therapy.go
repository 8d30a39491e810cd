package fobini

// Therapy is one therapy program offered for a phobia.
type Therapy struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	CreatedAt   string        `json:"createdAt"`
	Phobia      TherapyPhobia `json:"phobia"`
}

// TherapyPhobia is the phobia a therapy belongs to.
type TherapyPhobia struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type therapyListResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Therapies []Therapy      `json:"therapies"`
		Meta      PaginationMeta `json:"meta"`
	} `json:"data"`
}

// TherapyDetail is the full record of a single therapy session.
type TherapyDetail struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	DurationInMinutes int    `json:"durationInMinutes"`
	StepNumber        int    `json:"stepNumber"`
	IsCompleted       *bool  `json:"isCompleted,omitempty"`
}

type therapyDetailResponse struct {
	Success bool          `json:"success"`
	Data    TherapyDetail `json:"data"`
}

// CopingStrategy is one guided exercise within a therapy.
type CopingStrategy struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Content           string `json:"content"`
	StepNumber        int    `json:"stepNumber"`
	DurationInMinutes int    `json:"durationInMinutes"`
	IsCompleted       *bool  `json:"isCompleted,omitempty"`
}

type copingStrategyListResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Strategies []CopingStrategy `json:"strategies"`
	} `json:"data"`
}

type copingStrategyDetailResponse struct {
	Success bool           `json:"success"`
	Data    CopingStrategy `json:"data"`
}

// CompleteStrategyRequest is the payload for marking a strategy done.
type CompleteStrategyRequest struct {
	StrategyID string `json:"strategyId" validate:"required"`
}

// CompleteStrategyResult reports a completion and, when the therapy
// continues, the next strategy to run.
type CompleteStrategyResult struct {
	Completed      bool    `json:"completed"`
	NextStrategyID *string `json:"nextStrategyId,omitempty"`
}

type completeStrategyResponse struct {
	Success bool                   `json:"success"`
	Data    CompleteStrategyResult `json:"data"`
}

type completedStrategiesResponse struct {
	Success bool `json:"success"`
	Data    struct {
		CompletedStrategyIDs []string `json:"completedStrategyIds"`
	} `json:"data"`
}
