package domain

// ARRBreakdown is the ARR movement waterfall between two periods.
type ARRBreakdown struct {
	Total       float64 `json:"total"`
	NewARR      float64 `json:"newARR"`
	UpsellARR   float64 `json:"upsellARR"`
	ChurnARR    float64 `json:"churnARR"`
	DownsellARR float64 `json:"downsellARR"`
	ComebackARR float64 `json:"comebackARR"`
}

// CohortData is one acquisition-year cohort row.
type CohortData struct {
	Cohort          string  `json:"cohort"`
	Customers       int     `json:"customers"`
	StartingRevenue float64 `json:"startingRevenue"`
	CurrentRevenue  float64 `json:"currentRevenue"`
	Retention       float64 `json:"retention"`
	Expansion       float64 `json:"expansion"`
}

// NetNewARRData is one month of the net-new-ARR series.
type NetNewARRData struct {
	Month       string  `json:"month"`
	NetNewARR   float64 `json:"netNewARR"`
	NewARR      float64 `json:"newARR"`
	ChurnARR    float64 `json:"churnARR"`
	UpsellARR   float64 `json:"upsellARR"`
	DownsellARR float64 `json:"downsellARR"`
	ComebackARR float64 `json:"comebackARR"`
}

// LogoACVData is one month of the new-logos vs. average contract value series.
type LogoACVData struct {
	Month       string  `json:"month"`
	NewLogos    int     `json:"newLogos"`
	AverageACV  float64 `json:"averageACV"`
	TotalNewARR float64 `json:"totalNewARR"`
}

// SkippedRow records why an export row did not become a transaction.
type SkippedRow struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Diagnostics summarizes data-quality conditions met during one run.
type Diagnostics struct {
	RowsRead             int          `json:"rowsRead"`
	TransactionsAccepted int          `json:"transactionsAccepted"`
	Customers            int          `json:"customers"`
	SkippedRows          []SkippedRow `json:"skippedRows"`
	MalformedLines       []int        `json:"malformedLines"`
	InvalidDates         int          `json:"invalidDates"`
	InvalidAmounts       int          `json:"invalidAmounts"`
}

// ProcessedMetrics is the complete result of one processing run.
type ProcessedMetrics struct {
	AsOf           string          `json:"asOf"`
	ARR            ARRBreakdown    `json:"arr"`
	NRR            float64         `json:"nrr"`
	GRR            float64         `json:"grr"`
	Cohorts        []CohortData    `json:"cohorts"`
	NetNewARRChart []NetNewARRData `json:"netNewARRChart"`
	LogosVsACV     []LogoACVData   `json:"logosVsACV"`
	Diagnostics    Diagnostics     `json:"diagnostics"`
}
