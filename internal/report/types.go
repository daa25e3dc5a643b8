package report

import "time"

// Reporter interface for different report formats
type Reporter interface {
	Generate(data Data) error
}

// Row is one report line, joined back to its originating input line.
// Two input lines normalizing to the same address still produce two rows.
type Row struct {
	LineNumber     int    `json:"line_number"`
	OriginalDomain string `json:"original_domain"`
	URL            string `json:"url"`
	Accessible     bool   `json:"accessible"`
	Type           string `json:"type"` // bucket, object, invalid, error
	Message        string `json:"message"`
	Bucket         string `json:"bucket"`
	Key            string `json:"key,omitempty"`
}

// Summary contains the aggregate counts for a run.
type Summary struct {
	Total      int `json:"total"`
	Accessible int `json:"accessible"`
}

// Config contains check configuration
type Config struct {
	InputPath  string `json:"input_path"`
	AWSProfile string `json:"aws_profile,omitempty"`
	AWSRegion  string `json:"aws_region,omitempty"`
	Workers    int    `json:"workers"`
}

// Data contains all report data
type Data struct {
	Tool      string    `json:"tool"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	Config    Config    `json:"config"`
	Summary   Summary   `json:"summary"`
	Rows      []Row     `json:"rows"`
}
