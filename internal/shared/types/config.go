package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	MonthlyBudget     float64  `json:"monthly_budget" yaml:"monthly_budget" toml:"monthly_budget"`
	NotificationEmail string   `json:"notification_email" yaml:"notification_email" toml:"notification_email"`
	Profiles          []string `json:"profiles" yaml:"profiles" toml:"profiles"`
	Regions           []string `json:"regions" yaml:"regions" toml:"regions"`
	SkipShutdown      bool     `json:"skip_shutdown" yaml:"skip_shutdown" toml:"skip_shutdown"`
	ReportName        string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType        []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir               string   `json:"dir" yaml:"dir" toml:"dir"`
}
