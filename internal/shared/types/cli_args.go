package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile        string
	Profiles          []string
	Regions           []string
	All               bool
	MonthlyBudget     float64
	NotificationEmail string
	SkipShutdown      bool
	ReportName        string
	ReportType        []string
	Dir               string
}
