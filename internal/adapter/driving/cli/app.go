package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/diillson/aws-cost-guardian/internal/application/usecase"
	"github.com/diillson/aws-cost-guardian/internal/shared/types"
	"github.com/diillson/aws-cost-guardian/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd         *cobra.Command
	guardianUseCase *usecase.GuardianUseCase
	version         string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "aws-cost-guardian",
		Short:   "AWS Cost Guardian CLI",
		Long:    "Automated AWS cost governance: monthly budgets with e-mail alerts, CloudWatch utilization alarms, non-production instance shutdown, ECR lifecycle policies and month-to-date cost reports.",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "AWS Cost Guardian version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringSliceP("profiles", "p", nil, "Specific AWS profiles to use (comma-separated)")
	rootCmd.PersistentFlags().StringSliceP("regions", "r", nil, "AWS regions to manage (comma-separated; default: all accessible regions)")
	rootCmd.PersistentFlags().BoolP("all", "a", false, "Use all available AWS profiles")
	rootCmd.PersistentFlags().Float64P("budget", "b", 100.0, "Monthly budget limit in USD")
	rootCmd.PersistentFlags().StringP("email", "e", "", "E-mail address for budget notifications")
	rootCmd.PersistentFlags().Bool("skip-shutdown", false, "Do not stop non-production EC2 instances")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct. Flags the
// user did not set are left at their zero value so values from the config
// file can fill them in; the effective defaults shown in the help text are
// applied by the use case only after that merge.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	configFile, _ := flags.GetString("config-file")
	profiles, _ := flags.GetStringSlice("profiles")
	regions, _ := flags.GetStringSlice("regions")
	all, _ := flags.GetBool("all")
	email, _ := flags.GetString("email")
	skipShutdown, _ := flags.GetBool("skip-shutdown")
	reportName, _ := flags.GetString("report-name")

	var budget float64
	if flags.Changed("budget") {
		budget, _ = flags.GetFloat64("budget")
	}

	var reportType []string
	if flags.Changed("report-type") {
		reportType, _ = flags.GetStringSlice("report-type")
	}

	dir, _ := flags.GetString("dir")
	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile:        configFile,
		Profiles:          profiles,
		Regions:           regions,
		All:               all,
		MonthlyBudget:     budget,
		NotificationEmail: email,
		SkipShutdown:      skipShutdown,
		ReportName:        reportName,
		ReportType:        reportType,
		Dir:               dir,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	// Analisa os argumentos da linha de comando
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	ctx := context.Background()
	return app.guardianUseCase.Run(ctx, cliArgs)
}

// SetGuardianUseCase sets the guardian use case for the CLI app.
func (app *CLIApp) SetGuardianUseCase(useCase *usecase.GuardianUseCase) {
	app.guardianUseCase = useCase
}
