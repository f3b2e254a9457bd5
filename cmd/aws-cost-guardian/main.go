package main

import (
	"fmt"
	"os"

	"github.com/diillson/aws-cost-guardian/internal/adapter/driven/aws"
	"github.com/diillson/aws-cost-guardian/internal/adapter/driven/config"
	"github.com/diillson/aws-cost-guardian/internal/adapter/driven/export"
	"github.com/diillson/aws-cost-guardian/internal/adapter/driving/cli"
	"github.com/diillson/aws-cost-guardian/internal/application/usecase"
	"github.com/diillson/aws-cost-guardian/pkg/console"
	"github.com/diillson/aws-cost-guardian/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	awsRepo := aws.NewAWSRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	guardianUseCase := usecase.NewGuardianUseCase(
		awsRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetGuardianUseCase(guardianUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
