package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/diillson/aws-cost-guardian/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$$$$$                       /$$            /$$$$$$                                      /$$ /$$
        /$$__  $$                     | $$           /$$__  $$                                    | $$|__/
       | $$  \__/  /$$$$$$   /$$$$$$$/$$$$$$        | $$  \__/ /$$   /$$  /$$$$$$   /$$$$$$   /$$$$$$$ /$$  /$$$$$$  /$$$$$$$
       | $$       /$$__  $$ /$$_____/_  $$_/        | $$ /$$$$| $$  | $$ |____  $$ /$$__  $$ /$$__  $$| $$ |____  $$| $$__  $$
       | $$      | $$  \ $$|  $$$$$$  | $$          | $$|_  $$| $$  | $$  /$$$$$$$| $$  \__/| $$  | $$| $$  /$$$$$$$| $$  \ $$
       | $$    $$| $$  | $$ \____  $$ | $$ /$$      | $$  \ $$| $$  | $$ /$$__  $$| $$      | $$  | $$| $$ /$$__  $$| $$  | $$
       |  $$$$$$/|  $$$$$$/ /$$$$$$$/ |  $$$$/      |  $$$$$$/|  $$$$$$/|  $$$$$$$| $$      |  $$$$$$$| $$|  $$$$$$$| $$  | $$
        \______/  \______/ |_______/   \___/         \______/  \______/  \_______/|__/       \_______/|__/ \_______/|__/  |__/
       `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("AWS Cost Guardian CLI (v%s)", formattedVersion)))
}
