package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/diillson/aws-cost-guardian/internal/domain/entity"
	"github.com/diillson/aws-cost-guardian/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

func (r *ExportRepositoryImpl) ExportToCSV(reports []entity.RunReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{
		"CLI Profile", "AWS Account ID",
		"Budget", "Monitoring", "Shutdown", "Containers",
		"Alarms Upserted", "Alarms Deleted", "Stopped Instances",
		"Month-to-Date Cost", "Cost By Service", "Container Cost",
	}
	writer.Write(headers)

	for _, row := range reports {
		servicesData := ""
		for _, sc := range row.Cost.ByService {
			servicesData += fmt.Sprintf("%s: $%.2f\n", sc.ServiceName, sc.Cost)
		}

		record := []string{
			row.Profile,
			row.AccountID,
			statusWord(row.BudgetOK),
			statusWord(row.MonitoringOK),
			statusWord(row.ShutdownOK),
			statusWord(row.ContainersOK),
			fmt.Sprintf("%d", row.AlarmsUpserted),
			fmt.Sprintf("%d", row.AlarmsDeleted),
			strings.Join(row.StoppedInstances, "\n"),
			fmt.Sprintf("$%.2f", row.Cost.TotalCost),
			strings.TrimSpace(servicesData),
			fmt.Sprintf("$%.2f", row.Containers.TotalCost),
		}
		writer.Write(record)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(reports []entity.RunReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(reports); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToPDF(reports []entity.RunReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		if content == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, title)
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	for i, report := range reports {
		pdf.AddPage()

		pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
		pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
		pdf.SetFont("Arial", "B", 14)
		profileName := report.Profile
		if len(profileName) > 80 {
			profileName = profileName[:77] + "..."
		}
		pdf.CellFormat(0, 12, tr(fmt.Sprintf("  %s", profileName)), "", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Account ID: %s", report.AccountID)), "", 1, "L", true, 0, "")
		pdf.Ln(10)

		operations := fmt.Sprintf(
			"Budget: %s\nResource monitoring: %s (%d alarms upserted, %d deleted)\nNon-production shutdown: %s\nContainer resources: %s",
			statusWord(report.BudgetOK),
			statusWord(report.MonitoringOK), report.AlarmsUpserted, report.AlarmsDeleted,
			statusWord(report.ShutdownOK),
			statusWord(report.ContainersOK),
		)
		drawSection("Operations", operations)

		if len(report.StoppedInstances) > 0 {
			drawSection("Stopped Instances", strings.Join(report.StoppedInstances, "\n"))
		}

		costStr := fmt.Sprintf("Total month-to-date: $%.2f\n\n", report.Cost.TotalCost)
		for _, sc := range report.Cost.ByService {
			costStr += fmt.Sprintf("%s: $%.2f\n", sc.ServiceName, sc.Cost)
		}
		drawSection("Cost Summary", strings.TrimSpace(costStr))

		containerStr := fmt.Sprintf("Total month-to-date: $%.2f\n\n", report.Containers.TotalCost)
		for _, uc := range report.Containers.ByUsage {
			containerStr += fmt.Sprintf("%s / %s: $%.2f\n", uc.ServiceName, uc.UsageType, uc.Cost)
		}
		drawSection("Container Services Cost", strings.TrimSpace(containerStr))

		budgetStr := ""
		for _, b := range report.Cost.Budgets {
			budgetStr += fmt.Sprintf("%s: limit $%.2f, actual $%.2f, forecast $%.2f\n", b.Name, b.Limit, b.Actual, b.Forecast)
		}
		drawSection("Budget Status", strings.TrimSpace(budgetStr))

		if len(report.Errors) > 0 {
			drawSection("Errors", cleanRichTags(strings.Join(report.Errors, "\n")))
		}

		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Generated by AWS Cost Guardian | %s", time.Now().Format("2006-01-02"))
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", i+1)), "", 0, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func statusWord(ok bool) string {
	if ok {
		return "OK"
	}
	return "FAILED"
}

func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// Regex para limpar formatação pterm (rich tags) e sequências ANSI de cor/estilo.
var richTagRegex = regexp.MustCompile(`\[/?([a-zA-Z]+|#[0-9a-fA-F]{6})\]`)
var ansiRegex = regexp.MustCompile(`\x1B\[[0-9;]*[A-Za-z]`)

// cleanRichTags remove tags de formatação do pterm e sequências ANSI.
func cleanRichTags(text string) string {
	text = richTagRegex.ReplaceAllString(text, "")
	text = ansiRegex.ReplaceAllString(text, "")
	return text
}
