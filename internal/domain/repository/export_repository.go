package repository

import (
	"github.com/diillson/aws-cost-guardian/internal/domain/entity"
)

type ExportRepository interface {
	ExportToCSV(reports []entity.RunReport, filename string, outputDir string) (string, error)
	ExportToJSON(reports []entity.RunReport, filename string, outputDir string) (string, error)
	ExportToPDF(reports []entity.RunReport, filename string, outputDir string) (string, error)
}
