package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"testing"

	"github.com/diillson/aws-cost-guardian/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() entity.RunReport {
	return entity.RunReport{
		Profile:          "default",
		AccountID:        "123456789012",
		BudgetOK:         true,
		MonitoringOK:     true,
		ShutdownOK:       false,
		ContainersOK:     true,
		AlarmsUpserted:   3,
		AlarmsDeleted:    1,
		StoppedInstances: []string{"i-0abc", "i-0def"},
		Cost: entity.CostReport{
			TotalCost: 42.5,
			ByService: []entity.ServiceCost{{ServiceName: "Amazon EC2", Cost: 40.0}},
		},
		Containers: entity.ContainerCostReport{TotalCost: 2.5},
		Errors:     []string{"error stopping 2 instances in us-east-1: access denied"},
	}
}

func TestExportToCSV(t *testing.T) {
	dir := t.TempDir()
	repo := NewExportRepository()

	path, err := repo.ExportToCSV([]entity.RunReport{sampleReport()}, "guardian", dir)
	require.NoError(t, err)
	assert.FileExists(t, path)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "CLI Profile", records[0][0])
	assert.Equal(t, "default", records[1][0])
	assert.Equal(t, "OK", records[1][2])
	assert.Equal(t, "FAILED", records[1][4])
	assert.Equal(t, "$42.50", records[1][9])
}

func TestExportToJSON(t *testing.T) {
	dir := t.TempDir()
	repo := NewExportRepository()

	path, err := repo.ExportToJSON([]entity.RunReport{sampleReport()}, "guardian", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []entity.RunReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "123456789012", decoded[0].AccountID)
	assert.Equal(t, 3, decoded[0].AlarmsUpserted)
}

func TestExportToPDF(t *testing.T) {
	dir := t.TempDir()
	repo := NewExportRepository()

	path, err := repo.ExportToPDF([]entity.RunReport{sampleReport()}, "guardian", dir)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestCleanRichTags(t *testing.T) {
	assert.Equal(t, "plain", cleanRichTags("[red]plain[/red]"))
	assert.Equal(t, "plain", cleanRichTags("\x1B[31mplain\x1B[0m"))
}
