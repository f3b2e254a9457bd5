package usecase

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/diillson/aws-cost-guardian/internal/domain/entity"
	"github.com/diillson/aws-cost-guardian/internal/domain/reconcile"
	"github.com/diillson/aws-cost-guardian/internal/domain/repository"
	"github.com/diillson/aws-cost-guardian/internal/shared/types"
)

// GuardianUseCase orquestra uma passada de governança de custos: budget
// mensal, reconciliação de alarmes, shutdown de instâncias não-produtivas,
// recursos de contêiner e resumo de custos. Cada operação de topo é um
// domínio de falha independente e vira um flag booleano no relatório.
type GuardianUseCase struct {
	awsRepo    repository.AWSRepository
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
	now        func() time.Time
}

// NewGuardianUseCase creates a new guardian use case.
func NewGuardianUseCase(
	awsRepo repository.AWSRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *GuardianUseCase {
	return &GuardianUseCase{
		awsRepo:    awsRepo,
		exportRepo: exportRepo,
		configRepo: configRepo,
		console:    console,
		now:        time.Now,
	}
}

// InitializeProfiles determines which AWS profiles to use based on CLI args.
func (uc *GuardianUseCase) InitializeProfiles(args *types.CLIArgs) ([]string, error) {
	availableProfiles := uc.awsRepo.GetAWSProfiles()
	if len(availableProfiles) == 0 {
		return nil, types.ErrNoProfilesFound
	}

	profilesToUse := []string{}

	if len(args.Profiles) > 0 {
		for _, profile := range args.Profiles {
			found := false
			for _, availProfile := range availableProfiles {
				if profile == availProfile {
					profilesToUse = append(profilesToUse, profile)
					found = true
					break
				}
			}
			if !found {
				uc.console.LogWarning("Profile '%s' not found in AWS configuration", profile)
			}
		}
		if len(profilesToUse) == 0 {
			return nil, types.ErrNoValidProfilesFound
		}
	} else if args.All {
		profilesToUse = availableProfiles
	} else {
		// Usa o perfil default quando existir; caso contrário, todos.
		defaultExists := false
		for _, profile := range availableProfiles {
			if profile == "default" {
				profilesToUse = []string{"default"}
				defaultExists = true
				break
			}
		}

		if !defaultExists {
			profilesToUse = availableProfiles
			uc.console.LogWarning("No default profile found. Using all available profiles.")
		}
	}

	return profilesToUse, nil
}

// Run executa a passada de governança para todos os perfis selecionados.
// Falhas de operação viram flags no relatório e linhas de log; apenas
// falhas de inicialização (config, perfis, e-mail) retornam erro.
func (uc *GuardianUseCase) Run(ctx context.Context, args *types.CLIArgs) error {
	if args.ConfigFile != "" {
		cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return err
		}
		mergeConfig(args, cfg)
	}
	applyDefaults(args)

	if args.NotificationEmail == "" {
		return types.ErrNoNotificationEmail
	}

	profiles, err := uc.InitializeProfiles(args)
	if err != nil {
		return err
	}

	reports := make([]entity.RunReport, 0, len(profiles))
	for _, profile := range profiles {
		status := uc.console.Status(fmt.Sprintf("Processing profile %s...", profile))
		report := uc.RunProfile(ctx, profile, args)
		status.Stop()
		uc.displayReport(report)
		reports = append(reports, report)
	}

	if args.ReportName != "" {
		uc.exportReports(reports, args)
	}

	return nil
}

// defaultMonthlyBudget é o limite usado quando nem a flag --budget nem o
// arquivo de configuração definem um valor.
const defaultMonthlyBudget = 100.0

// applyDefaults preenche os valores efetivos depois da mesclagem com o
// arquivo de configuração, para que os defaults das flags não mascarem os
// valores do arquivo.
func applyDefaults(args *types.CLIArgs) {
	if args.MonthlyBudget == 0 {
		args.MonthlyBudget = defaultMonthlyBudget
	}
	if len(args.ReportType) == 0 {
		args.ReportType = []string{"csv"}
	}
	if args.Dir == "" {
		if cwd, err := os.Getwd(); err == nil {
			args.Dir = cwd
		}
	}
}

// mergeConfig aplica valores do arquivo de configuração aos argumentos que
// não foram definidos na linha de comando (flags têm precedência).
func mergeConfig(args *types.CLIArgs, cfg *types.Config) {
	if args.MonthlyBudget == 0 && cfg.MonthlyBudget > 0 {
		args.MonthlyBudget = cfg.MonthlyBudget
	}
	if args.NotificationEmail == "" {
		args.NotificationEmail = cfg.NotificationEmail
	}
	if len(args.Profiles) == 0 {
		args.Profiles = cfg.Profiles
	}
	if len(args.Regions) == 0 {
		args.Regions = cfg.Regions
	}
	if !args.SkipShutdown {
		args.SkipShutdown = cfg.SkipShutdown
	}
	if args.ReportName == "" {
		args.ReportName = cfg.ReportName
	}
	if len(args.ReportType) == 0 {
		args.ReportType = cfg.ReportType
	}
	if args.Dir == "" {
		args.Dir = cfg.Dir
	}
}

// RunProfile executa a passada completa para um único perfil.
func (uc *GuardianUseCase) RunProfile(ctx context.Context, profile string, args *types.CLIArgs) entity.RunReport {
	report := entity.RunReport{Profile: profile}

	accountID, err := uc.awsRepo.GetAccountID(ctx, profile)
	if err != nil {
		uc.console.LogError("Failed to resolve account for profile %s: %v", profile, err)
		report.Errors = append(report.Errors, err.Error())
		return report
	}
	report.AccountID = accountID

	regions := args.Regions
	if len(regions) == 0 {
		regions, err = uc.awsRepo.GetAccessibleRegions(ctx, profile)
		if err != nil {
			uc.console.LogWarning("Could not list accessible regions: %v", err)
		}
	}

	report.BudgetOK = uc.ensureBudget(ctx, profile, args, &report)
	report.MonitoringOK = uc.reconcileInstanceAlarms(ctx, profile, regions, &report)

	if args.SkipShutdown {
		report.ShutdownOK = true
		uc.console.LogInfo("Non-production shutdown skipped")
	} else {
		report.ShutdownOK = uc.stopNonProductionInstances(ctx, profile, regions, &report)
	}

	report.ContainersOK = uc.reconcileContainerResources(ctx, profile, regions, &report)

	// Resumos de custo são somente leitura; falhas viram avisos e deixam
	// o relatório com valores zerados, sem derrubar nenhum domínio.
	if summary, err := uc.awsRepo.GetEC2Summary(ctx, profile, regions); err == nil {
		report.EC2Summary = summary
	}
	cost, err := uc.awsRepo.GetCostSummary(ctx, profile)
	if err != nil {
		uc.console.LogWarning("Failed to get cost summary: %v", err)
		report.Errors = append(report.Errors, err.Error())
	} else {
		report.Cost = cost
	}
	containerCost, err := uc.awsRepo.GetContainerCostSummary(ctx, profile)
	if err != nil {
		uc.console.LogWarning("Failed to get container cost summary: %v", err)
		report.Errors = append(report.Errors, err.Error())
	} else {
		report.Containers = containerCost
	}

	return report
}

// ensureBudget garante o budget mensal com os alertas de notificação.
func (uc *GuardianUseCase) ensureBudget(ctx context.Context, profile string, args *types.CLIArgs, report *entity.RunReport) bool {
	spec := entity.NewMonthlyBudget(uc.now().UTC(), args.MonthlyBudget, args.NotificationEmail)

	if err := uc.awsRepo.UpsertBudget(ctx, profile, spec); err != nil {
		uc.console.LogError("Failed to manage budget: %v", err)
		report.Errors = append(report.Errors, err.Error())
		return false
	}

	uc.console.LogSuccess("Budget %s is up to date (limit $%.2f)", spec.Name, spec.LimitAmount)
	return true
}

// reconcileInstanceAlarms reconcilia os alarmes LowCPU- das instâncias em
// execução, região por região. Regiões sem instâncias também são visitadas
// para remover alarmes de instâncias já terminadas.
func (uc *GuardianUseCase) reconcileInstanceAlarms(ctx context.Context, profile string, regions []string, report *entity.RunReport) bool {
	instances, err := uc.awsRepo.GetRunningInstances(ctx, profile, regions)
	if err != nil {
		uc.console.LogError("Failed to manage resource monitoring: %v", err)
		report.Errors = append(report.Errors, err.Error())
		return false
	}

	byRegion := make(map[string][]entity.Instance)
	for _, inst := range instances {
		byRegion[inst.Region] = append(byRegion[inst.Region], inst)
	}

	for _, region := range regions {
		desired := make(map[string]entity.AlarmSpec)
		for _, inst := range byRegion[region] {
			spec := entity.EC2LowCPUAlarm(inst.InstanceID)
			desired[spec.Name] = spec
		}

		if ok := uc.reconcileAlarms(ctx, profile, region, entity.AlarmPrefixEC2LowCPU, desired, report); !ok {
			return false
		}
	}

	return true
}

// reconcileAlarms executa uma reconciliação de alarmes para um prefixo em
// uma região: upsert incondicional de todos os desejados e remoção em lote
// dos obsoletos.
func (uc *GuardianUseCase) reconcileAlarms(
	ctx context.Context,
	profile, region, prefix string,
	desired map[string]entity.AlarmSpec,
	report *entity.RunReport,
) bool {
	existing, err := uc.awsRepo.ListAlarmNames(ctx, profile, region, prefix)
	if err != nil {
		uc.console.LogError("Failed to list alarms with prefix %s: %v", prefix, err)
		report.Errors = append(report.Errors, err.Error())
		return false
	}

	desiredNames := make([]string, 0, len(desired))
	for name := range desired {
		desiredNames = append(desiredNames, name)
	}
	sort.Strings(desiredNames)

	result, err := reconcile.Names(ctx, desiredNames, existing,
		func(ctx context.Context, name string) error {
			return uc.awsRepo.PutAlarm(ctx, profile, region, desired[name])
		},
		func(ctx context.Context, names []string) error {
			return uc.awsRepo.DeleteAlarms(ctx, profile, region, names)
		},
	)

	report.AlarmsUpserted += len(result.Upserted)
	report.AlarmsDeleted += len(result.Deleted)

	if err != nil {
		uc.console.LogError("Failed to reconcile %s alarms in %s: %v", prefix, region, err)
		report.Errors = append(report.Errors, err.Error())
		return false
	}

	if len(result.Deleted) > 0 {
		uc.console.LogInfo("Cleaned up %d obsolete %s alarms in %s", len(result.Deleted), prefix, region)
	}
	return true
}

// stopNonProductionInstances pára instâncias em execução marcadas com tag
// Environment de desenvolvimento ou teste. Instâncias sem a tag nunca são
// paradas.
func (uc *GuardianUseCase) stopNonProductionInstances(ctx context.Context, profile string, regions []string, report *entity.RunReport) bool {
	instances, err := uc.awsRepo.GetRunningInstances(ctx, profile, regions)
	if err != nil {
		uc.console.LogError("Failed to manage resource shutdown: %v", err)
		report.Errors = append(report.Errors, err.Error())
		return false
	}

	byRegion := make(map[string][]string)
	instancesByRegion := make(map[string][]entity.Instance)
	for _, inst := range instances {
		instancesByRegion[inst.Region] = append(instancesByRegion[inst.Region], inst)
	}
	for region, regionInstances := range instancesByRegion {
		if ids := entity.ShutdownCandidates(regionInstances); len(ids) > 0 {
			byRegion[region] = ids
		}
	}

	if len(byRegion) == 0 {
		uc.console.LogInfo("No running development/testing instances found")
		return true
	}

	regionsWithCandidates := make([]string, 0, len(byRegion))
	for region := range byRegion {
		regionsWithCandidates = append(regionsWithCandidates, region)
	}
	sort.Strings(regionsWithCandidates)

	for _, region := range regionsWithCandidates {
		ids := byRegion[region]
		if err := uc.awsRepo.StopInstances(ctx, profile, region, ids); err != nil {
			uc.console.LogError("Failed to stop instances in %s: %v", region, err)
			report.Errors = append(report.Errors, err.Error())
			return false
		}
		report.StoppedInstances = append(report.StoppedInstances, ids...)
		uc.console.LogInfo("Stopped %d instances in %s: %v", len(ids), region, ids)
	}

	return true
}

// reconcileContainerResources cobre ECS, ECR e EKS como um único domínio de
// falha: a primeira operação com erro aborta o restante, e o que já foi
// aplicado permanece aplicado.
func (uc *GuardianUseCase) reconcileContainerResources(ctx context.Context, profile string, regions []string, report *entity.RunReport) bool {
	for _, region := range regions {
		if !uc.reconcileECSAlarms(ctx, profile, region, report) {
			return false
		}
		if !uc.manageECRRepositories(ctx, profile, region, report) {
			return false
		}
		if !uc.reconcileEKSAlarms(ctx, profile, region, report) {
			return false
		}
	}
	return true
}

func (uc *GuardianUseCase) reconcileECSAlarms(ctx context.Context, profile, region string, report *entity.RunReport) bool {
	services, err := uc.awsRepo.ListECSServices(ctx, profile, region)
	if err != nil {
		uc.console.LogError("Failed to manage ECS resources: %v", err)
		report.Errors = append(report.Errors, err.Error())
		return false
	}

	desired := make(map[string]entity.AlarmSpec)
	for _, svc := range services {
		spec := entity.ECSServiceLowCPUAlarm(svc.ClusterName, svc.ServiceName)
		desired[spec.Name] = spec
	}

	return uc.reconcileAlarms(ctx, profile, region, entity.AlarmPrefixECSLowCPU, desired, report)
}

func (uc *GuardianUseCase) manageECRRepositories(ctx context.Context, profile, region string, report *entity.RunReport) bool {
	repositories, err := uc.awsRepo.ListECRRepositories(ctx, profile, region)
	if err != nil {
		uc.console.LogError("Failed to manage ECR resources: %v", err)
		report.Errors = append(report.Errors, err.Error())
		return false
	}

	desired := make(map[string]entity.AlarmSpec)
	for _, repo := range repositories {
		if err := uc.awsRepo.PutECRLifecyclePolicy(ctx, profile, region, repo.Name, entity.ECRLifecyclePolicy); err != nil {
			uc.console.LogError("Failed to put lifecycle policy on %s: %v", repo.Name, err)
			report.Errors = append(report.Errors, err.Error())
			return false
		}
		spec := entity.ECRHighStorageAlarm(repo.Name)
		desired[spec.Name] = spec
	}

	return uc.reconcileAlarms(ctx, profile, region, entity.AlarmPrefixECRHighStorage, desired, report)
}

func (uc *GuardianUseCase) reconcileEKSAlarms(ctx context.Context, profile, region string, report *entity.RunReport) bool {
	clusters, err := uc.awsRepo.ListEKSClusters(ctx, profile, region)
	if err != nil {
		uc.console.LogError("Failed to manage EKS resources: %v", err)
		report.Errors = append(report.Errors, err.Error())
		return false
	}

	// Alarmes de control plane e de node group compartilham o prefixo EKS-
	// e são reconciliados como um único conjunto.
	desired := make(map[string]entity.AlarmSpec)
	for _, cluster := range clusters {
		spec := entity.EKSControlPlaneAlarm(cluster.Name)
		desired[spec.Name] = spec
		for _, nodegroup := range cluster.Nodegroups {
			ngSpec := entity.EKSNodegroupCPUAlarm(cluster.Name, nodegroup)
			desired[ngSpec.Name] = ngSpec
		}
	}

	return uc.reconcileAlarms(ctx, profile, region, entity.AlarmPrefixEKS, desired, report)
}

// displayReport renderiza o relatório de uma passada no console.
func (uc *GuardianUseCase) displayReport(report entity.RunReport) {
	table := uc.console.CreateTable()
	table.AddColumn("Operation")
	table.AddColumn("Status")

	status := func(ok bool) string {
		if ok {
			return "OK"
		}
		return "FAILED"
	}

	table.AddRow("Monthly budget", status(report.BudgetOK))
	table.AddRow("Resource monitoring", fmt.Sprintf("%s (%d upserted, %d deleted)", status(report.MonitoringOK), report.AlarmsUpserted, report.AlarmsDeleted))
	table.AddRow("Non-production shutdown", fmt.Sprintf("%s (%d stopped)", status(report.ShutdownOK), len(report.StoppedInstances)))
	table.AddRow("Container resources", status(report.ContainersOK))

	uc.console.Println()
	uc.console.LogInfo("Profile %s (account %s)", report.Profile, report.AccountID)
	uc.console.Println(table.Render())

	if len(report.EC2Summary) > 0 {
		uc.console.LogInfo("EC2 instances: %d running, %d stopped", report.EC2Summary["running"], report.EC2Summary["stopped"])
	}

	if len(report.Cost.ByService) > 0 {
		costTable := uc.console.CreateTable()
		costTable.AddColumn("Service")
		costTable.AddColumn("Month-to-Date Cost")
		for _, sc := range report.Cost.ByService {
			costTable.AddRow(sc.ServiceName, fmt.Sprintf("$%.2f", sc.Cost))
		}
		costTable.AddRow("Total", fmt.Sprintf("$%.2f", report.Cost.TotalCost))
		uc.console.Println(costTable.Render())
	}

	if len(report.Cost.Budgets) > 0 {
		budgetTable := uc.console.CreateTable()
		budgetTable.AddColumn("Budget")
		budgetTable.AddColumn("Limit")
		budgetTable.AddColumn("Actual")
		budgetTable.AddColumn("Forecast")
		for _, b := range report.Cost.Budgets {
			budgetTable.AddRow(b.Name, fmt.Sprintf("$%.2f", b.Limit), fmt.Sprintf("$%.2f", b.Actual), fmt.Sprintf("$%.2f", b.Forecast))
		}
		uc.console.Println(budgetTable.Render())
	}

	if len(report.Containers.ByUsage) > 0 {
		containerTable := uc.console.CreateTable()
		containerTable.AddColumn("Container Service")
		containerTable.AddColumn("Usage Type")
		containerTable.AddColumn("Cost")
		for _, usage := range report.Containers.ByUsage {
			containerTable.AddRow(usage.ServiceName, usage.UsageType, fmt.Sprintf("$%.2f", usage.Cost))
		}
		uc.console.Println(containerTable.Render())
	}

	if report.Succeeded() {
		uc.console.LogSuccess("All cost governance operations completed for %s", report.Profile)
	} else {
		uc.console.LogWarning("Some operations failed for %s; see the log above", report.Profile)
	}
}

// exportReports grava os relatórios nos formatos solicitados.
func (uc *GuardianUseCase) exportReports(reports []entity.RunReport, args *types.CLIArgs) {
	for _, reportType := range args.ReportType {
		var path string
		var err error
		switch reportType {
		case "csv":
			path, err = uc.exportRepo.ExportToCSV(reports, args.ReportName, args.Dir)
		case "json":
			path, err = uc.exportRepo.ExportToJSON(reports, args.ReportName, args.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportToPDF(reports, args.ReportName, args.Dir)
		default:
			uc.console.LogWarning("Unknown report type: %s", reportType)
			continue
		}
		if err != nil {
			uc.console.LogError("Failed to export %s report: %v", reportType, err)
			continue
		}
		uc.console.LogSuccess("Exported %s report to %s", reportType, path)
	}
}
