package version

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

// Valores padrão (sobrescritos por ldflags ou por build info)
var Version = "0.0.0-dev"
var Commit = ""
var BuildTime = ""

// repoPath identifica o repositório do projeto no GitHub, usado na checagem
// de releases e na instrução de atualização.
const repoPath = "diillson/aws-cost-guardian"

// populateFromBuildInfo preenche Version/Commit/BuildTime a partir das
// informações de VCS embedadas pelo Go (buildvcs=on por padrão em module
// mode). Valores já definidos por ldflags não são sobrescritos.
func populateFromBuildInfo() {
	if Version != "" && Version != "0.0.0-dev" {
		return
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return
	}

	settings := make(map[string]string, len(bi.Settings))
	for _, s := range bi.Settings {
		settings[s.Key] = s.Value
	}

	// vcs.revision: SHA completo do commit; usamos a forma curta (7 chars)
	if Commit == "" {
		if rev := settings["vcs.revision"]; len(rev) >= 7 {
			Commit = rev[:7]
		}
	}

	// vcs.time: RFC3339, normalizado para YYYY-mm-ddTHH:MM:SSZ
	if BuildTime == "" {
		if t := settings["vcs.time"]; t != "" {
			if ts, err := time.Parse(time.RFC3339, t); err == nil {
				BuildTime = ts.UTC().Format("2006-01-02T15:04:05Z")
			}
		}
	}

	// vcs.tag: última tag (ex: "v1.2.3") vira a versão base; "-dirty" é
	// anexado quando há modificações não commitadas.
	if tag := settings["vcs.tag"]; tag != "" {
		Version = strings.TrimPrefix(tag, "v")
		if m := settings["vcs.modified"]; m == "true" || m == "TRUE" {
			Version += "-dirty"
		}
	}
}

func init() {
	populateFromBuildInfo()
}

// CheckLatestVersion verifica se uma versão mais recente está disponível.
// Versões de desenvolvimento não são verificadas.
func CheckLatestVersion(currentVersion string) {
	if strings.HasSuffix(currentVersion, "-dev") {
		return
	}

	client := &http.Client{Timeout: 3 * time.Second}
	resp, err := client.Get(fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", repoPath))
	if err != nil {
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.Unmarshal(body, &release); err != nil {
		return
	}

	latestVersion := strings.TrimPrefix(release.TagName, "v")
	// Compara versões (heurística simples)
	if latestVersion > currentVersion {
		pterm.Warning.Println(fmt.Sprintf("A new version of AWS Cost Guardian is available: %s", latestVersion))
		pterm.Info.Println(fmt.Sprintf("Please update using: go install github.com/%s/cmd/aws-cost-guardian@latest", repoPath))
	}
}

// FormatVersion retorna a versão formatada com commit e build time.
// Ex.: "1.2.3 (commit: abc1234, built at: 2026-08-30T10:20:30Z)"
func FormatVersion() string {
	ver := Version
	if ver == "" {
		ver = "0.0.0-dev"
	}

	commit := Commit
	if commit == "" {
		commit = "development"
	}

	if commit == "development" && BuildTime == "" {
		return fmt.Sprintf("%s (development)", ver)
	}

	if BuildTime != "" {
		return fmt.Sprintf("%s (commit: %s, built at: %s)", ver, commit, BuildTime)
	}

	return fmt.Sprintf("%s (commit: %s)", ver, commit)
}
