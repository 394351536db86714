package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"srpcheck/internal/config"
	"srpcheck/internal/models"

	"github.com/fatih/color"
)

// ReportGenerator handles formatting and displaying analysis results
type ReportGenerator struct {
	format string
	config *config.Config
}

// NewReportGenerator creates a new report generator
func NewReportGenerator(format string) *ReportGenerator {
	return &ReportGenerator{
		format: format,
		config: config.DefaultConfig(),
	}
}

func NewReportGeneratorWithConfig(cfg *config.Config) *ReportGenerator {
	return &ReportGenerator{
		format: cfg.Output.Format,
		config: cfg,
	}
}

// Generate creates a formatted report from analysis results
func (r *ReportGenerator) Generate(result *models.AnalysisResult) string {
	switch r.format {
	case "json":
		return r.generateJSON(result)
	default:
		return r.generateConsole(result)
	}
}

// generateJSON creates a JSON report
func (r *ReportGenerator) generateJSON(result *models.AnalysisResult) string {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Sprintf("Error generating JSON report: %v", err)
	}
	return string(data)
}

// generateConsole creates a colorized console report
func (r *ReportGenerator) generateConsole(result *models.AnalysisResult) string {
	var report strings.Builder

	useColors := true
	verbose := false
	if r.config != nil {
		useColors = r.config.Output.Colors
		verbose = r.config.Output.Verbose
	}

	// Header
	if useColors {
		report.WriteString(color.CyanString("🔍 srpcheck Analysis Report\n"))
		report.WriteString(color.WhiteString("═══════════════════════════════════════\n\n"))
	} else {
		report.WriteString("srpcheck Analysis Report\n")
		report.WriteString("=======================================\n\n")
	}

	if verbose && r.config != nil {
		r.writeConfigInfo(&report, useColors)
	}

	r.writeSummary(&report, result, useColors)

	for _, failure := range result.ParseFailures {
		if useColors {
			report.WriteString(color.RedString("⚠️  Skipped: %s\n", failure))
		} else {
			report.WriteString(fmt.Sprintf("Skipped: %s\n", failure))
		}
	}
	if len(result.ParseFailures) > 0 {
		report.WriteString("\n")
	}

	if len(result.Violations) > 0 {
		r.writeRuleSummary(&report, result, useColors)
		report.WriteString("\n")
		r.writeDetailedViolations(&report, result, useColors)
	} else {
		if useColors {
			report.WriteString(color.GreenString("🎉 No SRP violations detected.\n\n"))
		} else {
			report.WriteString("No SRP violations detected.\n\n")
		}
	}

	// Footer
	if useColors {
		report.WriteString(color.WhiteString("Analysis completed in %s\n", result.AnalysisDuration))
	} else {
		report.WriteString(fmt.Sprintf("Analysis completed in %s\n", result.AnalysisDuration))
	}

	return report.String()
}

func (r *ReportGenerator) writeConfigInfo(report *strings.Builder, useColors bool) {
	thresholds := fmt.Sprintf("methods %d, dependencies %d",
		r.config.Analysis.MethodThreshold,
		r.config.Analysis.DependencyThreshold)
	if useColors {
		report.WriteString(color.WhiteString("📋 Configuration:\n"))
		report.WriteString(fmt.Sprintf("   Thresholds: %s\n", color.CyanString(thresholds)))
	} else {
		report.WriteString("Configuration:\n")
		report.WriteString(fmt.Sprintf("   Thresholds: %s\n", thresholds))
	}
	report.WriteString("\n")
}

func (r *ReportGenerator) writeSummary(report *strings.Builder, result *models.AnalysisResult, useColors bool) {
	if useColors {
		report.WriteString(color.WhiteString("📊 Summary:\n"))
	} else {
		report.WriteString("Summary:\n")
	}
	report.WriteString(fmt.Sprintf("   Files analyzed: %d\n", len(result.Files)))
	report.WriteString(fmt.Sprintf("   Violations found: %d\n", result.TotalViolations))
	report.WriteString("\n")
}

func (r *ReportGenerator) writeRuleSummary(report *strings.Builder, result *models.AnalysisResult, useColors bool) {
	if useColors {
		report.WriteString(color.WhiteString("📋 Violations by Rule:\n"))
	} else {
		report.WriteString("Violations by Rule:\n")
	}

	ruleOrder := []models.RuleType{models.RuleMethodCount, models.RuleDependencies, models.RuleMixedActions}
	for _, rule := range ruleOrder {
		count := result.ViolationsByRule[string(rule)]
		if count == 0 {
			continue
		}
		if useColors {
			report.WriteString(fmt.Sprintf("   %s: %s\n", rule, color.YellowString("%d", count)))
		} else {
			report.WriteString(fmt.Sprintf("   %s: %d\n", rule, count))
		}
	}
}

func (r *ReportGenerator) writeDetailedViolations(report *strings.Builder, result *models.AnalysisResult, useColors bool) {
	if useColors {
		report.WriteString(color.WhiteString("🔍 Detailed Violations:\n"))
	} else {
		report.WriteString("Detailed Violations:\n")
	}
	report.WriteString(strings.Repeat("─", 50) + "\n")

	// Violations stay in analysis order: rule order per class, classes in
	// document order, files in argument order.
	currentFile := ""
	for _, v := range result.Violations {
		if v.File != currentFile {
			currentFile = v.File
			if useColors {
				report.WriteString(color.CyanString("\n%s:\n", currentFile))
			} else {
				report.WriteString(fmt.Sprintf("\n%s:\n", currentFile))
			}
		}
		report.WriteString(FormatViolation(v, useColors))
	}
	report.WriteString("\n")
}

// FormatViolation renders one finding as the canonical report line.
func FormatViolation(v models.Violation, useColors bool) string {
	if useColors {
		return fmt.Sprintf("   - Class %s: %s\n", color.YellowString(v.Class), v.Reason)
	}
	return fmt.Sprintf("   - Class %s: %s\n", v.Class, v.Reason)
}
