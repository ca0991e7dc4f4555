// Package report renders weekly study plans as markdown and PDF.
package report

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/example/wordplan/internal/account"
	"github.com/example/wordplan/internal/planner"
	"github.com/example/wordplan/internal/schedule"
)

//go:embed templates/week-plan.md.go.tmpl
var fallbackWeekPlanTemplate string

// WeekPlanTemplate is the top-level data structure for week plan templates
type WeekPlanTemplate struct {
	StudentName string
	WeekStart   schedule.Date
	Days        []DayEntry
}

// DayEntry represents a single day of the week for template rendering.
// Reason is empty when content is due.
type DayEntry struct {
	Date     schedule.Date
	Weekday  string
	Reason   string
	ItemType string
	Words    schedule.Window
	Sections *schedule.SectionSpan
	Half     string
	Terms    []string
}

// BuildWeekPlan converts resolved day plans into template data.
func BuildWeekPlan(studentName string, weekStart schedule.Date, plans []planner.DayPlan) WeekPlanTemplate {
	data := WeekPlanTemplate{
		StudentName: studentName,
		WeekStart:   weekStart,
	}
	for _, plan := range plans {
		entry := DayEntry{
			Date:    plan.Date,
			Weekday: plan.Date.Weekday().String(),
		}
		if assignment := plan.Result.Assignment; assignment != nil {
			entry.ItemType = string(assignment.ItemType)
			entry.Words = assignment.Words
			entry.Sections = assignment.Sections
			entry.Half = string(assignment.Half)
			for _, word := range plan.Words {
				entry.Terms = append(entry.Terms, word.Term)
			}
		} else {
			entry.Reason = string(plan.Result.Reason)
		}
		data.Days = append(data.Days, entry)
	}
	return data
}

// WriteWeekPlan renders the week plan as markdown. templatePath selects a
// custom template file; when empty, the embedded fallback template is used.
func WriteWeekPlan(output io.Writer, templatePath string, data WeekPlanTemplate) error {
	tmpl, err := parseTemplateWithFallback(templatePath, fallbackWeekPlanTemplate)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, data); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}

func parseTemplateWithFallback(templatePath string, fallbackTemplate string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join": strings.Join,
	}

	// If template path is empty, use fallback directly
	if templatePath == "" {
		fileName := "week-plan.md.go.tmpl"
		tmpl, err := template.New(fileName).
			Funcs(funcMap).
			Parse(fallbackTemplate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse embedded template: %w", err)
		}
		return tmpl, nil
	}

	// If template path is provided, it must be valid.
	if _, err := os.Stat(templatePath); err != nil {
		return nil, fmt.Errorf("template file not found or accessible: %w", err)
	}

	fileName := filepath.Base(templatePath)
	tmpl, err := template.New(fileName).
		Funcs(funcMap).
		ParseFiles(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template file %s: %w", templatePath, err)
	}
	return tmpl, nil
}

// Generator produces week plan reports for students.
type Generator struct {
	planner      *planner.Service
	accounts     account.Repository
	outputDir    string
	templatePath string
}

// NewGenerator creates a Generator writing reports under outputDir.
func NewGenerator(planner *planner.Service, accounts account.Repository, outputDir, templatePath string) *Generator {
	return &Generator{
		planner:      planner,
		accounts:     accounts,
		outputDir:    outputDir,
		templatePath: templatePath,
	}
}

// WeekPlanReport resolves the seven days starting at weekStart, writes the
// markdown report and converts it to PDF. It returns the markdown and PDF
// paths.
func (g *Generator) WeekPlanReport(ctx context.Context, studentID int64, weekStart schedule.Date) (string, string, error) {
	studentName := fmt.Sprintf("student %d", studentID)
	student, err := g.accounts.FindStudent(ctx, studentID)
	if err != nil {
		return "", "", fmt.Errorf("accounts.FindStudent > %w", err)
	}
	if student != nil {
		studentName = student.Name
	}

	plans := make([]planner.DayPlan, 0, 7)
	for i := 0; i < 7; i++ {
		plan, err := g.planner.PlanDay(ctx, studentID, weekStart.AddDays(i))
		if err != nil {
			return "", "", fmt.Errorf("planner.PlanDay > %w", err)
		}
		plans = append(plans, *plan)
	}

	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return "", "", fmt.Errorf("os.MkdirAll(%s) > %w", g.outputDir, err)
	}
	markdownPath := filepath.Join(g.outputDir,
		fmt.Sprintf("week-plan-%d-%s.md", studentID, weekStart))

	file, err := os.Create(markdownPath)
	if err != nil {
		return "", "", fmt.Errorf("os.Create(%s) > %w", markdownPath, err)
	}
	data := BuildWeekPlan(studentName, weekStart, plans)
	if err := WriteWeekPlan(file, g.templatePath, data); err != nil {
		_ = file.Close()
		return "", "", err
	}
	if err := file.Close(); err != nil {
		return "", "", fmt.Errorf("file.Close() > %w", err)
	}

	pdfPath, err := ConvertMarkdownToPDF(markdownPath)
	if err != nil {
		return "", "", fmt.Errorf("ConvertMarkdownToPDF > %w", err)
	}
	return markdownPath, pdfPath, nil
}
