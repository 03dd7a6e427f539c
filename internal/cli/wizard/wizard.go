package wizard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/stackforge-dev/stackforge/internal/config"
	"github.com/stackforge-dev/stackforge/pkg/models"
)

// Run executes the wizard, writing answers into cfg as each question is
// answered. Each question runs as its own independent huh.Form so that
// conditions and derived option sets see settled earlier answers.
func Run(questions []Question, cfg *config.ProjectConfig) error {
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	theme := newWizardTheme()

	for i := range questions {
		q := &questions[i]

		if q.Condition != nil && !q.Condition(cfg) {
			continue
		}

		field, err := buildField(q, cfg)
		if err != nil {
			return err
		}

		form := huh.NewForm(huh.NewGroup(field)).
			WithTheme(theme).
			WithAccessible(false)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return ErrCancelled
			}
			return fmt.Errorf("wizard error: %w", err)
		}
	}

	return nil
}

// RunWithDefaults runs the wizard with the standard question set.
func RunWithDefaults(cfg *config.ProjectConfig, defaultName string) error {
	return Run(DefaultQuestions(defaultName), cfg)
}

// buildField creates the huh field for a single question.
func buildField(q *Question, cfg *config.ProjectConfig) (huh.Field, error) {
	switch q.Type {
	case QuestionTypeSelect:
		return buildSelectField(q, cfg), nil
	case QuestionTypeMultiSelect:
		return buildMultiSelectField(q, cfg), nil
	case QuestionTypeInput:
		return buildInputField(q, cfg), nil
	case QuestionTypeConfirm:
		return buildConfirmField(q, cfg), nil
	default:
		return nil, fmt.Errorf("wizard: unknown question type %d", q.Type)
	}
}

// questionOptions resolves the option set for the current answers.
func questionOptions(q *Question, cfg *config.ProjectConfig) []Option {
	if q.OptionsFrom != nil {
		return q.OptionsFrom(cfg)
	}
	return q.Options
}

// buildSelectField creates a huh.Select field for a select-type question.
// Options are built eagerly: each question runs as its own sequential
// form, so every answer this option set depends on is already stored.
func buildSelectField(q *Question, cfg *config.ProjectConfig) *huh.Select[string] {
	options := questionOptions(q, cfg)

	selected := q.Default
	if selected == "" && len(options) > 0 {
		selected = options[0].Value
	}

	opts := make([]huh.Option[string], len(options))
	for i, opt := range options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	sel := huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected)

	qID := q.ID
	sel.Validate(func(val string) error {
		return saveAnswer(qID, val, cfg)
	})

	return sel
}

// buildMultiSelectField creates a huh.MultiSelect field.
func buildMultiSelectField(q *Question, cfg *config.ProjectConfig) *huh.MultiSelect[string] {
	options := questionOptions(q, cfg)

	opts := make([]huh.Option[string], len(options))
	defaults := make(map[string]bool, len(q.Defaults))
	for _, d := range q.Defaults {
		defaults[d] = true
	}
	for i, opt := range options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value).Selected(defaults[opt.Value])
	}

	var selected []string
	ms := huh.NewMultiSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected)

	qID := q.ID
	ms.Validate(func(vals []string) error {
		return saveAnswer(qID, strings.Join(vals, ","), cfg)
	})

	return ms
}

// buildInputField creates a huh.Input field for an input-type question.
func buildInputField(q *Question, cfg *config.ProjectConfig) *huh.Input {
	value := q.Default

	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)

	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	qID := q.ID
	required := q.Required
	defVal := q.Default
	inp = inp.Validate(func(val string) error {
		v := strings.TrimSpace(val)
		if v == "" && defVal != "" {
			v = defVal
		}
		if required && v == "" {
			return errors.New("a value is required")
		}
		return saveAnswer(qID, v, cfg)
	})

	return inp
}

// buildConfirmField creates a huh.Confirm field.
func buildConfirmField(q *Question, cfg *config.ProjectConfig) *huh.Confirm {
	value := q.Default == "true"

	c := huh.NewConfirm().
		Title(q.Title).
		Description(q.Description).
		Affirmative("Yes").
		Negative("No").
		Value(&value)

	qID := q.ID
	c = c.Validate(func(val bool) error {
		return saveAnswer(qID, strconv.FormatBool(val), cfg)
	})

	return c
}

// saveAnswer parses one answer into the config. Values arrive from huh as
// strings; multi-select answers are comma-joined.
func saveAnswer(id, value string, cfg *config.ProjectConfig) error {
	switch id {
	case "project_name":
		cfg.ProjectName = value
	case "frontends":
		frontends, err := parseList(value, models.ParseFrontend)
		if err != nil {
			return err
		}
		cfg.Frontends = frontends
	case "backend":
		v, err := models.ParseBackend(value)
		if err != nil {
			return err
		}
		cfg.Backend = v
	case "runtime":
		v, err := models.ParseRuntime(value)
		if err != nil {
			return err
		}
		cfg.Runtime = v
	case "database":
		v, err := models.ParseDatabase(value)
		if err != nil {
			return err
		}
		cfg.Database = v
		if v == models.DatabaseNone {
			cfg.ORM = models.ORMNone
			cfg.DBSetup = models.DBSetupNone
		}
	case "orm":
		v, err := models.ParseORM(value)
		if err != nil {
			return err
		}
		cfg.ORM = v
	case "db_setup":
		v, err := models.ParseDBSetup(value)
		if err != nil {
			return err
		}
		cfg.DBSetup = v
	case "auth":
		cfg.Auth = value == "true"
	case "api":
		v, err := models.ParseAPI(value)
		if err != nil {
			return err
		}
		cfg.API = v
	case "addons":
		addons, err := parseList(value, models.ParseAddon)
		if err != nil {
			return err
		}
		cfg.Addons = addons
	case "examples":
		examples, err := parseList(value, models.ParseExample)
		if err != nil {
			return err
		}
		cfg.Examples = examples
	case "package_manager":
		v, err := models.ParsePackageManager(value)
		if err != nil {
			return err
		}
		cfg.PackageManager = v
	case "deployment":
		v, err := models.ParseDeployment(value)
		if err != nil {
			return err
		}
		cfg.Deployment = v
	case "git":
		cfg.Git = value == "true"
	case "install":
		cfg.Install = value == "true"
	}
	return nil
}

// parseList parses a comma-joined multi-select answer.
func parseList[T any](value string, parse func(string) (T, error)) ([]T, error) {
	out := []T{}
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" || part == "none" {
			continue
		}
		v, err := parse(part)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// newWizardTheme creates a huh.Theme with stackforge branding.
func newWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#7C3AED"}
	secondary := lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#06B6D4"}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: "#22C55E"}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F9FAFB"}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(text)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
