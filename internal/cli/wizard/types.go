// Package wizard provides the interactive stack-selection flow used by
// `stackforge create` when running in a terminal.
package wizard

import (
	"errors"

	"github.com/stackforge-dev/stackforge/internal/config"
)

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeMultiSelect is a multiple-choice selection question.
	QuestionTypeMultiSelect
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
	// QuestionTypeConfirm is a yes/no question.
	QuestionTypeConfirm
)

// Question defines a single wizard question. Answers are written into a
// ProjectConfig as the wizard advances, so later questions can condition
// on, and derive options from, earlier answers.
type Question struct {
	ID          string       // Unique identifier
	Type        QuestionType // Select, MultiSelect, Input, or Confirm
	Title       string       // Question title
	Description string       // Additional description
	Options     []Option     // Static options for select questions
	Default     string       // Default value (single-value questions)
	Defaults    []string     // Default values (multi-select questions)
	Required    bool         // Whether the field is required

	// OptionsFrom derives options from answers given so far. When set it
	// takes precedence over Options.
	OptionsFrom func(*config.ProjectConfig) []Option

	// Condition gates the question on answers given so far.
	Condition func(*config.ProjectConfig) bool
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
)
