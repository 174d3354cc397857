// Package fill drives an interactive terminal session over a form document:
// it prompts for each input field step by step, honours the navigation
// gating, and hands back the captured submission.
package fill

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/document"
	"github.com/goliatone/go-formbuilder/pkg/field"
	"github.com/goliatone/go-formbuilder/pkg/navigation"
	"github.com/goliatone/go-formbuilder/pkg/submission"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

const (
	actionNext     = "Next"
	actionPrevious = "Previous"
	actionSubmit   = "Submit"
)

// Option configures a Runner.
type Option func(*Runner)

// WithDriver swaps the prompt driver. Defaults to the survey-backed driver.
func WithDriver(driver PromptDriver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithCaptureOptions forwards options to the submission capture.
func WithCaptureOptions(options ...submission.CaptureOption) Option {
	return func(r *Runner) {
		r.captureOpts = append(r.captureOpts, options...)
	}
}

// Runner walks a navigation session through the terminal.
type Runner struct {
	driver      PromptDriver
	captureOpts []submission.CaptureOption
}

// NewRunner constructs a Runner with defaults.
func NewRunner(options ...Option) *Runner {
	r := &Runner{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Run prompts through every step until the form is submitted or the user
// aborts. The returned submission is already captured but not yet recorded
// anywhere; recording is the caller's decision.
func (r *Runner) Run(ctx context.Context, session *navigation.Session, formID string) (submission.Submission, error) {
	for {
		if err := ctx.Err(); err != nil {
			return submission.Submission{}, err
		}

		doc := session.Document()
		step, ok := doc.ActiveStep()
		if !ok {
			return submission.Submission{}, navigation.ErrNoActiveStep
		}

		if err := r.announceStep(ctx, doc, step); err != nil {
			return submission.Submission{}, err
		}
		if err := r.promptStep(ctx, session, step); err != nil {
			return submission.Submission{}, err
		}

		action, err := r.chooseAction(ctx, session)
		if err != nil {
			return submission.Submission{}, err
		}

		switch action {
		case actionPrevious:
			session.Previous()
		case actionNext:
			result, err := session.Next()
			if err != nil {
				return submission.Submission{}, err
			}
			if !result.Valid {
				if err := r.reportErrors(ctx, step, result); err != nil {
					return submission.Submission{}, err
				}
			}
		case actionSubmit:
			sub, result, err := session.Submit(formID, r.captureOpts...)
			if err != nil {
				return submission.Submission{}, err
			}
			if !result.Valid {
				if err := r.reportErrors(ctx, step, result); err != nil {
					return submission.Submission{}, err
				}
				continue
			}
			return sub, nil
		}
	}
}

func (r *Runner) announceStep(ctx context.Context, doc document.Document, step document.Step) error {
	title := step.Title
	if title == "" {
		title = fmt.Sprintf("Step %d of %d", doc.CurrentStep+1, len(doc.Steps))
	}
	return r.driver.Info(ctx, title)
}

func (r *Runner) promptStep(ctx context.Context, session *navigation.Session, step document.Step) error {
	for _, f := range step.Fields {
		if !f.Type.Input() {
			continue
		}
		value, err := r.promptField(ctx, f)
		if err != nil {
			return err
		}
		session.SetValue(f.ID, value)
	}
	return nil
}

func (r *Runner) promptField(ctx context.Context, f field.Field) (string, error) {
	message := f.Label
	if message == "" {
		message = string(f.Type)
	}
	if f.Required {
		message += " *"
	}

	switch f.Type {
	case field.TypePassword, field.TypeConfirmPassword:
		return r.driver.Password(ctx, InputConfig{Message: message, Help: f.Description})
	case field.TypeTextarea, field.TypeAddress:
		return r.driver.TextArea(ctx, TextAreaConfig{Message: message, Default: f.Value, Help: f.Description})
	default:
		return r.driver.Input(ctx, InputConfig{
			Message:     message,
			Default:     f.Value,
			Help:        f.Description,
			Placeholder: f.Placeholder,
		})
	}
}

func (r *Runner) chooseAction(ctx context.Context, session *navigation.Session) (string, error) {
	var options []string
	if session.Terminal() {
		options = append(options, actionSubmit)
	} else {
		options = append(options, actionNext)
	}
	if session.StepIndex() > 0 {
		options = append(options, actionPrevious)
	}
	if len(options) == 1 {
		return options[0], nil
	}
	idx, err := r.driver.Select(ctx, SelectConfig{Message: "Continue", Options: options})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(options) {
		return options[0], nil
	}
	return options[idx], nil
}

func (r *Runner) reportErrors(ctx context.Context, step document.Step, result validation.Result) error {
	for _, f := range step.Fields {
		reason, ok := result.Errors[f.ID]
		if !ok {
			continue
		}
		label := f.Label
		if label == "" {
			label = string(f.Type)
		}
		if err := r.driver.Info(ctx, fmt.Sprintf("%s: %s", label, reasonMessage(reason))); err != nil {
			return err
		}
	}
	return nil
}

func reasonMessage(reason string) string {
	switch reason {
	case validation.ReasonRequired:
		return "this field is required"
	case validation.ReasonInvalid:
		return "the value does not match the expected format"
	case validation.ReasonMismatch:
		return "the confirmation does not match"
	default:
		return reason
	}
}
