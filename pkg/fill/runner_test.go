package fill_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/fill"
	"github.com/goliatone/go-formbuilder/pkg/navigation"
	"github.com/goliatone/go-formbuilder/pkg/submission"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

// scriptDriver replays canned answers instead of prompting a terminal.
type scriptDriver struct {
	inputs    []string
	textAreas []string
	selects   []string
	messages  []string
}

func (d *scriptDriver) Input(ctx context.Context, cfg fill.InputConfig) (string, error) {
	if len(d.inputs) == 0 {
		return "", nil
	}
	out := d.inputs[0]
	d.inputs = d.inputs[1:]
	return out, nil
}

func (d *scriptDriver) Password(ctx context.Context, cfg fill.InputConfig) (string, error) {
	return d.Input(ctx, cfg)
}

func (d *scriptDriver) Select(ctx context.Context, cfg fill.SelectConfig) (int, error) {
	if len(d.selects) == 0 {
		return 0, nil
	}
	choice := d.selects[0]
	d.selects = d.selects[1:]
	for i, option := range cfg.Options {
		if option == choice {
			return i, nil
		}
	}
	return 0, nil
}

func (d *scriptDriver) TextArea(ctx context.Context, cfg fill.TextAreaConfig) (string, error) {
	if len(d.textAreas) == 0 {
		return "", nil
	}
	out := d.textAreas[0]
	d.textAreas = d.textAreas[1:]
	return out, nil
}

func (d *scriptDriver) Info(ctx context.Context, msg string) error {
	d.messages = append(d.messages, msg)
	return nil
}

func TestRunnerWalksStepsAndSubmits(t *testing.T) {
	driver := &scriptDriver{
		inputs:    []string{"Ada", "ada@example.com"},
		textAreas: []string{"hello there"},
		// Step one has a single action and advances on its own; the
		// terminal step offers Submit or Previous.
		selects: []string{"Submit"},
	}
	runner := fill.NewRunner(fill.WithDriver(driver))
	session := navigation.NewSession(testsupport.ContactDocument(t))

	sub, err := runner.Run(context.Background(), session, "form-1")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if sub.FormID != "form-1" || sub.Status != submission.StatusPending {
		t.Fatalf("unexpected submission: %+v", sub)
	}
	if sub.Data["fld-name"] != "Ada" || sub.Data["fld-message"] != "hello there" {
		t.Fatalf("captured data incomplete: %v", sub.Data)
	}
}

func TestRunnerReportsBlockedNavigation(t *testing.T) {
	driver := &scriptDriver{
		// The first pass leaves the required fields empty and gets blocked;
		// the second pass fills them.
		inputs:    []string{"", "", "Ada", "ada@example.com"},
		textAreas: []string{""},
		selects:   []string{"Submit"},
	}
	runner := fill.NewRunner(fill.WithDriver(driver))
	session := navigation.NewSession(testsupport.ContactDocument(t))

	sub, err := runner.Run(context.Background(), session, "form-1")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if sub.Data["fld-email"] != "ada@example.com" {
		t.Fatalf("expected the retry values to be captured, got %v", sub.Data)
	}

	var sawRequired bool
	for _, msg := range driver.messages {
		if msg == "Name: this field is required" {
			sawRequired = true
		}
	}
	if !sawRequired {
		t.Fatalf("expected a required-field message, got %v", driver.messages)
	}
}

func TestRunnerHonoursContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runner := fill.NewRunner(fill.WithDriver(&scriptDriver{}))
	session := navigation.NewSession(testsupport.ContactDocument(t))
	if _, err := runner.Run(ctx, session, "form-1"); err == nil {
		t.Fatalf("expected a context error")
	}
}

func TestRunnerCaptureOptions(t *testing.T) {
	driver := &scriptDriver{
		inputs:    []string{"Ada", "ada@example.com"},
		textAreas: []string{""},
		selects:   []string{"Submit"},
	}
	runner := fill.NewRunner(
		fill.WithDriver(driver),
		fill.WithCaptureOptions(submission.WithLabelKeys()),
	)
	session := navigation.NewSession(testsupport.ContactDocument(t))

	sub, err := runner.Run(context.Background(), session, "form-1")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if sub.Data["Name"] != "Ada" {
		t.Fatalf("expected label-keyed data, got %v", sub.Data)
	}
}
