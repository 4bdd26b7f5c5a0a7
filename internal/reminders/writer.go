package reminders

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vthunder/reminders-mcp/internal/config"
	"github.com/vthunder/reminders-mcp/internal/logging"
)

// Writer mutates the native store by generating AppleScript and running
// it through the system automation interpreter. Each call spawns exactly
// one child process; failures are reported, never retried.
type Writer struct {
	cfg *config.Config
}

// NewWriter creates a Writer bound to cfg.
func NewWriter(cfg *config.Config) *Writer {
	return &Writer{cfg: cfg}
}

// CreateReminder adds a reminder to the native store. The due date is
// normalized before any script runs, so a malformed date never reaches
// the interpreter. The store does not report an identifier for the new
// reminder; success is confirmation only.
func (w *Writer) CreateReminder(ctx context.Context, req CreateRequest) (string, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return "", newError(KindValidation, "title must not be empty")
	}

	var due string
	if req.DueDate != "" {
		normalized, err := NormalizeDueDate(req.DueDate)
		if err != nil {
			return "", err
		}
		due = normalized
	}

	script := buildCreateScript(title, due, req.List, req.Notes)
	if err := w.run(ctx, script); err != nil {
		return "", err
	}

	msg := fmt.Sprintf("Created reminder %q", title)
	if due != "" {
		msg += " due " + due
	}
	if req.List != "" {
		msg += fmt.Sprintf(" in list %q", req.List)
	}
	return msg, nil
}

// CompleteReminder marks the first reminder with the given title as
// completed, in the named list or the default list.
func (w *Writer) CompleteReminder(ctx context.Context, title, list string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", newError(KindValidation, "title must not be empty")
	}

	script := buildCompleteScript(title, list)
	if err := w.run(ctx, script); err != nil {
		return "", err
	}
	return fmt.Sprintf("Completed reminder %q", title), nil
}

func buildCreateScript(title, due, list, notes string) string {
	var b strings.Builder
	b.WriteString("tell application \"Reminders\"\n")
	writeTargetList(&b, list)
	props := fmt.Sprintf("name:\"%s\"", EscapeScriptString(title))
	if notes != "" {
		props += fmt.Sprintf(", body:\"%s\"", EscapeScriptString(notes))
	}
	if due != "" {
		// due is already canonical; the interpreter parses it directly.
		props += fmt.Sprintf(", due date:date \"%s\"", due)
	}
	fmt.Fprintf(&b, "\tmake new reminder at end of targetList with properties {%s}\n", props)
	b.WriteString("end tell")
	return b.String()
}

func buildCompleteScript(title, list string) string {
	var b strings.Builder
	b.WriteString("tell application \"Reminders\"\n")
	writeTargetList(&b, list)
	fmt.Fprintf(&b, "\tset completed of (first reminder of targetList whose name is \"%s\") to true\n",
		EscapeScriptString(title))
	b.WriteString("end tell")
	return b.String()
}

func writeTargetList(b *strings.Builder, list string) {
	if list != "" {
		fmt.Fprintf(b, "\tset targetList to list \"%s\"\n", EscapeScriptString(list))
	} else {
		b.WriteString("\tset targetList to default list\n")
	}
}

func (w *Writer) run(ctx context.Context, script string) error {
	callID := uuid.NewString()[:8]
	ctx, cancel := context.WithTimeout(ctx, w.cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, w.cfg.OsascriptBin, "-e", script)
	// Abandon the stderr pipe shortly after the kill; a descendant of
	// the interpreter can otherwise hold it open and stall Wait long
	// past the deadline.
	cmd.WaitDelay = time.Second
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logging.Debug("writer", "[%s] %s -e %s", callID, w.cfg.OsascriptBin, logging.Truncate(script, 200))
	err := cmd.Run()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		logging.Error("writer", "[%s] timed out after %s", callID, w.cfg.Timeout)
		return newError(KindExecution, "timeout after %s", w.cfg.Timeout)
	}
	if err != nil {
		diag := strings.TrimSpace(stderr.String())
		logging.Error("writer", "[%s] failed: %v (%s)", callID, err, logging.Truncate(diag, 120))
		switch {
		case isCollectionNotFound(diag):
			return newError(KindCollectionNotFound, "reminder list not found: %s", diag)
		case isPermissionDenied(diag):
			return newError(KindPermission, "automation access denied by the OS: %s", diag)
		case diag != "":
			return wrapError(KindExecution, err, "script failed: %s", diag)
		default:
			return wrapError(KindExecution, err, "script failed")
		}
	}

	logging.Debug("writer", "[%s] ok", callID)
	return nil
}

// isCollectionNotFound matches the interpreter's diagnostic for a list
// reference that does not resolve. The apostrophe in the message varies
// between builds, so match around it.
func isCollectionNotFound(diag string) bool {
	low := strings.ToLower(diag)
	return strings.Contains(low, "t get list") || strings.Contains(low, "-1728")
}
