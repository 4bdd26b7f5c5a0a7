package reminders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vthunder/reminders-mcp/internal/config"
	"github.com/vthunder/reminders-mcp/internal/logging"
)

// Reader queries the native store through the compiled reader binary.
// Each call spawns exactly one short-lived child process. No retries.
type Reader struct {
	cfg *config.Config
}

// NewReader creates a Reader bound to cfg. The binary path was resolved
// once when cfg was built.
func NewReader(cfg *config.Config) *Reader {
	return &Reader{cfg: cfg}
}

// readerReport is the JSON document the reader binary prints on stdout.
type readerReport struct {
	Reminders []Reminder     `json:"reminders"`
	Lists     []ReminderList `json:"lists"`
}

// ListReminders returns reminders, optionally filtered to one list.
// Completed items are included only when showCompleted is set.
func (r *Reader) ListReminders(ctx context.Context, list string, showCompleted bool) ([]Reminder, error) {
	args := []string{"reminders"}
	if list != "" {
		args = append(args, "--list", list)
	}
	if showCompleted {
		args = append(args, "--completed")
	}

	out, err := r.run(ctx, args)
	if err != nil {
		return nil, err
	}

	var report readerReport
	if err := json.Unmarshal(out, &report); err != nil {
		return nil, wrapError(KindParse, err, "reader output is not valid JSON")
	}

	items := report.Reminders
	if !showCompleted {
		// Drop completed items even if the reader returned them.
		kept := items[:0]
		for _, item := range items {
			if !item.IsCompleted {
				kept = append(kept, item)
			}
		}
		items = kept
	}
	if items == nil {
		items = []Reminder{}
	}
	return items, nil
}

// ListLists enumerates the reminder lists known to the native store.
func (r *Reader) ListLists(ctx context.Context) ([]ReminderList, error) {
	out, err := r.run(ctx, []string{"lists"})
	if err != nil {
		return nil, err
	}

	var report readerReport
	if err := json.Unmarshal(out, &report); err != nil {
		return nil, wrapError(KindParse, err, "reader output is not valid JSON")
	}
	if report.Lists == nil {
		report.Lists = []ReminderList{}
	}
	return report.Lists, nil
}

func (r *Reader) run(ctx context.Context, args []string) ([]byte, error) {
	callID := uuid.NewString()[:8]
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.cfg.ReaderBin, args...)
	// Abandon the stdout/stderr pipes shortly after the kill; orphaned
	// descendants of the reader can otherwise hold them open and stall
	// Wait long past the deadline.
	cmd.WaitDelay = time.Second
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logging.Debug("reader", "[%s] %s %s", callID, r.cfg.ReaderBin, strings.Join(args, " "))
	err := cmd.Run()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		logging.Error("reader", "[%s] timed out after %s", callID, r.cfg.Timeout)
		return nil, newError(KindExecution, "timeout after %s", r.cfg.Timeout)
	}
	if err != nil {
		diag := strings.TrimSpace(stderr.String())
		logging.Error("reader", "[%s] failed: %v (%s)", callID, err, logging.Truncate(diag, 120))
		if isPermissionDenied(diag) {
			return nil, newError(KindPermission, "reminders access denied by the OS: %s", diag)
		}
		if diag != "" {
			return nil, wrapError(KindExecution, err, "reader failed: %s", diag)
		}
		return nil, wrapError(KindExecution, err, "reader failed")
	}

	logging.Debug("reader", "[%s] ok, %d bytes", callID, stdout.Len())
	return stdout.Bytes(), nil
}

// isPermissionDenied matches the diagnostics macOS emits when reminders
// or automation access has not been granted.
func isPermissionDenied(diag string) bool {
	low := strings.ToLower(diag)
	for _, marker := range []string{
		"not authorized",
		"not allowed",
		"access denied",
		"permission denied",
		"-1743",
	} {
		if strings.Contains(low, marker) {
			return true
		}
	}
	return false
}
