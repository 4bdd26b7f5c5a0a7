// Package mcptools declares the reminder tools and routes each call to
// the right native backend.
package mcptools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/vthunder/reminders-mcp/internal/reminders"
)

// ReminderReader is the read capability, backed by the compiled reader.
type ReminderReader interface {
	ListReminders(ctx context.Context, list string, showCompleted bool) ([]reminders.Reminder, error)
	ListLists(ctx context.Context) ([]reminders.ReminderList, error)
}

// ReminderWriter is the write capability, backed by the script interpreter.
type ReminderWriter interface {
	CreateReminder(ctx context.Context, req reminders.CreateRequest) (string, error)
	CompleteReminder(ctx context.Context, title, list string) (string, error)
}

// Handlers routes tool calls. Read tools bind the reader capability,
// write tools the writer; there is no other branching.
type Handlers struct {
	reader ReminderReader
	writer ReminderWriter
}

// Register adds all reminder tools to s.
func Register(s *server.MCPServer, reader ReminderReader, writer ReminderWriter) {
	h := &Handlers{reader: reader, writer: writer}
	s.AddTool(createReminderTool(), h.handleCreateReminder)
	s.AddTool(completeReminderTool(), h.handleCompleteReminder)
	s.AddTool(listRemindersTool(), h.handleListReminders)
	s.AddTool(listReminderListsTool(), h.handleListReminderLists)
}

func createReminderTool() mcp.Tool {
	return mcp.NewTool("create_reminder",
		mcp.WithDescription("Create a reminder in the native Reminders store. The due date accepts YYYY-MM-DD, YYYY-MM-DD HH:MM:SS, MM/DD/YYYY, or ISO-8601 and is interpreted in the server's local time zone."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Title of the reminder"),
		),
		mcp.WithString("dueDate",
			mcp.Description("Optional due date, e.g. 2024-03-15 or 2024-03-15 10:00:00"),
		),
		mcp.WithString("list",
			mcp.Description("Reminder list to add to. Must match an existing list name exactly. Default: the default list."),
		),
		mcp.WithString("note",
			mcp.Description("Optional note body"),
		),
	)
}

func completeReminderTool() mcp.Tool {
	return mcp.NewTool("complete_reminder",
		mcp.WithDescription("Mark the first reminder with the given title as completed."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Title of the reminder to complete"),
		),
		mcp.WithString("list",
			mcp.Description("Reminder list to search. Must match an existing list name exactly. Default: the default list."),
		),
	)
}

func listRemindersTool() mcp.Tool {
	return mcp.NewTool("list_reminders",
		mcp.WithDescription("List reminders from the native Reminders store."),
		mcp.WithString("list",
			mcp.Description("Only return reminders from this list. Must match an existing list name exactly."),
		),
		mcp.WithBoolean("showCompleted",
			mcp.Description("Include completed reminders. Default: false"),
		),
	)
}

func listReminderListsTool() mcp.Tool {
	return mcp.NewTool("list_reminder_lists",
		mcp.WithDescription("List the names of all reminder lists."),
	)
}

func (h *Handlers) handleCreateReminder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return validationResult("title is required and must be a string"), nil
	}

	msg, err := h.writer.CreateReminder(ctx, reminders.CreateRequest{
		Title:   title,
		DueDate: req.GetString("dueDate", ""),
		List:    req.GetString("list", ""),
		Notes:   req.GetString("note", ""),
	})
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(map[string]string{"status": "created", "message": msg}), nil
}

func (h *Handlers) handleCompleteReminder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return validationResult("title is required and must be a string"), nil
	}

	msg, err := h.writer.CompleteReminder(ctx, title, req.GetString("list", ""))
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(map[string]string{"status": "completed", "message": msg}), nil
}

func (h *Handlers) handleListReminders(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	items, err := h.reader.ListReminders(ctx, req.GetString("list", ""), req.GetBool("showCompleted", false))
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(items), nil
}

func (h *Handlers) handleListReminderLists(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lists, err := h.reader.ListLists(ctx)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(lists), nil
}
