package service

import (
	"context"
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// dueSoonWindow marks tasks whose deadline is close enough to call out.
const dueSoonWindow = 48 * time.Hour

// DigestService builds human-readable summaries of the open tasks on the
// board, for periodic reports.
type DigestService struct {
	taskRepo *repository.TaskRepository
}

func NewDigestService(taskRepo *repository.TaskRepository) *DigestService {
	return &DigestService{taskRepo: taskRepo}
}

// Summary returns a formatted digest of all open tasks: overdue first, then
// due soon, then the rest, each annotated with its category.
func (s *DigestService) Summary(ctx context.Context, now time.Time) (string, error) {
	tasks, err := s.taskRepo.ListOpen(ctx)
	if err != nil {
		return "", err
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		switch {
		case tasks[i].DueDate == nil && tasks[j].DueDate == nil:
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		case tasks[i].DueDate == nil:
			return false
		case tasks[j].DueDate == nil:
			return true
		default:
			return tasks[i].DueDate.Before(*tasks[j].DueDate)
		}
	})

	var overdue int
	for _, task := range tasks {
		if task.DueDate != nil && now.After(*task.DueDate) {
			overdue++
		}
	}

	var builder strings.Builder
	builder.WriteString("📋 <b>Task digest</b>\n")
	builder.WriteString(fmt.Sprintf("🗓 %s\n\n", now.Format("2006-01-02")))
	builder.WriteString(fmt.Sprintf("Open tasks: %d", len(tasks)))
	if overdue > 0 {
		builder.WriteString(fmt.Sprintf(" · overdue: %d", overdue))
	}
	builder.WriteString("\n\n")

	if len(tasks) == 0 {
		builder.WriteString("— nothing open, all done\n")
	}
	for _, task := range tasks {
		builder.WriteString(formatDigestLine(task, now))
	}

	return strings.TrimSpace(builder.String()), nil
}

func formatDigestLine(task model.Task, now time.Time) string {
	var sb strings.Builder

	icon := "🟢"
	if task.DueDate != nil {
		due := task.DueDate.In(now.Location())
		switch {
		case now.After(due):
			icon = "⚠️"
		case due.Sub(now) <= dueSoonWindow:
			icon = "⏳"
		}
	}

	title := html.EscapeString(strings.TrimSpace(task.Title))
	sb.WriteString(fmt.Sprintf("%s %s", icon, title))

	if task.Category != nil {
		name := strings.TrimSpace(task.Category.Name)
		if name != "" {
			sb.WriteString(fmt.Sprintf(" <i>(%s)</i>", html.EscapeString(name)))
		}
	}

	if task.DueDate != nil {
		due := task.DueDate.In(now.Location())
		if now.After(due) {
			sb.WriteString(fmt.Sprintf("\n   ⏰ due %s — <b>overdue</b>", due.Format("2006-01-02")))
		} else {
			daysLeft := int(due.Sub(now).Hours()/24) + 1
			sb.WriteString(fmt.Sprintf("\n   ⏰ due %s · ≈%d day(s) left", due.Format("2006-01-02"), daysLeft))
		}
	}

	sb.WriteByte('\n')
	return sb.String()
}
