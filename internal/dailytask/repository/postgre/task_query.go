package postgre

import (
	"fmt"
	"strings"
)

// buildTaskFilter builds the WHERE clause + args that match one task,
// optionally scoped to its owner. Placeholders start at $start.
func buildTaskFilter(taskID, userID string, start int) (string, []any) {
	conditions := []string{fmt.Sprintf("id = $%d", start)}
	args := []any{taskID}

	if userID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", start+1))
		args = append(args, userID)
	}
	return strings.Join(conditions, " AND "), args
}
