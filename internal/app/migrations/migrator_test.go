package migrations

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

// The ownership rules of the schema are load-bearing: reviews and ticket
// counsellor references are nulled on user deletion, conversations, messages
// and sessions cascade. Assert the clauses are present in the initial schema.
func TestInitialSchemaOwnershipClauses(t *testing.T) {
	path := filepath.Join("..", "..", "..", "migrations", "000001_init.sql")
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read initial migration: %v", err)
	}
	sql := string(content)

	tableClause := func(table string) string {
		re := regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS ` + table + ` \((.*?)\);`)
		m := re.FindStringSubmatch(sql)
		if m == nil {
			t.Fatalf("table %s not found in initial migration", table)
		}
		return m[1]
	}

	setNull := []struct{ table, column string }{
		{"reviews", "user_id"},
		{"messages", "sender_id"},
		{"tickets", "counsellor_id"},
	}
	for _, tc := range setNull {
		clause := tableClause(tc.table)
		if !strings.Contains(clause, tc.column+" BIGINT REFERENCES users (id) ON DELETE SET NULL") {
			t.Fatalf("%s.%s must be a weak reference (ON DELETE SET NULL)", tc.table, tc.column)
		}
	}

	cascade := []struct{ table, clause string }{
		{"conversations", "user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE"},
		{"messages", "conversation_id BIGINT NOT NULL REFERENCES conversations (id) ON DELETE CASCADE"},
		{"counselling_sessions", "student_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE"},
		{"counselling_sessions", "counsellor_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE"},
		{"tickets", "student_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE"},
		{"ticket_messages", "ticket_id BIGINT NOT NULL REFERENCES tickets (id) ON DELETE CASCADE"},
	}
	for _, tc := range cascade {
		if !strings.Contains(tableClause(tc.table), tc.clause) {
			t.Fatalf("%s must cascade: missing %q", tc.table, tc.clause)
		}
	}
}
