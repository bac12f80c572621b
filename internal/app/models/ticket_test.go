package models

import "testing"

func TestTicketClose(t *testing.T) {
	ticket := &Ticket{Status: TicketStatusOpen}

	if ok := ticket.Close(); !ok {
		t.Fatalf("expected closing an open ticket to succeed")
	}
	if ticket.Status != TicketStatusClosed {
		t.Fatalf("expected status closed, got %s", ticket.Status)
	}

	// Second close is a no-op reported as failure
	if ok := ticket.Close(); ok {
		t.Fatalf("expected closing a closed ticket to fail")
	}
	if ticket.Status != TicketStatusClosed {
		t.Fatalf("expected status to remain closed, got %s", ticket.Status)
	}
}

func TestSessionToggleStatus(t *testing.T) {
	session := &CounsellingSession{Status: SessionStatusScheduled}

	if got := session.ToggleStatus(); got != SessionStatusCompleted {
		t.Fatalf("expected completed, got %s", got)
	}
	if got := session.ToggleStatus(); got != SessionStatusScheduled {
		t.Fatalf("expected scheduled, got %s", got)
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []RoleType{RoleNormal, RoleAdmin, RoleStudent, RoleCounsellor} {
		if !ValidRole(role) {
			t.Fatalf("expected role %s to be valid", role)
		}
	}
	if ValidRole("LECTURER") {
		t.Fatalf("expected unknown role to be invalid")
	}
}
