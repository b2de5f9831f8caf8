package rbac

import "testing"

func TestAdminCanEverything(t *testing.T) {
	for _, action := range []Action{ActionRead, ActionComment, ActionEngage, ActionWrite, ActionAdmin} {
		if !Can(RoleAdmin, action) {
			t.Fatalf("admin should be allowed %s", action)
		}
	}
}

func TestUserCannotWrite(t *testing.T) {
	if Can(RoleUser, ActionWrite) {
		t.Fatal("user should not be allowed write")
	}
	if Can(RoleUser, ActionAdmin) {
		t.Fatal("user should not be allowed admin")
	}
	for _, action := range []Action{ActionRead, ActionComment, ActionEngage} {
		if !Can(RoleUser, action) {
			t.Fatalf("user should be allowed %s", action)
		}
	}
}

func TestNormalizeDefaultsToUser(t *testing.T) {
	if got := Normalize("superuser"); got != RoleUser {
		t.Fatalf("expected user, got %s", got)
	}
	if got := Normalize("admin"); got != RoleAdmin {
		t.Fatalf("expected admin, got %s", got)
	}
}
