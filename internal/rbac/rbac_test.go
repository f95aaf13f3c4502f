package rbac

import "testing"

func TestHas(t *testing.T) {
	if !Has(RoleAdmin, CapCreateUser) {
		t.Error("ADMIN should hold CREATE_USER")
	}

	if !Has(RoleSecurity, CapCheckoutVisitor) {
		t.Error("SECURITY should hold CHECKOUT_VISITOR")
	}

	if Has(RoleUser, CapViewReports) {
		t.Error("USER should not hold VIEW_REPORTS")
	}

	if Has(RoleSecurity, CapCreateUser) {
		t.Error("SECURITY should not hold CREATE_USER")
	}
}

func TestHas_UnknownRoleDeniesEverything(t *testing.T) {
	caps := []Capability{
		CapCreateUser, CapViewUsers, CapLockUser, CapUnlockUser,
		CapApproveVisitor, CapViewAllVisitors, CapCreateVisitorEntry,
		CapCheckoutVisitor, CapViewReports, CapManageMasterData,
	}

	for _, cap := range caps {
		if Has(Role("MANAGER"), cap) {
			t.Errorf("unknown role should not hold %s", cap)
		}
	}
}

func TestValid(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleHR, RoleSecurity, RoleUser} {
		if !Valid(role) {
			t.Errorf("role %s should be valid", role)
		}
	}

	if Valid(Role("admin")) {
		t.Error("role names are case sensitive, 'admin' should be invalid")
	}

	if Valid(Role("")) {
		t.Error("empty role should be invalid")
	}
}

func TestGrants_USERScopedToOwnEntries(t *testing.T) {
	// USER may approve entries they host but must not see everyone's.
	if Has(RoleUser, CapViewAllVisitors) {
		t.Error("USER should not hold VIEW_ALL_VISITORS")
	}
	if !Has(RoleUser, CapApproveVisitor) {
		t.Error("USER should hold APPROVE_VISITOR")
	}
	if !Has(RoleUser, CapViewMyEntries) {
		t.Error("USER should hold VIEW_MY_ENTRIES")
	}
}
