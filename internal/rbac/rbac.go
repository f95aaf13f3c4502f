package rbac

// Role is the closed set of user roles known to the system.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleHR       Role = "HR"
	RoleSecurity Role = "SECURITY"
	RoleUser     Role = "USER"
)

// Capability names a single guarded operation.
type Capability string

const (
	CapCreateUser           Capability = "CREATE_USER"
	CapViewUsers            Capability = "VIEW_USERS"
	CapLockUser             Capability = "LOCK_USER"
	CapUnlockUser           Capability = "UNLOCK_USER"
	CapUnactiveUser         Capability = "UNACTIVE_USER"
	CapApproveVisitor       Capability = "APPROVE_VISITOR"
	CapViewAllVisitors      Capability = "VIEW_ALL_VISITORS"
	CapViewMyEntries        Capability = "VIEW_MY_ENTRIES"
	CapViewPendingApprovals Capability = "VIEW_PENDING_APPROVALS"
	CapCreateVisitorEntry   Capability = "CREATE_VISITOR_ENTRY"
	CapCheckoutVisitor      Capability = "CHECKOUT_VISITOR"
	CapViewReports          Capability = "VIEW_REPORTS"
	CapManageMasterData     Capability = "MANAGE_MASTER_DATA"
)

// grants is the static role -> capability mapping. Read-only after init.
var grants = map[Role][]Capability{
	RoleAdmin: {
		CapCreateUser, CapViewUsers, CapUnlockUser, CapApproveVisitor,
		CapViewAllVisitors, CapCheckoutVisitor, CapViewReports,
		CapCreateVisitorEntry, CapManageMasterData, CapLockUser,
	},
	RoleHR: {
		CapCreateUser, CapViewUsers, CapUnlockUser, CapLockUser,
		CapUnactiveUser, CapApproveVisitor, CapViewMyEntries,
	},
	RoleSecurity: {
		CapCreateVisitorEntry, CapViewAllVisitors, CapCheckoutVisitor,
		CapViewPendingApprovals, CapViewReports,
	},
	RoleUser: {
		CapApproveVisitor, CapViewMyEntries,
	},
}

var capSets map[Role]map[Capability]struct{}

func init() {
	capSets = make(map[Role]map[Capability]struct{}, len(grants))
	for role, caps := range grants {
		set := make(map[Capability]struct{}, len(caps))
		for _, cap := range caps {
			set[cap] = struct{}{}
		}
		capSets[role] = set
	}
}

// Valid reports whether role is a member of the closed role set.
func Valid(role Role) bool {
	_, ok := capSets[role]
	return ok
}

// Has reports whether role holds the given capability.
// Unknown roles hold nothing.
func Has(role Role, cap Capability) bool {
	set, ok := capSets[role]
	if !ok {
		return false
	}
	_, ok = set[cap]
	return ok
}
