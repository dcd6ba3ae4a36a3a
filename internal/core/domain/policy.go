package domain

// EntityKind identifies one of the three scoped record types for
// permission decisions.
type EntityKind string

const (
	EntityContribution EntityKind = "contribution"
	EntityMentor       EntityKind = "mentor"
	EntityLocality     EntityKind = "locality"
)

// The access policy is two independent axes applied uniformly across
// entity types: visibility scope by village (MANAGER sees only the
// assigned village) and mutation permission by role (locality writes
// are CORE/ADMIN, deletes are ADMIN only). Every entry point must reach
// the same decision for the same (actor, entity, operation) triple, so
// the rules live here as pure functions and nowhere else.

// VillageScope returns the village an actor's reads are limited to.
// ok is false when the actor sees every village.
func (a Actor) VillageScope() (Village, bool) {
	if a.Role == RoleManager && a.AssignedVillage != "" {
		return a.AssignedVillage, true
	}
	return "", false
}

// CanSee reports whether records in village v fall inside the actor's
// visibility scope.
func (a Actor) CanSee(v Village) bool {
	scope, limited := a.VillageScope()
	return !limited || scope == v
}

// CanCreate reports whether the actor may create records of kind e.
// Contribution and mentor creation is open to every authenticated role;
// locality creation is restricted to CORE and ADMIN.
func (a Actor) CanCreate(e EntityKind) bool {
	if e == EntityLocality {
		return a.Role == RoleCore || a.Role == RoleAdmin
	}
	return a.Role.Valid()
}

// CanUpdate reports whether the actor's role may update records of kind
// e at all. Village-scope checks on the specific record are separate
// (CanSee); a MANAGER additionally never changes a record's village.
func (a Actor) CanUpdate(e EntityKind) bool {
	return a.CanCreate(e)
}

// CanDelete reports whether the actor may hard-delete records.
// Destructive operations are ADMIN-only for every entity kind.
func (a Actor) CanDelete() bool {
	return a.Role == RoleAdmin
}

// PinVillage resolves the village a created or updated record must
// carry: a MANAGER's records are forced to the assigned village no
// matter what the caller supplied, everyone else keeps the request.
func (a Actor) PinVillage(requested Village) Village {
	if scope, limited := a.VillageScope(); limited {
		return scope
	}
	return requested
}
