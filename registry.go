package marionette

// animationRegistry maps base animation names to the rigs that expose them
// and, per rig, the raw clip name variants implementing them. It also derives
// the state group index: base names carrying the state prefix are recorded as
// members of their state during registration.
//
// Invariant: every raw clip name appears under exactly one base entry and
// exactly one rig's list within it.
type animationRegistry struct {
	byBase map[string]map[string][]string // base -> rigID -> raw clip names
	states map[string][]string            // state name -> ordered member bases
}

func newAnimationRegistry() *animationRegistry {
	return &animationRegistry{
		byBase: make(map[string]map[string][]string),
		states: make(map[string][]string),
	}
}

// register indexes every raw clip name of a rig under its base name and
// records state membership for state-prefixed bases. Re-registering a rigID
// must be preceded by remove (the Stage handles replace-in-place).
func (r *animationRegistry) register(rigID string, rawNames []string) {
	for _, raw := range rawNames {
		base, _ := DecodeClipName(raw)
		rigs := r.byBase[base]
		if rigs == nil {
			rigs = make(map[string][]string)
			r.byBase[base] = rigs
		}
		rigs[rigID] = append(rigs[rigID], raw)
		if state := stateOf(base); state != "" {
			r.recordMembership(state, base)
		}
	}
}

// remove deletes every entry a rig contributed, across both the registry and
// the state groups, so a replaced rig leaves no stale fan-out behind.
func (r *animationRegistry) remove(rigID string) {
	for base, rigs := range r.byBase {
		if _, ok := rigs[rigID]; !ok {
			continue
		}
		delete(rigs, rigID)
		if len(rigs) > 0 {
			continue
		}
		delete(r.byBase, base)
		if state := stateOf(base); state != "" {
			r.dropMembership(state, base)
		}
	}
}

// lookup returns the rigID -> raw clip names mapping for a base name.
// Unknown bases yield an empty map; queries never fail.
// The returned map MUST NOT be mutated by the caller.
func (r *animationRegistry) lookup(base string) map[string][]string {
	if rigs, ok := r.byBase[base]; ok {
		return rigs
	}
	return map[string][]string{}
}

// recordMembership appends a base name to a state group. Idempotent:
// membership is append-only and de-duplicated within a discovery pass.
func (r *animationRegistry) recordMembership(state, base string) {
	for _, member := range r.states[state] {
		if member == base {
			return
		}
	}
	r.states[state] = append(r.states[state], base)
}

// dropMembership removes a base from a state group, deleting the group when
// it empties.
func (r *animationRegistry) dropMembership(state, base string) {
	members := r.states[state]
	for i, member := range members {
		if member == base {
			r.states[state] = append(members[:i], members[i+1:]...)
			break
		}
	}
	if len(r.states[state]) == 0 {
		delete(r.states, state)
	}
}

// membersOf returns the ordered member bases of a state, empty if unknown.
// The returned slice MUST NOT be mutated by the caller.
func (r *animationRegistry) membersOf(state string) []string {
	return r.states[state]
}

// reset drops every entry.
func (r *animationRegistry) reset() {
	r.byBase = make(map[string]map[string][]string)
	r.states = make(map[string][]string)
}
