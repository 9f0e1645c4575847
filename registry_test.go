package marionette

import "testing"

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := newAnimationRegistry()
	r.register("A", []string{"walk_loop", "wave"})
	r.register("B", []string{"walk"})

	owners := r.lookup("walk")
	if len(owners) != 2 {
		t.Fatalf("owners = %d, want 2", len(owners))
	}
	if got := owners["A"]; len(got) != 1 || got[0] != "walk_loop" {
		t.Errorf("A's variants = %v", got)
	}
	if got := owners["B"]; len(got) != 1 || got[0] != "walk" {
		t.Errorf("B's variants = %v", got)
	}
}

func TestRegistryLookupUnknownNeverFails(t *testing.T) {
	r := newAnimationRegistry()
	owners := r.lookup("missing")
	if owners == nil {
		t.Fatal("lookup must return an empty map, not nil")
	}
	if len(owners) != 0 {
		t.Errorf("owners = %d, want 0", len(owners))
	}
}

func TestRegistryMultipleVariantsPerRig(t *testing.T) {
	r := newAnimationRegistry()
	r.register("A", []string{"spin", "spin_loop"})

	got := r.lookup("spin")["A"]
	if len(got) != 2 {
		t.Fatalf("variants = %v, want both raw names", got)
	}
}

func TestRegistryStateMembership(t *testing.T) {
	r := newAnimationRegistry()
	r.register("A", []string{"state_intro_flash", "state_intro_coins_loop", "walk"})

	members := r.membersOf("state_intro")
	if len(members) != 2 {
		t.Fatalf("members = %v, want 2", members)
	}
	if members[0] != "state_intro_flash" || members[1] != "state_intro_coins" {
		t.Errorf("members = %v (order should follow discovery)", members)
	}
	if len(r.membersOf("state_win")) != 0 {
		t.Error("unknown state should have no members")
	}
}

func TestRegistryMembershipIdempotent(t *testing.T) {
	r := newAnimationRegistry()
	// Two rigs exposing the same state member must not duplicate it.
	r.register("A", []string{"state_win_glow"})
	r.register("B", []string{"state_win_glow_loop"})

	members := r.membersOf("state_win")
	if len(members) != 1 {
		t.Errorf("members = %v, want exactly one entry", members)
	}
}

func TestRegistryRemoveDropsAllEntries(t *testing.T) {
	r := newAnimationRegistry()
	r.register("A", []string{"walk_loop", "state_intro_flash"})
	r.register("B", []string{"walk"})

	r.remove("A")

	owners := r.lookup("walk")
	if len(owners) != 1 {
		t.Fatalf("owners after remove = %d, want 1", len(owners))
	}
	if _, ok := owners["A"]; ok {
		t.Error("A should be gone from walk")
	}
	if len(r.membersOf("state_intro")) != 0 {
		t.Error("A's state membership should be gone")
	}
}

func TestRegistryRemoveKeepsSharedStateMembers(t *testing.T) {
	r := newAnimationRegistry()
	r.register("A", []string{"state_win_glow"})
	r.register("B", []string{"state_win_glow_loop"})

	r.remove("A")

	// B still exposes the base, so the membership survives.
	if members := r.membersOf("state_win"); len(members) != 1 {
		t.Errorf("members = %v, want 1", members)
	}
}

func TestRegistryReset(t *testing.T) {
	r := newAnimationRegistry()
	r.register("A", []string{"walk", "state_intro_flash"})
	r.reset()

	if len(r.lookup("walk")) != 0 {
		t.Error("registry should be empty after reset")
	}
	if len(r.membersOf("state_intro")) != 0 {
		t.Error("states should be empty after reset")
	}
}
