package inventory

import "testing"

func TestAddFillsSlotsInOrder(t *testing.T) {
	inv := New(2, 4)
	for i, id := range []string{"trident_1", "shell_shield_1"} {
		idx, ok := inv.Add(Weapon, id, 1, 0)
		if !ok || idx != i {
			t.Fatalf("Add(%s) = %d, %v", id, idx, ok)
		}
	}
	if !inv.Full(Weapon) {
		t.Fatal("two weapons should fill the weapon slots")
	}
	if _, ok := inv.Add(Weapon, "harpoon_1", 1, 0); ok {
		t.Fatal("Add into full inventory accepted")
	}
	if inv.Full(Passive) || inv.Count(Passive) != 0 {
		t.Fatal("passive slots are independent")
	}
}

func TestReplaceKeepsIndex(t *testing.T) {
	inv := New(2, 4)
	inv.Add(Passive, "amulet_1", 1, 10)
	inv.Add(Passive, "shell_1", 1, 11)

	old, ok := inv.Replace(Passive, 1, "shell_2", 2, 12)
	if !ok || old.DefID != "shell_1" {
		t.Fatalf("Replace = %+v, %v", old, ok)
	}
	idx, ok := inv.Find(Passive, "shell_2")
	if !ok || idx != 1 {
		t.Fatalf("Find after replace = %d, %v", idx, ok)
	}
	if _, ok := inv.Find(Passive, "shell_1"); ok {
		t.Fatal("old level still present")
	}
	if s, _ := inv.Slot(Passive, 1); s.Level != 2 || s.Entity != 12 {
		t.Fatalf("slot = %+v", s)
	}
	if inv.Count(Passive) != 2 {
		t.Fatalf("replace changed count: %d", inv.Count(Passive))
	}
}

func TestReplaceRejectsEmptyOrBadIndex(t *testing.T) {
	inv := New(2, 4)
	if _, ok := inv.Replace(Weapon, 0, "x", 1, 0); ok {
		t.Error("replace into empty slot accepted")
	}
	if _, ok := inv.Replace(Weapon, 5, "x", 1, 0); ok {
		t.Error("replace out of range accepted")
	}
	if _, ok := inv.Slot(Weapon, -1); ok {
		t.Error("negative index accepted")
	}
}
