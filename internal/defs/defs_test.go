package defs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLibraryIsConsistent(t *testing.T) {
	lib := Default()
	if problems := lib.Problems(); len(problems) != 0 {
		t.Fatalf("default content has problems: %v", problems)
	}
	if len(lib.Waves) == 0 || len(lib.WeaponPool) == 0 || len(lib.PassivePool) == 0 {
		t.Fatal("default content is missing waves or pools")
	}
	if lib.Weapons["trident_3"].NextLevelID != "" {
		t.Error("last level must have no next level")
	}
	if lib.Weapons["trident_1"].NextLevelID != "trident_2" {
		t.Errorf("chain broken: %q", lib.Weapons["trident_1"].NextLevelID)
	}
}

func TestLoadContentYAMLOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	content := `
enemies:
  - id: jellyfish
    name: Jellyfish
    health: 20
    speed: 2
    damage: 4
waves:
  - name: Bloom
    spawn_interval: 0.5
    groups:
      - enemy_id: jellyfish
        count: 7
spawner:
  max_enemies_allowed: 10
  wave_interval: 5
  spawn_points:
    - {x: 10, y: 0}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	lib, err := LoadContent(path)
	if err != nil {
		t.Fatalf("LoadContent: %v", err)
	}
	if _, ok := lib.Enemies["jellyfish"]; !ok {
		t.Fatal("jellyfish not loaded")
	}
	if _, ok := lib.Enemies["plastic_bag"]; !ok {
		t.Fatal("defaults should survive the overlay")
	}
	if len(lib.Waves) != 1 || lib.Waves[0].Groups[0].Count != 7 {
		t.Fatalf("waves not replaced: %+v", lib.Waves)
	}
	if lib.Spawner.MaxEnemiesAllowed != 10 || lib.Spawner.SpawnPoints[0].X != 10 {
		t.Fatalf("spawner not replaced: %+v", lib.Spawner)
	}
}

func TestLoadContentJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	content := `{"characters":[{"id":"crab","name":"Crab","max_health":150,"move_speed":3,"strength":1,"starting_weapon":"trident_1"}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	lib, err := LoadContent(path)
	if err != nil {
		t.Fatalf("LoadContent: %v", err)
	}
	if lib.Characters["crab"].MaxHealth != 150 {
		t.Fatalf("crab = %+v", lib.Characters["crab"])
	}
}

func TestLoadContentErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadContent(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	bad := filepath.Join(dir, "content.toml")
	if err := os.WriteFile(bad, []byte("x = 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadContent(bad); err == nil {
		t.Error("expected error for unsupported format")
	}
	broken := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(broken, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadContent(broken); err == nil {
		t.Error("expected error for broken json")
	}
}

func TestProblemsReportsDanglingReferences(t *testing.T) {
	lib := Default()
	lib.Waves = append(lib.Waves, WaveDefinition{Name: "Bad", Groups: []EnemyGroupDefinition{{EnemyID: "kraken", Count: 1}}})
	if len(lib.Problems()) != 1 {
		t.Fatalf("problems = %v", lib.Problems())
	}
}

func TestDisplayName(t *testing.T) {
	lib := Default()
	if got := lib.DisplayName("trident_2"); got != "Trident" {
		t.Errorf("weapon name = %q", got)
	}
	if got := lib.DisplayName("amulet_1"); got != "Amulet" {
		t.Errorf("passive name = %q", got)
	}
	if got := lib.DisplayName("nope"); got != "nope" {
		t.Errorf("unknown id = %q", got)
	}
}
