// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// contentFile is the on-disk shape of a content pack.
type contentFile struct {
	Characters  []CharacterDefinition   `json:"characters" yaml:"characters"`
	Enemies     []EnemyDefinition       `json:"enemies" yaml:"enemies"`
	Weapons     []WeaponDefinition      `json:"weapons" yaml:"weapons"`
	Passives    []PassiveItemDefinition `json:"passives" yaml:"passives"`
	Pickups     []PickupDefinition      `json:"pickups" yaml:"pickups"`
	DropTables  []DropTable             `json:"drop_tables" yaml:"drop_tables"`
	Props       []PropDefinition        `json:"props" yaml:"props"`
	Waves       []WaveDefinition        `json:"waves" yaml:"waves"`
	Spawner     *SpawnerDefinition      `json:"spawner" yaml:"spawner"`
	LevelRanges []LevelRange            `json:"level_ranges" yaml:"level_ranges"`
	Terrain     *TerrainDefinition      `json:"terrain" yaml:"terrain"`
	WeaponPool  []string                `json:"weapon_pool" yaml:"weapon_pool"`
	PassivePool []string                `json:"passive_pool" yaml:"passive_pool"`
}

// LoadContent reads a JSON or YAML content pack and overlays it on the
// built-in defaults. Definitions are merged by ID; lists replace the defaults
// when present. An empty path returns the defaults.
func LoadContent(path string) (*Library, error) {
	lib := Default()
	if path == "" {
		return lib, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	if err := lib.Overlay(data, filepath.Ext(path)); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return lib, nil
}

// Overlay decodes data (format chosen by extension: .json, .yaml, .yml) into l.
func (l *Library) Overlay(data []byte, ext string) error {
	var file contentFile
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("failed to unmarshal content: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("failed to unmarshal content: %w", err)
		}
	default:
		return fmt.Errorf("unsupported content format %q", ext)
	}

	for _, def := range file.Characters {
		l.Characters[def.ID] = def
	}
	for _, def := range file.Enemies {
		l.Enemies[def.ID] = def
	}
	for _, def := range file.Weapons {
		l.Weapons[def.ID] = def
	}
	for _, def := range file.Passives {
		l.Passives[def.ID] = def
	}
	for _, def := range file.Pickups {
		l.Pickups[def.ID] = def
	}
	for _, def := range file.DropTables {
		l.DropTables[def.ID] = def
	}
	for _, def := range file.Props {
		l.Props[def.ID] = def
	}
	if len(file.Waves) > 0 {
		l.Waves = file.Waves
	}
	if file.Spawner != nil {
		l.Spawner = *file.Spawner
	}
	if len(file.LevelRanges) > 0 {
		l.LevelRanges = file.LevelRanges
	}
	if file.Terrain != nil {
		l.Terrain = *file.Terrain
	}
	if len(file.WeaponPool) > 0 {
		l.WeaponPool = file.WeaponPool
	}
	if len(file.PassivePool) > 0 {
		l.PassivePool = file.PassivePool
	}
	return nil
}
