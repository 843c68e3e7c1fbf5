package config

import "testing"

func TestLoadRuntimeDefaults(t *testing.T) {
	rt, err := LoadRuntime()
	if err != nil {
		t.Fatalf("LoadRuntime: %v", err)
	}
	if rt.LogLevel != "info" || rt.StartScene != "menu" || !rt.Audio {
		t.Fatalf("unexpected defaults: %+v", rt)
	}
}

func TestLoadRuntimeFromEnv(t *testing.T) {
	t.Setenv("REEF_DB_PATH", "/tmp/reef-test.db")
	t.Setenv("REEF_SEED", "99")
	t.Setenv("REEF_START_SCENE", "shop")
	t.Setenv("REEF_AUDIO", "false")

	rt, err := LoadRuntime()
	if err != nil {
		t.Fatalf("LoadRuntime: %v", err)
	}
	if rt.DBPath != "/tmp/reef-test.db" || rt.Seed != 99 || rt.StartScene != "shop" || rt.Audio {
		t.Fatalf("env not applied: %+v", rt)
	}
}

func TestLoadRuntimeRejectsUnknownScene(t *testing.T) {
	t.Setenv("REEF_START_SCENE", "credits")
	if _, err := LoadRuntime(); err == nil {
		t.Fatal("expected error for unknown scene")
	}
}

func TestLoadRuntimeRejectsBadSeed(t *testing.T) {
	t.Setenv("REEF_SEED", "not-a-number")
	if _, err := LoadRuntime(); err == nil {
		t.Fatal("expected parse error")
	}
}
