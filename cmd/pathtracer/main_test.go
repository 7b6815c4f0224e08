package main

import "testing"

func TestRunRejectsUnknownScene(t *testing.T) {
	err := run("not-a-real-scene", 10, t.TempDir()+"/out.png")
	if err == nil {
		t.Error("expected an error for an unknown --scene value")
	}
}

func TestRunRejectsNonPositiveSamples(t *testing.T) {
	err := run("basic", 0, t.TempDir()+"/out.png")
	if err == nil {
		t.Error("expected an error for a non-positive --AA value")
	}
}

func TestNewRootCmdDefaults(t *testing.T) {
	cmd := newRootCmd()
	scene, err := cmd.Flags().GetString("scene")
	if err != nil || scene != "basic" {
		t.Errorf("--scene default = %q, want %q", scene, "basic")
	}
	aa, err := cmd.Flags().GetInt("AA")
	if err != nil || aa != 200 {
		t.Errorf("--AA default = %d, want 200", aa)
	}
}
