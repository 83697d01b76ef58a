package ui

import (
	"strings"
	"testing"
)

// Theme tests mutate package state and therefore do not run in parallel.

func TestInitTheme(t *testing.T) {
	orig := GetCurrentTheme()
	defer SetCurrentTheme(orig)

	InitTheme(true)
	if GetCurrentTheme().Name != "none" {
		t.Errorf("InitTheme(true) theme = %q, want none", GetCurrentTheme().Name)
	}
	if ColorRed() != "" || ColorReset() != "" {
		t.Error("no-color theme should emit no escape codes")
	}

	t.Setenv("NO_COLOR", "")
	InitTheme(false)
	if Colored() {
		t.Error("NO_COLOR should disable colors even when empty")
	}
}

func TestColorFunctions(t *testing.T) {
	orig := GetCurrentTheme()
	defer SetCurrentTheme(orig)

	SetCurrentTheme(DarkTheme)
	if ColorGreen() != DarkTheme.Success || ColorBlue() != DarkTheme.Primary {
		t.Error("color functions should read the active theme")
	}
	if !strings.HasPrefix(ColorUnderline(), "\033[") {
		t.Errorf("ColorUnderline = %q", ColorUnderline())
	}
}

func TestRenderTable(t *testing.T) {
	orig := GetCurrentTheme()
	defer SetCurrentTheme(orig)
	SetCurrentTheme(NoColorTheme)

	out := RenderTable([]string{"Threads", "Best"}, [][]string{{"1", "2.000"}, {"2", "1.000"}}, 1)
	for _, want := range []string{"Threads", "Best", "2.000", "1.000"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("no-color table should not contain escape codes:\n%s", out)
	}
}
