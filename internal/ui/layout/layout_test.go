package layout

import (
	"strings"
	"testing"
)

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) {
		t.Error("narrow terminal should be too small")
	}
	if !IsTooSmall(MinWidth, MinHeight-1) {
		t.Error("short terminal should be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("minimum size should be accepted")
	}
}

func TestRenderTabsNumbersLabels(t *testing.T) {
	out := RenderTabs([]string{"Diagrama", "Posa't a Prova", "Pregunta a l'IA"}, 1, 100)
	for _, want := range []string{"1 Diagrama", "2 Posa't a Prova", "3 Pregunta a l'IA"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in tabs", want)
		}
	}
}

func TestRenderHeaderShowsBadges(t *testing.T) {
	out := RenderHeader("Diagrama", []string{"🏆 Mestre del Qüestionari!"}, 120)
	if !strings.Contains(out, "El Cicle de l'Aigua") {
		t.Error("expected the app name")
	}
	if !strings.Contains(out, "Mestre del Qüestionari!") {
		t.Error("expected the badge")
	}
}
