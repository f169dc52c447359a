package components

import (
	"strings"
	"testing"
)

func TestPanelRenderIncludesTitle(t *testing.T) {
	out := NewPanel(" λ Problem").SetSize(40, 5).Render("x^2 + 1")
	if !strings.Contains(out, "λ Problem") {
		t.Errorf("panel output missing title:\n%s", out)
	}
	if !strings.Contains(out, "x^2 + 1") {
		t.Errorf("panel output missing content:\n%s", out)
	}
}

func TestPanelWithoutTitleHasNoHeaderLine(t *testing.T) {
	titled := NewPanel(" ∴ Solution").SetSize(30, 4).Render("2*x")
	bare := NewPanel("").SetSize(30, 4).Render("2*x")
	if strings.Count(bare, "\n") >= strings.Count(titled, "\n") {
		t.Error("untitled panel should render fewer lines than a titled one")
	}
}

func TestTabBarInsertBadge(t *testing.T) {
	bar := NewTabBar([]string{"[1] Solve", "[2] Tutor"}).SetWidth(80)
	if out := bar.Render(); strings.Contains(out, "INSERT") {
		t.Errorf("badge shown outside insert mode:\n%s", out)
	}
	if out := bar.SetInsertMode(true).Render(); !strings.Contains(out, "INSERT") {
		t.Errorf("badge missing in insert mode:\n%s", out)
	}
}

func TestTabBarSetActiveClampsRange(t *testing.T) {
	bar := NewTabBar([]string{"a", "b"})
	if got := bar.SetActive(5).ActiveTab; got != 0 {
		t.Errorf("out-of-range index changed active tab: %d", got)
	}
	if got := bar.SetActive(1).ActiveTab; got != 1 {
		t.Errorf("want active tab 1, got %d", got)
	}
}
