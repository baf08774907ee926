package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestRenderHeader_Status(t *testing.T) {
	up := RenderHeader("Study Plan", Status{Model: "gpt-4", Available: true}, 80)
	assert.Contains(t, up, AppName)
	assert.Contains(t, up, "Study Plan")
	assert.Contains(t, up, "gpt-4")

	down := RenderHeader("Study Plan", Status{Model: "gpt-4"}, 80)
	assert.Contains(t, down, "AI unavailable")
	assert.NotContains(t, down, "gpt-4")
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("Home", Status{Available: true, Model: "mock"}, 70)
	footer := RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}}, 70)

	frame := RenderFrame(header, "body", footer, 70, 24)

	assert.Equal(t, 24, lipgloss.Height(frame))
	assert.True(t, strings.Contains(frame, "Esc"))
	assert.True(t, strings.Contains(frame, "Back"))
}

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(MinWidth-1, MinHeight))
	assert.True(t, IsTooSmall(MinWidth, MinHeight-1))
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
}
