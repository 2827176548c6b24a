package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestIsQuit(t *testing.T) {
	assert.True(t, isQuit(tea.KeyMsg{Type: tea.KeyCtrlC}))
	assert.True(t, isQuit(runeKey('q')))
	assert.False(t, isQuit(runeKey('a')))
}

func TestIsEnter(t *testing.T) {
	assert.True(t, isEnter(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.False(t, isEnter(tea.KeyMsg{Type: tea.KeySpace}))
}

func TestIsSpace(t *testing.T) {
	assert.True(t, isSpace(tea.KeyMsg{Type: tea.KeySpace}))
	assert.False(t, isSpace(tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestIsBack(t *testing.T) {
	assert.True(t, isBack(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.False(t, isBack(tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestIsUpDown(t *testing.T) {
	assert.True(t, isDown(tea.KeyMsg{Type: tea.KeyDown}))
	assert.False(t, isDown(runeKey('j')))
	assert.True(t, isUp(tea.KeyMsg{Type: tea.KeyUp}))
	assert.False(t, isUp(runeKey('k')))
}

func TestIsLeftRightHonoursVimKeys(t *testing.T) {
	assert.True(t, isLeft(tea.KeyMsg{Type: tea.KeyLeft}, false))
	assert.False(t, isLeft(runeKey('h'), false))
	assert.True(t, isLeft(runeKey('h'), true))

	assert.True(t, isRight(tea.KeyMsg{Type: tea.KeyRight}, false))
	assert.False(t, isRight(runeKey('l'), false))
	assert.True(t, isRight(runeKey('l'), true))
}

func TestFieldNavigationKeys(t *testing.T) {
	assert.True(t, isNextField(tea.KeyMsg{Type: tea.KeyTab}))
	assert.True(t, isPrevField(tea.KeyMsg{Type: tea.KeyShiftTab}))
	assert.False(t, isNextField(tea.KeyMsg{Type: tea.KeyShiftTab}))
}

func TestAcceleratorKeys(t *testing.T) {
	assert.True(t, isSubmit(tea.KeyMsg{Type: tea.KeyCtrlS}))
	assert.True(t, isPreview(tea.KeyMsg{Type: tea.KeyCtrlP}))
	assert.False(t, isSubmit(tea.KeyMsg{Type: tea.KeyEnter}))
}
