package ui

import (
	"fmt"
	"io"

	"github.com/brogergvhs/chanedit/internal/buffer"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-runewidth"
)

var (
	styleName   = promptui.Styler(promptui.FGGreen)
	styleID     = promptui.Styler(promptui.FGFaint, promptui.FGItalic)
	stylePrefix = promptui.Styler(promptui.FGBlue, promptui.FGBold)
	styleError  = promptui.Styler(promptui.FGRed, promptui.FGBold)
)

// ChangeTable prints renames as aligned "old -> new  (id)" rows.
type ChangeTable struct {
	oldWidth int
	newWidth int
	Color    bool
}

func NewChangeTable(changes buffer.ChangeSet, color bool) *ChangeTable {
	t := &ChangeTable{Color: color}
	for _, c := range changes {
		t.oldWidth = max(t.oldWidth, runewidth.StringWidth(c.Old))
		t.newWidth = max(t.newWidth, runewidth.StringWidth(c.New))
	}
	return t
}

func (t *ChangeTable) Row(c buffer.Change) string {
	oldName := runewidth.FillRight(c.Old, t.oldWidth)
	newName := runewidth.FillRight(c.New, t.newWidth)
	id := "(" + c.ID + ")"

	if t.Color {
		oldName, newName, id = styleName(oldName), styleName(newName), styleID(id)
	}

	return oldName + " -> " + newName + "  " + id
}

func (t *ChangeTable) Prefix(s string) string {
	if t.Color {
		return stylePrefix(s)
	}
	return s
}

func (t *ChangeTable) Failure(s string) string {
	if t.Color {
		return styleError(s)
	}
	return s
}

func (t *ChangeTable) Render(w io.Writer, changes buffer.ChangeSet) {
	for _, c := range changes {
		fmt.Fprintln(w, t.Row(c))
	}
}
