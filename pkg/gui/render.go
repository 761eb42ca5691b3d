package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/blockterm/pkg/game"
	"github.com/qnkhuat/blockterm/pkg/mino"
)

const (
	leftMargin = 2
	topMargin  = 1

	// Each cell is two columns wide to make it square
	cellWidth = 2

	sidePadding = 3
	pausedLabel = " PAUSED "
)

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range []rune(text) {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawRune places a rune at the specified coordinates with the provided style
func drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, r, nil, style)
}

// drawCell fills one board cell at column col and row row of the screen
func drawCell(s tcell.Screen, col, row int, bg tcell.Color) {
	style := tcell.StyleDefault.Background(bg)
	for i := 0; i < cellWidth; i++ {
		s.SetContent(col+i, row, ' ', nil, style)
	}
}

// boardOrigin is the screen position of board cell (0, 0)
func boardOrigin(x, y int) (int, int) {
	return x + leftMargin + 1, y + topMargin + 1
}

// drawFrame draws the border around a w by h board
func drawFrame(s tcell.Screen, x, y, w, h int, style tcell.Style) {
	left, top := x+leftMargin, y+topMargin
	right, bottom := left+w*cellWidth+1, top+h+1

	for col := left + 1; col < right; col++ {
		drawRune(s, col, top, style, tcell.RuneHLine)
		drawRune(s, col, bottom, style, tcell.RuneHLine)
	}
	for row := top + 1; row < bottom; row++ {
		drawRune(s, left, row, style, tcell.RuneVLine)
		drawRune(s, right, row, style, tcell.RuneVLine)
	}

	drawRune(s, left, top, style, tcell.RuneULCorner)
	drawRune(s, right, top, style, tcell.RuneURCorner)
	drawRune(s, left, bottom, style, tcell.RuneLLCorner)
	drawRune(s, right, bottom, style, tcell.RuneLRCorner)
}

// drawBoard draws the locked blocks and the active piece
func drawBoard(s tcell.Screen, x, y int, snap game.Snapshot, t Theme) {
	ox, oy := boardOrigin(x, y)

	for row := 0; row < snap.Height; row++ {
		for col := 0; col < snap.Width; col++ {
			bg := t.Empty
			if b := snap.Block(col, row); b.Solid() {
				bg = blockColor(b.Color())
			}
			drawCell(s, ox+col*cellWidth, oy+row, bg)
		}
	}

	pieceBg := blockColor(snap.PieceColor)
	for _, p := range snap.Piece {
		if p.Y < 0 {
			continue
		}
		drawCell(s, ox+p.X*cellWidth, oy+p.Y, pieceBg)
	}
}

// drawPaused writes the pause label across the middle of the board
func drawPaused(s tcell.Screen, x, y int, snap game.Snapshot, t Theme) {
	ox, oy := boardOrigin(x, y)
	col := ox + (snap.Width*cellWidth-len(pausedLabel))/2
	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(t.Paused).Bold(true)
	drawText(s, col, oy+snap.Height/2, style, pausedLabel)
}

// sideOrigin is the screen position of the panel right of the board
func sideOrigin(x, y int, snap game.Snapshot) (int, int) {
	return x + leftMargin + snap.Width*cellWidth + 2 + sidePadding, y + topMargin
}

// drawNext draws the next piece preview
func drawNext(s tcell.Screen, x, y int, snap game.Snapshot, t Theme) {
	col, row := sideOrigin(x, y, snap)
	drawText(s, col, row, tcell.StyleDefault.Foreground(t.Label), "NEXT")

	for i := 0; i < mino.MaskSize; i++ {
		for j := 0; j < mino.MaskSize/2; j++ {
			drawCell(s, col+i*cellWidth, row+2+j, tcell.ColorDefault)
		}
	}

	bg := blockColor(snap.NextColor)
	for _, p := range snap.NextCells {
		drawCell(s, col+p.X*cellWidth, row+2+p.Y, bg)
	}
}

// drawStats displays lines, score, high score and level below the preview
func drawStats(s tcell.Screen, x, y int, snap game.Snapshot, t Theme) {
	col, row := sideOrigin(x, y, snap)
	row += mino.MaskSize + 2

	labelStyle := tcell.StyleDefault.Foreground(t.Label)
	valueStyle := tcell.StyleDefault.Foreground(t.Value).Bold(true)

	stats := []struct {
		label string
		value int
	}{
		{"LINES", snap.Lines},
		{"SCORE", snap.Score},
		{"HIGH SCORE", snap.HighScore},
		{"LEVEL", snap.Level},
	}
	for _, st := range stats {
		drawText(s, col, row, labelStyle, st.label)
		drawText(s, col, row+1, valueStyle, fmt.Sprintf("%-10d", st.value))
		row += 3
	}
}

// Width is the number of screen columns a game with a w wide board needs
func Width(w int) int {
	return leftMargin + w*cellWidth + 2 + sidePadding + len("HIGH SCORE") + 1
}

// Height is the number of screen rows a game with an h tall board needs
func Height(h int) int {
	return topMargin + h + 2
}

// Draw draws the screen
func Draw(s tcell.Screen, x, y int, snap game.Snapshot, t Theme) {
	frameStyle := tcell.StyleDefault.Foreground(t.Border)
	if !snap.Focused {
		frameStyle = frameStyle.Foreground(t.Blurred)
	}

	drawFrame(s, x, y, snap.Width, snap.Height, frameStyle)
	drawBoard(s, x, y, snap, t)
	drawNext(s, x, y, snap, t)
	drawStats(s, x, y, snap, t)

	if snap.Paused && snap.State == game.StatePlaying {
		drawPaused(s, x, y, snap, t)
	}
}
