package notation

import (
	"strings"

	"github.com/lgbarn/gym-chess-go/internal/chess"
)

const renderRule = "   ------------------------"

// Render draws the board with piece glyphs, rank 8 at the top.
func Render(board chess.Board) string {
	var sb strings.Builder
	sb.WriteString(renderRule)
	for r := 0; r < chess.BoardSize; r++ {
		sb.WriteByte('\n')
		sb.WriteByte(byte('0' + chess.BoardSize - r))
		sb.WriteString(" |")
		for f := 0; f < chess.BoardSize; f++ {
			sb.WriteByte(' ')
			sb.WriteRune(board[r][f].Glyph())
			sb.WriteByte(' ')
		}
		sb.WriteByte('|')
	}
	sb.WriteByte('\n')
	sb.WriteString(renderRule)
	sb.WriteString("\n    a  b  c  d  e  f  g  h\n")
	return sb.String()
}
