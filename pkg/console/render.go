package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/huynhanx03/tetris-stack/pkg/piece"
)

var (
	colorAccent = lipgloss.Color("#8BC34A")
	colorBorder = lipgloss.Color("#2a3850")
	colorError  = lipgloss.Color("#e53935")
	colorMuted  = lipgloss.Color("#9e9e9e")
	colorByKind = map[piece.Kind]lipgloss.Color{
		piece.KindI: lipgloss.Color("#29B6F6"),
		piece.KindO: lipgloss.Color("#FFD54F"),
		piece.KindT: lipgloss.Color("#AB47BC"),
		piece.KindL: lipgloss.Color("#FF8A65"),
	}
)

// view holds the styles used to draw the console. With color disabled every
// style renders plain text plus borders.
type view struct {
	color  bool
	box    lipgloss.Style
	title  lipgloss.Style
	muted  lipgloss.Style
	errMsg lipgloss.Style
	okMsg  lipgloss.Style
	r      *lipgloss.Renderer
}

func newView(out io.Writer, color bool) *view {
	r := lipgloss.NewRenderer(out)
	v := &view{
		color:  color,
		r:      r,
		box:    r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		title:  r.NewStyle(),
		muted:  r.NewStyle(),
		errMsg: r.NewStyle(),
		okMsg:  r.NewStyle(),
	}
	if color {
		v.box = v.box.BorderForeground(colorBorder)
		v.title = v.title.Bold(true).Foreground(colorAccent)
		v.muted = v.muted.Foreground(colorMuted)
		v.errMsg = v.errMsg.Bold(true).Foreground(colorError)
		v.okMsg = v.okMsg.Foreground(colorAccent)
	}
	return v
}

func (v *view) piece(p piece.Piece) string {
	if !v.color {
		return p.String()
	}
	return v.r.NewStyle().Foreground(colorByKind[p.Kind]).Render(p.String())
}

func (v *view) pieces(ps []piece.Piece) string {
	if len(ps) == 0 {
		return v.muted.Render("[EMPTY]")
	}
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = v.piece(p)
	}
	return strings.Join(parts, " ")
}

func (v *view) section(title, body string, n, capacity int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		v.title.Render(title),
		body,
		v.muted.Render(fmt.Sprintf("(%d/%d pieces)", n, capacity)),
	)
}

func (v *view) menu(items []menuItem) string {
	lines := make([]string, 0, len(items)+1)
	lines = append(lines, v.title.Render("MENU"))
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("%s - %s", it.key, it.label))
	}
	return v.box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
