package game

import "sdrbox/core"

// numText caches the decimal text of a value so the per-frame header
// only allocates when the number changes.
type numText struct {
	value uint32
	text  string
}

func (n *numText) get(v uint32) string {
	if n.text == "" || n.value != v {
		n.value = v
		n.text = core.Utoa(v)
	}
	return n.text
}

// centerText draws text horizontally centred on the baseline y
func (g *Game) centerText(text string, y int) {
	x := (ScreenWidth - g.disp.TextWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	g.disp.DrawText(x, y, text)
}

// menuTop returns the baseline of the first of n centred lines
func (g *Game) menuTop(n int) int {
	top := g.disp.Ascent() + (ScreenHeight-n*g.disp.LineHeight())/2
	if top < g.disp.Ascent() {
		top = g.disp.Ascent()
	}
	return top
}
