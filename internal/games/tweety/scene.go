package tweety

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tweety-escape/internal/core"
)

// Instruction panel text, shown in place of an illustration.
var howToPlay = []string{
	"HOW TO PLAY",
	"",
	"Press SPACE to flap and keep Tweety in the air.",
	"Fly through the gaps between the trees.",
	"Every tree you pass scores a point.",
	"Touching a tree, the ground or the sky ends the run.",
	"",
	"The trees get faster and closer as you score.",
}

// Render draws the current mode onto dst.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear()

	switch g.mode {
	case ModeMenu:
		g.drawMenu(dst)
	case ModeHowToPlay:
		g.drawHowToPlay(dst)
	case ModeReady:
		g.drawReady(dst)
	case ModePlaying:
		g.drawScene(dst)
		g.drawHUD(dst)
	case ModeGameOver:
		g.drawScene(dst)
		g.drawHUD(dst)
		g.drawGameOver(dst)
	}
}

func (g *Game) drawButtons(dst core.Canvas) {
	for _, r := range Regions(g.mode, g.w, g.h) {
		dst.Button(r.Box, r.Button.Label())
	}
}

func (g *Game) drawMenu(dst core.Canvas) {
	dst.Shade()
	dst.Sprite(core.SpriteLogo, core.NewBox(g.w/3-170, g.h/2-275, 400, 400), 0)
	dst.Text(g.w/2.8-250, g.h/1.1-40, g.Title(), core.ColorBrightWhite)
	g.drawButtons(dst)
}

func (g *Game) drawHowToPlay(dst core.Canvas) {
	dst.Shade()
	y := g.h/2 - 200
	for _, line := range howToPlay {
		dst.TextCentered(g.w/2, y, line, core.ColorWhite)
		y += 30
	}
	g.drawButtons(dst)
}

func (g *Game) drawReady(dst core.Canvas) {
	dst.Shade()
	dst.TextCentered(g.w/2, g.h/2, "Press SPACE to START the game!!", core.ColorWhite)
}

// drawScene draws the trees and the actor.
func (g *Game) drawScene(dst core.Canvas) {
	for i := len(g.obstacles) - 1; i >= 0; i-- {
		o := g.obstacles[i]
		dst.Sprite(core.SpriteTreeTop, o.TopBox(), 0)
		dst.Sprite(core.SpriteTreeBottom, o.BottomBox(g.h), 0)
	}
	dst.Sprite(core.SpriteActor, g.actor.Bounds(), g.actor.Rotation())
}

func (g *Game) drawHUD(dst core.Canvas) {
	dst.TextCentered(g.w/2, 40, strconv.Itoa(g.score), core.ColorBrightCyan)
	dst.Text(15, 15, fmt.Sprintf("Attempts: %d", g.attempts), core.ColorWhite)
	dst.Text(15, 50, fmt.Sprintf("Best: %d", g.best), core.ColorWhite)
	if g.newBest {
		dst.TextCentered(g.w/2, 80, "NEW BEST", core.ColorRed)
	}
}

func (g *Game) drawGameOver(dst core.Canvas) {
	dst.Shade()
	dst.TextCentered(g.w/2, g.h/2-150, "GAME OVER", core.ColorBrightRed)
	if g.beatBest {
		dst.TextCentered(g.w/2, g.h/2-60, fmt.Sprintf("NEW BEST: %d", g.score), core.ColorBrightYellow)
	} else {
		dst.TextCentered(g.w/2, g.h/2-60, fmt.Sprintf("Score: %d", g.score), core.ColorWhite)
	}
	g.drawButtons(dst)
}
