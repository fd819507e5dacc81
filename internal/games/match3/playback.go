package match3

import (
	"github.com/vovakirdan/tui-match3/internal/config"
	engine "github.com/vovakirdan/tui-match3/internal/match3"
)

// playback steps through the frames of a turn, holding each for a number
// of ticks that depends on its phase.
type playback struct {
	frames []engine.Frame
	index  int
	ticks  int
	anim   config.AnimationConfig
}

func (p *playback) start(frames []engine.Frame, anim config.AnimationConfig) {
	p.frames = frames
	p.index = 0
	p.ticks = 0
	p.anim = anim
	p.skipEmpty()
}

func (p *playback) active() bool {
	return p.index < len(p.frames)
}

// current returns the frame on screen, or nil once playback is done.
func (p *playback) current() *engine.Frame {
	if !p.active() {
		return nil
	}
	return &p.frames[p.index]
}

func (p *playback) step() {
	if !p.active() {
		return
	}
	p.ticks++
	if p.ticks >= p.duration(p.frames[p.index].Phase) {
		p.index++
		p.ticks = 0
		p.skipEmpty()
	}
}

// skipEmpty passes over frames whose phase has zero duration.
func (p *playback) skipEmpty() {
	for p.active() && p.duration(p.frames[p.index].Phase) <= 0 {
		p.index++
	}
}

func (p *playback) duration(phase engine.Phase) int {
	switch phase {
	case engine.PhaseSwap:
		return p.anim.Swap
	case engine.PhaseSwapBack:
		return p.anim.Invalid
	case engine.PhaseClear, engine.PhaseRegenerate:
		return p.anim.Clear
	case engine.PhaseFall:
		return p.anim.Fall
	default:
		return 0
	}
}
