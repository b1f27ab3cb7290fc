package ui

import "time"

// DefaultPhrases are the hero lines cycled by the typewriter.
var DefaultPhrases = []string{
	"Desarrollo Soluciones Digitales Modernas",
	"Construyo Experiencias de Usuario Intuitivas",
	"Te Ayudo a Crear tu Próxima App iOS",
	"Mi Código Transforma Ideas en Realidad",
}

const (
	typeDelay   = 50 * time.Millisecond
	eraseDelay  = 30 * time.Millisecond
	holdDelay   = time.Second
	switchDelay = 500 * time.Millisecond
)

// Frame is one step of the animation: show Text, then wait Delay.
type Frame struct {
	Text  string
	Delay time.Duration
}

// Typewriter types a phrase one rune at a time, holds it, erases it and
// moves on to the next phrase, looping forever.
type Typewriter struct {
	phrases [][]rune
	phrase  int
	n       int
	erasing bool
}

// NewTypewriter creates a Typewriter. With no phrases it uses
// DefaultPhrases.
func NewTypewriter(phrases ...string) *Typewriter {
	if len(phrases) == 0 {
		phrases = DefaultPhrases
	}
	t := &Typewriter{}
	for _, p := range phrases {
		t.phrases = append(t.phrases, []rune(p))
	}
	return t
}

// Next advances the animation by one frame.
func (t *Typewriter) Next() Frame {
	cur := t.phrases[t.phrase]
	if !t.erasing {
		if t.n < len(cur) {
			t.n++
		}
		if t.n == len(cur) {
			t.erasing = true
			return Frame{Text: string(cur), Delay: holdDelay}
		}
		return Frame{Text: string(cur[:t.n]), Delay: typeDelay}
	}

	if t.n > 0 {
		t.n--
	}
	if t.n == 0 {
		t.erasing = false
		t.phrase = (t.phrase + 1) % len(t.phrases)
		return Frame{Text: "", Delay: switchDelay}
	}
	return Frame{Text: string(cur[:t.n]), Delay: eraseDelay}
}

// Cycle returns the frames of one full pass over every phrase. Playing
// them in a loop gives the same animation as calling Next forever.
func Cycle(phrases ...string) []Frame {
	t := NewTypewriter(phrases...)
	var frames []Frame
	for {
		frames = append(frames, t.Next())
		if t.phrase == 0 && t.n == 0 && !t.erasing {
			return frames
		}
	}
}
