package core

// Tone is an emotional-tone preference used to re-rank recommendations.
// Each recognized tone maps to one of the precomputed emotion scores on a
// BookRecord; ToneAll leaves the similarity order unchanged.
type Tone string

const (
	ToneAll         Tone = "All"
	ToneHappy       Tone = "Happy"
	ToneSurprising  Tone = "Surprising"
	ToneAngry       Tone = "Angry"
	ToneSuspenseful Tone = "Suspenseful"
	ToneSad         Tone = "Sad"
)

// toneScores maps each recognized tone to the emotion score it sorts by.
// Adding a tone is a data change here, not a code change in the engine.
var toneScores = map[Tone]func(*BookRecord) float64{
	ToneHappy:       func(b *BookRecord) float64 { return b.Joy },
	ToneSurprising:  func(b *BookRecord) float64 { return b.Surprise },
	ToneAngry:       func(b *BookRecord) float64 { return b.Anger },
	ToneSuspenseful: func(b *BookRecord) float64 { return b.Fear },
	ToneSad:         func(b *BookRecord) float64 { return b.Sadness },
}

// Tones returns the full tone filter domain, ToneAll first.
func Tones() []Tone {
	return []Tone{ToneAll, ToneHappy, ToneSurprising, ToneAngry, ToneSuspenseful, ToneSad}
}

// Valid reports whether t is a member of the tone filter domain.
func (t Tone) Valid() bool {
	if t == ToneAll {
		return true
	}
	_, ok := toneScores[t]
	return ok
}

// Score returns the emotion score of b selected by this tone.
// The second return is false for ToneAll and for unrecognized tones.
func (t Tone) Score(b *BookRecord) (float64, bool) {
	accessor, ok := toneScores[t]
	if !ok {
		return 0, false
	}
	return accessor(b), true
}
