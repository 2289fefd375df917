package pet

import (
	petstate "github.com/nithya6875/gitbuddy-sub000/internal/pet"
)

// Two animation frames per mood. Frames are the same size so the layout
// doesn't jump between ticks.
var sprites = map[petstate.Mood][2]string{
	petstate.MoodExcited: {
		`   \ (\_/) /
     (^o^)
    <(   )>
     /   \ `,
		`   / (\_/) \
     (^o^)
    >(   )<
     /   \ `,
	},
	petstate.MoodHappy: {
		`     (\_/)
     (^_^)
    c(   )
     /   \ `,
		`     (\_/)
     (^_^)
     (   )c
     /   \ `,
	},
	petstate.MoodNeutral: {
		`     (\_/)
     (o_o)
     (   )
     /   \ `,
		`     (\_/)
     (o_o)
     (   )
     /   \ `,
	},
	petstate.MoodSad: {
		`     (\_/)
     (;_;)
     (   )
     /   \ `,
		`     (\_/)
     (;_;)
    c(   )
     /   \ `,
	},
	petstate.MoodSick: {
		`     (\_/)
     (x_x)
     (   )
     /   \ `,
		`     (\_/)
     (x_~)
     (   )
     /   \ `,
	},
	petstate.MoodSleeping: {
		`     (\_/)    z
     (-_-)  Z
     (   )
     /   \ `,
		`     (\_/)  Z
     (-_-)    z
     (   )
     /   \ `,
	},
}

// Sprite returns the ASCII art for a mood and animation frame.
func Sprite(mood petstate.Mood, frame int) string {
	frames, ok := sprites[mood]
	if !ok {
		frames = sprites[petstate.MoodNeutral]
	}
	return frames[frame%2]
}
