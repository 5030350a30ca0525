package insight

// polarity maps lowercase tokens to a fixed sentiment weight. The list
// is deliberately small and static so scoring stays reproducible across
// runs and environments.
var polarity = map[string]float64{
	// positive
	"amazing":      0.6,
	"awesome":      1.0,
	"beautiful":    0.85,
	"best":         1.0,
	"better":       0.5,
	"brilliant":    0.9,
	"cool":         0.35,
	"cute":         0.5,
	"delicious":    1.0,
	"easy":         0.43,
	"epic":         0.6,
	"excellent":    1.0,
	"exciting":     0.45,
	"fantastic":    0.4,
	"fun":          0.3,
	"funny":        0.25,
	"genius":       0.6,
	"good":         0.7,
	"great":        0.8,
	"happy":        0.8,
	"hilarious":    0.6,
	"incredible":   0.9,
	"insane":       0.4,
	"legendary":    0.6,
	"love":         0.5,
	"lovely":       0.5,
	"perfect":      1.0,
	"powerful":     0.35,
	"satisfying":   0.5,
	"smart":        0.6,
	"stunning":     0.8,
	"success":      0.55,
	"successful":   0.55,
	"sweet":        0.35,
	"top":          0.5,
	"ultimate":     0.45,
	"unbelievable": 0.55,
	"viral":        0.3,
	"win":          0.8,
	"winner":       0.8,
	"wonderful":    1.0,
	"wow":          0.45,

	// negative
	"angry":        -0.5,
	"awful":        -1.0,
	"bad":          -0.7,
	"boring":       -0.6,
	"broken":       -0.4,
	"crazy":        -0.3,
	"creepy":       -0.5,
	"cringe":       -0.6,
	"dangerous":    -0.6,
	"dead":         -0.6,
	"disaster":     -0.8,
	"disgusting":   -1.0,
	"embarrassing": -0.5,
	"fail":         -0.5,
	"failed":       -0.5,
	"fake":         -0.5,
	"hate":         -0.8,
	"horrible":     -1.0,
	"hurt":         -0.5,
	"lose":         -0.4,
	"loser":        -0.6,
	"lost":         -0.4,
	"mistake":      -0.4,
	"painful":      -0.7,
	"sad":          -0.5,
	"scam":         -0.7,
	"scary":        -0.6,
	"shocking":     -0.4,
	"stupid":       -0.8,
	"terrible":     -1.0,
	"toxic":        -0.6,
	"tragic":       -0.7,
	"ugly":         -0.7,
	"wrong":        -0.5,
	"worst":        -1.0,
	"worse":        -0.6,
}
