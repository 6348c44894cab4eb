package data

import "math"

// KeyboardGraph models one physical keyboard layout as an adjacency graph:
// every key maps to the keys within one physical step of it, in every
// direction a finger can slide. The spatial matcher walks this graph to
// find runs of consecutive characters that trace a short path across the
// keys (e.g. "qwerty", "1qaz", "asdfg").
//
// Coordinates follow the real stagger of each physical row, the same way
// the rows in the original password checker's keyboard scanner were laid
// out as flat strings ("qwertyuiop", "asdfghjkl", "zxcvbnm", ...); here
// each character additionally carries an (x, y) position so adjacency and
// turn-counting can be computed geometrically instead of by string offset.
type KeyboardGraph struct {
	Name      string
	Adjacency map[rune][]rune
	// Shifted maps an unshifted key to the character produced while
	// holding shift (e.g. '1' -> '!', 'a' -> 'A'). A spatial match that
	// mixes shifted and unshifted characters costs more guesses.
	Shifted map[rune]rune
	// Positions gives each key's (x, y) coordinate, used to tell whether
	// consecutive steps of a walk continue in the same direction or turn.
	Positions map[rune][2]float64
}

type keyPos struct {
	ch   rune
	x, y float64
}

// adjacentRadius is the maximum Euclidean distance, in key-widths, at
// which two keys are considered adjacent. 1.5 catches the same-row
// neighbor and both diagonal neighbors on a staggered row without also
// catching the next key over.
const adjacentRadius = 1.5

func buildGraph(name string, rows [][]rune, rowOffsets []float64, shifted map[rune]rune) KeyboardGraph {
	var positions []keyPos
	full := make(map[rune]rune, len(shifted))
	for base, sh := range shifted {
		full[base] = sh
	}
	for y, row := range rows {
		offset := 0.0
		if y < len(rowOffsets) {
			offset = rowOffsets[y]
		}
		for x, ch := range row {
			positions = append(positions, keyPos{ch: ch, x: float64(x) + offset, y: float64(y)})
			if ch >= 'a' && ch <= 'z' {
				full[ch] = ch - ('a' - 'A')
			}
		}
	}
	shifted = full

	adj := make(map[rune][]rune, len(positions))
	pos := make(map[rune][2]float64, len(positions))
	for i, p := range positions {
		var neighbors []rune
		for j, q := range positions {
			if i == j {
				continue
			}
			dx := p.x - q.x
			dy := p.y - q.y
			if math.Hypot(dx, dy) <= adjacentRadius {
				neighbors = append(neighbors, q.ch)
			}
		}
		adj[p.ch] = neighbors
		pos[p.ch] = [2]float64{p.x, p.y}
	}

	return KeyboardGraph{Name: name, Adjacency: adj, Shifted: shifted, Positions: pos}
}

// Qwerty is the standard US QWERTY layout, staggered the way physical
// keyboards actually are: each row shifts right of the one above it.
var Qwerty = buildGraph(
	"qwerty",
	[][]rune{
		[]rune("`1234567890-="),
		[]rune("qwertyuiop[]\\"),
		[]rune("asdfghjkl;'"),
		[]rune("zxcvbnm,./"),
	},
	[]float64{0, 0.5, 0.75, 1.25},
	map[rune]rune{
		'`': '~', '1': '!', '2': '@', '3': '#', '4': '$', '5': '%',
		'6': '^', '7': '&', '8': '*', '9': '(', '0': ')', '-': '_', '=': '+',
		'[': '{', ']': '}', '\\': '|', ';': ':', '\'': '"', ',': '<', '.': '>', '/': '?',
	},
)

// Dvorak is the Dvorak Simplified Keyboard layout, laid out with the same
// row stagger as Qwerty but a different letter arrangement.
var Dvorak = buildGraph(
	"dvorak",
	[][]rune{
		[]rune("`1234567890[]"),
		[]rune("',.pyfgcrl/=\\"),
		[]rune("aoeuidhtns-"),
		[]rune(";qjkxbmwvz"),
	},
	[]float64{0, 0.5, 0.75, 1.25},
	map[rune]rune{
		'`': '~', '1': '!', '2': '@', '3': '#', '4': '$', '5': '%',
		'6': '^', '7': '&', '8': '*', '9': '(', '0': ')', '[': '{', ']': '}',
		'\'': '"', ',': '<', '.': '>', '/': '?', '=': '+', '\\': '|',
		'-': '_', ';': ':',
	},
)

// Keypad is the standard numeric keypad, laid out as a 3x3 grid of digits
// 7-9/4-6/1-3 above a wide 0 key, the same grouping the original checker
// used for its numpad row/column/diagonal strings.
var Keypad = buildGraph(
	"keypad",
	[][]rune{
		[]rune("789"),
		[]rune("456"),
		[]rune("123"),
		[]rune("0."),
	},
	[]float64{0, 0, 0, 0},
	nil,
)

// MacKeypad is a keypad variant with a differently shaped zero row, as
// found on older Mac external keypads (0 occupies a single cell next to
// a decimal point rather than spanning two).
var MacKeypad = buildGraph(
	"mac_keypad",
	[][]rune{
		[]rune("=/*"),
		[]rune("789-"),
		[]rune("456+"),
		[]rune("123"),
		[]rune("0."),
	},
	[]float64{0, 0, 0, 0, 0.5},
	nil,
)

// Graphs lists every keyboard graph the spatial matcher walks against a
// password, in a fixed order so match output is deterministic.
var Graphs = []KeyboardGraph{Qwerty, Dvorak, Keypad, MacKeypad}
