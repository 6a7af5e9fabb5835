package species

// Sprite is a pixel-art bitmap, forward is up. 1 = filled.
type Sprite [][]uint8

// Visual holds the rendering metadata of a species.
type Visual struct {
	SpriteKey string
	Color     uint32 // 0xRRGGBB
	PixelSize int    // screen pixels per sprite pixel
}

var visuals = [Count]Visual{
	Sardine:   {SpriteKey: "sardine", Color: 0x88ccff, PixelSize: 2},
	Squid:     {SpriteKey: "squid", Color: 0xdd66ff, PixelSize: 3},
	Octopus:   {SpriteKey: "octopus", Color: 0xff8833, PixelSize: 3},
	Crab:      {SpriteKey: "crab", Color: 0xff3311, PixelSize: 3},
	SeaTurtle: {SpriteKey: "sea_turtle", Color: 0x33ff99, PixelSize: 4},
	Jellyfish: {SpriteKey: "jellyfish", Color: 0xff88ee, PixelSize: 3},
	Manta:     {SpriteKey: "manta", Color: 0x3388ff, PixelSize: 4},
}

// VisualOf returns the rendering metadata of s.
func VisualOf(s Species) Visual {
	if !s.Valid() {
		return visuals[Sardine]
	}
	return visuals[s]
}

// Predator rendering metadata.
const (
	PredatorSpriteKey = "shark"
	PredatorColor     = 0xff2200
	PredatorPixelSize = 5
)

// Sprites maps sprite keys to bitmaps.
var Sprites = map[string]Sprite{
	"sardine": {
		{0, 0, 1, 0, 0},
		{0, 1, 1, 1, 0},
		{1, 1, 1, 1, 1},
		{0, 1, 0, 1, 0},
	},
	"squid": {
		{0, 0, 1, 0, 0},
		{0, 1, 1, 1, 0},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{0, 1, 1, 1, 0},
		{1, 0, 1, 0, 1},
		{0, 1, 0, 1, 0},
	},
	"octopus": {
		{0, 0, 1, 1, 1, 0, 0},
		{0, 1, 1, 1, 1, 1, 0},
		{1, 1, 1, 1, 1, 1, 1},
		{0, 1, 1, 1, 1, 1, 0},
		{1, 0, 1, 0, 1, 0, 1},
		{0, 1, 0, 1, 0, 1, 0},
	},
	"crab": {
		{1, 0, 1, 0, 1},
		{0, 1, 1, 1, 0},
		{1, 1, 1, 1, 1},
		{0, 1, 1, 1, 0},
		{1, 0, 0, 0, 1},
	},
	"sea_turtle": {
		{0, 1, 1, 1, 0},
		{1, 1, 1, 1, 1},
		{0, 1, 1, 1, 0},
		{0, 1, 1, 1, 0},
		{1, 1, 1, 1, 1},
		{0, 0, 1, 0, 0},
	},
	"jellyfish": {
		{0, 1, 1, 1, 0},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{0, 1, 1, 1, 0},
		{1, 0, 1, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
	},
	"manta": {
		{0, 0, 0, 0, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1},
		{0, 0, 0, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0, 0, 0},
	},
	"shark": {
		{0, 0, 0, 1, 0, 0, 0},
		{0, 0, 1, 1, 1, 0, 0},
		{0, 1, 1, 1, 1, 1, 0},
		{1, 1, 1, 1, 1, 1, 1},
		{0, 0, 1, 1, 1, 0, 0},
		{0, 0, 1, 1, 1, 0, 0},
		{0, 1, 0, 1, 0, 1, 0},
		{1, 0, 0, 0, 0, 0, 1},
	},
}
