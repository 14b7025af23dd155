package manifest

// Default returns the built-in tables: six music club tracks and five
// character variations of the base sprite sheet.
func Default() *Manifest {
	return &Manifest{
		Audio: AudioSection{
			Tracks: []Track{
				{File: "electric-dreams.mp3", Seconds: 203},
				{File: "midnight-groove.mp3", Seconds: 185},
				{File: "cosmic-voyage.mp3", Seconds: 247},
				{File: "urban-pulse.mp3", Seconds: 192},
				{File: "sunset-boulevard.mp3", Seconds: 218},
				{File: "digital-horizons.mp3", Seconds: 234},
			},
		},
		Sprites: SpriteSection{
			Variations: []Variation{
				{
					Name:   "character-2",
					Output: "character-2-spritesheet.png",
					Rules: shirtAndPants(
						Color{220, 50, 50}, Color{180, 30, 30}, Color{200, 40, 40}, Color{240, 70, 70},
						Color{33, 33, 33}, Color{20, 20, 20},
					),
				},
				{
					Name:   "character-3",
					Output: "character-3-spritesheet.png",
					Rules: shirtAndPants(
						Color{50, 180, 50}, Color{30, 140, 30}, Color{40, 160, 40}, Color{70, 200, 70},
						Color{101, 67, 33}, Color{80, 52, 25},
					),
				},
				{
					Name:   "character-4",
					Output: "character-4-spritesheet.png",
					Rules: shirtAndPants(
						Color{150, 50, 200}, Color{110, 30, 150}, Color{130, 40, 175}, Color{170, 70, 220},
						Color{120, 120, 120}, Color{90, 90, 90},
					),
				},
				{
					Name:   "character-5",
					Output: "character-5-spritesheet.png",
					Rules: shirtAndPants(
						Color{255, 215, 0}, Color{200, 170, 0}, Color{230, 192, 0}, Color{255, 235, 50},
						Color{50, 100, 200}, Color{30, 75, 160},
					),
				},
				{
					Name:   "character-6",
					Output: "character-6-spritesheet.png",
					Rules: shirtAndPants(
						Color{255, 140, 0}, Color{200, 100, 0}, Color{230, 120, 0}, Color{255, 160, 50},
						Color{34, 139, 34}, Color{25, 100, 25},
					),
				},
			},
		},
	}
}

// Source tones of the base character, in rule order.
var (
	shirt       = Color{66, 134, 244}
	shirtDark   = Color{33, 100, 200}
	shirtMedium = Color{50, 117, 222}
	shirtLight  = Color{82, 145, 255}
	pants       = Color{41, 108, 211}
	pantsDark   = Color{25, 83, 166}
)

func shirtAndPants(base, dark, medium, light, pantsTo, pantsDarkTo Color) []Rule {
	return []Rule{
		{From: shirt, To: base},
		{From: shirtDark, To: dark},
		{From: shirtMedium, To: medium},
		{From: shirtLight, To: light},
		{From: pants, To: pantsTo},
		{From: pantsDark, To: pantsDarkTo},
	}
}
