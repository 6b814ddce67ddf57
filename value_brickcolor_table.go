package rbxdom

// brickColorEntry holds one BrickColor palette entry: legacy numeric id,
// display name, and RGB color. Ported verbatim from
// original_source/rbx_types/src/brick_color.rs (the teacher's own
// rbxtype.BrickColor left these tables undefined; see DESIGN.md).
type brickColorEntry struct {
	Name    string
	Display string
	Number  uint16
	Color   Color3uint8
}

var brickColorTable = [...]brickColorEntry{
	{"White", "White", 1, Color3uint8{242, 243, 243}},
	{"Grey", "Grey", 2, Color3uint8{161, 165, 162}},
	{"LightYellow", "Light yellow", 3, Color3uint8{249, 233, 153}},
	{"BrickYellow", "Brick yellow", 5, Color3uint8{215, 197, 154}},
	{"LightGreenMint", "Light green (Mint)", 6, Color3uint8{194, 218, 184}},
	{"LightReddishViolet", "Light reddish violet", 9, Color3uint8{232, 186, 200}},
	{"PastelBlue", "Pastel Blue", 11, Color3uint8{128, 187, 219}},
	{"LightOrangeBrown", "Light orange brown", 12, Color3uint8{203, 132, 66}},
	{"Nougat", "Nougat", 18, Color3uint8{204, 142, 105}},
	{"BrightRed", "Bright red", 21, Color3uint8{196, 40, 28}},
	{"MedReddishViolet", "Med. reddish violet", 22, Color3uint8{196, 112, 160}},
	{"BrightBlue", "Bright blue", 23, Color3uint8{13, 105, 172}},
	{"BrightYellow", "Bright yellow", 24, Color3uint8{245, 205, 48}},
	{"EarthOrange", "Earth orange", 25, Color3uint8{98, 71, 50}},
	{"Black", "Black", 26, Color3uint8{27, 42, 53}},
	{"DarkGrey", "Dark grey", 27, Color3uint8{109, 110, 108}},
	{"DarkGreen", "Dark green", 28, Color3uint8{40, 127, 71}},
	{"MediumGreen", "Medium green", 29, Color3uint8{161, 196, 140}},
	{"LigYellowichOrange", "Lig. Yellowich orange", 36, Color3uint8{243, 207, 155}},
	{"BrightGreen", "Bright green", 37, Color3uint8{75, 151, 75}},
	{"DarkOrange", "Dark orange", 38, Color3uint8{160, 95, 53}},
	{"LightBluishViolet", "Light bluish violet", 39, Color3uint8{193, 202, 222}},
	{"Transparent", "Transparent", 40, Color3uint8{236, 236, 236}},
	{"TrRed", "Tr. Red", 41, Color3uint8{205, 84, 75}},
	{"TrLgBlue", "Tr. Lg blue", 42, Color3uint8{193, 223, 240}},
	{"TrBlue", "Tr. Blue", 43, Color3uint8{123, 182, 232}},
	{"TrYellow", "Tr. Yellow", 44, Color3uint8{247, 241, 141}},
	{"LightBlue", "Light blue", 45, Color3uint8{180, 210, 228}},
	{"TrFluReddishOrange", "Tr. Flu. Reddish orange", 47, Color3uint8{217, 133, 108}},
	{"TrGreen", "Tr. Green", 48, Color3uint8{132, 182, 141}},
	{"TrFluGreen", "Tr. Flu. Green", 49, Color3uint8{248, 241, 132}},
	{"PhosphWhite", "Phosph. White", 50, Color3uint8{236, 232, 222}},
	{"LightRed", "Light red", 100, Color3uint8{238, 196, 182}},
	{"MediumRed", "Medium red", 101, Color3uint8{218, 134, 122}},
	{"MediumBlue", "Medium blue", 102, Color3uint8{110, 153, 202}},
	{"LightGrey", "Light grey", 103, Color3uint8{199, 193, 183}},
	{"BrightViolet", "Bright violet", 104, Color3uint8{107, 50, 124}},
	{"BrYellowishOrange", "Br. yellowish orange", 105, Color3uint8{226, 155, 64}},
	{"BrightOrange", "Bright orange", 106, Color3uint8{218, 133, 65}},
	{"BrightBluishGreen", "Bright bluish green", 107, Color3uint8{0, 143, 156}},
	{"EarthYellow", "Earth yellow", 108, Color3uint8{104, 92, 67}},
	{"BrightBluishViolet", "Bright bluish violet", 110, Color3uint8{67, 84, 147}},
	{"TrBrown", "Tr. Brown", 111, Color3uint8{191, 183, 177}},
	{"MediumBluishViolet", "Medium bluish violet", 112, Color3uint8{104, 116, 172}},
	{"TrMediReddishViolet", "Tr. Medi. reddish violet", 113, Color3uint8{229, 173, 200}},
	{"MedYellowishGreen", "Med. yellowish green", 115, Color3uint8{199, 210, 60}},
	{"MedBluishGreen", "Med. bluish green", 116, Color3uint8{85, 165, 175}},
	{"LightBluishGreen", "Light bluish green", 118, Color3uint8{183, 215, 213}},
	{"BrYellowishGreen", "Br. yellowish green", 119, Color3uint8{164, 189, 71}},
	{"LigYellowishGreen", "Lig. yellowish green", 120, Color3uint8{217, 228, 167}},
	{"MedYellowishOrange", "Med. yellowish orange", 121, Color3uint8{231, 172, 88}},
	{"BrReddishOrange", "Br. reddish orange", 123, Color3uint8{211, 111, 76}},
	{"BrightReddishViolet", "Bright reddish violet", 124, Color3uint8{146, 57, 120}},
	{"LightOrange", "Light orange", 125, Color3uint8{234, 184, 146}},
	{"TrBrightBluishViolet", "Tr. Bright bluish violet", 126, Color3uint8{165, 165, 203}},
	{"Gold", "Gold", 127, Color3uint8{220, 188, 129}},
	{"DarkNougat", "Dark nougat", 128, Color3uint8{174, 122, 89}},
	{"Silver", "Silver", 131, Color3uint8{156, 163, 168}},
	{"NeonOrange", "Neon orange", 133, Color3uint8{213, 115, 61}},
	{"NeonGreen", "Neon green", 134, Color3uint8{216, 221, 86}},
	{"SandBlue", "Sand blue", 135, Color3uint8{116, 134, 157}},
	{"SandViolet", "Sand violet", 136, Color3uint8{135, 124, 144}},
	{"MediumOrange", "Medium orange", 137, Color3uint8{224, 152, 100}},
	{"SandYellow", "Sand yellow", 138, Color3uint8{149, 138, 115}},
	{"EarthBlue", "Earth blue", 140, Color3uint8{32, 58, 86}},
	{"EarthGreen", "Earth green", 141, Color3uint8{39, 70, 45}},
	{"TrFluBlue", "Tr. Flu. Blue", 143, Color3uint8{207, 226, 247}},
	{"SandBlueMetallic", "Sand blue metallic", 145, Color3uint8{121, 136, 161}},
	{"SandVioletMetallic", "Sand violet metallic", 146, Color3uint8{149, 142, 163}},
	{"SandYellowMetallic", "Sand yellow metallic", 147, Color3uint8{147, 135, 103}},
	{"DarkGreyMetallic", "Dark grey metallic", 148, Color3uint8{87, 88, 87}},
	{"BlackMetallic", "Black metallic", 149, Color3uint8{22, 29, 50}},
	{"LightGreyMetallic", "Light grey metallic", 150, Color3uint8{171, 173, 172}},
	{"SandGreen", "Sand green", 151, Color3uint8{120, 144, 130}},
	{"SandRed", "Sand red", 153, Color3uint8{149, 121, 119}},
	{"DarkRed", "Dark red", 154, Color3uint8{123, 46, 47}},
	{"TrFluYellow", "Tr. Flu. Yellow", 157, Color3uint8{255, 246, 123}},
	{"TrFluRed", "Tr. Flu. Red", 158, Color3uint8{225, 164, 194}},
	{"GunMetallic", "Gun metallic", 168, Color3uint8{117, 108, 98}},
	{"RedFlipFlop", "Red flip/flop", 176, Color3uint8{151, 105, 91}},
	{"YellowFlipFlop", "Yellow flip/flop", 178, Color3uint8{180, 132, 85}},
	{"SilverFlipFlop", "Silver flip/flop", 179, Color3uint8{137, 135, 136}},
	{"Curry", "Curry", 180, Color3uint8{215, 169, 75}},
	{"FireYellow", "Fire Yellow", 190, Color3uint8{249, 214, 46}},
	{"FlameYellowishOrange", "Flame yellowish orange", 191, Color3uint8{232, 171, 45}},
	{"ReddishBrown", "Reddish brown", 192, Color3uint8{105, 64, 40}},
	{"FlameReddishOrange", "Flame reddish orange", 193, Color3uint8{207, 96, 36}},
	{"MediumStoneGrey", "Medium stone grey", 194, Color3uint8{163, 162, 165}},
	{"RoyalBlue", "Royal blue", 195, Color3uint8{70, 103, 164}},
	{"DarkRoyalBlue", "Dark Royal blue", 196, Color3uint8{35, 71, 139}},
	{"BrightReddishLilac", "Bright reddish lilac", 198, Color3uint8{142, 66, 133}},
	{"DarkStoneGrey", "Dark stone grey", 199, Color3uint8{99, 95, 98}},
	{"LemonMetalic", "Lemon metalic", 200, Color3uint8{130, 138, 93}},
	{"LightStoneGrey", "Light stone grey", 208, Color3uint8{229, 228, 223}},
	{"DarkCurry", "Dark Curry", 209, Color3uint8{176, 142, 68}},
	{"FadedGreen", "Faded green", 210, Color3uint8{112, 149, 120}},
	{"Turquoise", "Turquoise", 211, Color3uint8{121, 181, 181}},
	{"LightRoyalBlue", "Light Royal blue", 212, Color3uint8{159, 195, 233}},
	{"MediumRoyalBlue", "Medium Royal blue", 213, Color3uint8{108, 129, 183}},
	{"Rust", "Rust", 216, Color3uint8{144, 76, 42}},
	{"Brown", "Brown", 217, Color3uint8{124, 92, 70}},
	{"ReddishLilac", "Reddish lilac", 218, Color3uint8{150, 112, 159}},
	{"Lilac2", "Lilac", 219, Color3uint8{107, 98, 155}},
	{"LightLilac", "Light lilac", 220, Color3uint8{167, 169, 206}},
	{"BrightPurple", "Bright purple", 221, Color3uint8{205, 98, 152}},
	{"LightPurple", "Light purple", 222, Color3uint8{228, 173, 200}},
	{"LightPink", "Light pink", 223, Color3uint8{220, 144, 149}},
	{"LightBrickYellow", "Light brick yellow", 224, Color3uint8{240, 213, 160}},
	{"WarmYellowishOrange", "Warm yellowish orange", 225, Color3uint8{235, 184, 127}},
	{"CoolYellow", "Cool yellow", 226, Color3uint8{253, 234, 141}},
	{"DoveBlue", "Dove blue", 232, Color3uint8{125, 187, 221}},
	{"MediumLilac", "Medium lilac", 268, Color3uint8{52, 43, 117}},
	{"SlimeGreen", "Slime green", 301, Color3uint8{80, 109, 84}},
	{"SmokyGrey", "Smoky grey", 302, Color3uint8{91, 93, 105}},
	{"DarkBlue", "Dark blue", 303, Color3uint8{0, 16, 176}},
	{"ParsleyGreen", "Parsley green", 304, Color3uint8{44, 101, 29}},
	{"SteelBlue", "Steel blue", 305, Color3uint8{82, 124, 174}},
	{"StormBlue", "Storm blue", 306, Color3uint8{51, 88, 130}},
	{"Lapis", "Lapis", 307, Color3uint8{16, 42, 220}},
	{"DarkIndigo", "Dark indigo", 308, Color3uint8{61, 21, 133}},
	{"SeaGreen", "Sea green", 309, Color3uint8{52, 142, 64}},
	{"Shamrock", "Shamrock", 310, Color3uint8{91, 154, 76}},
	{"Fossil", "Fossil", 311, Color3uint8{159, 161, 172}},
	{"Mulberry", "Mulberry", 312, Color3uint8{89, 34, 89}},
	{"ForestGreen", "Forest green", 313, Color3uint8{31, 128, 29}},
	{"CadetBlue", "Cadet blue", 314, Color3uint8{159, 173, 192}},
	{"ElectricBlue", "Electric blue", 315, Color3uint8{9, 137, 207}},
	{"Eggplant", "Eggplant", 316, Color3uint8{123, 0, 123}},
	{"Moss", "Moss", 317, Color3uint8{124, 156, 107}},
	{"Artichoke", "Artichoke", 318, Color3uint8{138, 171, 133}},
	{"SageGreen", "Sage green", 319, Color3uint8{185, 196, 177}},
	{"GhostGrey", "Ghost grey", 320, Color3uint8{202, 203, 209}},
	{"Lilac", "Lilac", 321, Color3uint8{167, 94, 155}},
	{"Plum", "Plum", 322, Color3uint8{123, 47, 123}},
	{"Olivine", "Olivine", 323, Color3uint8{148, 190, 129}},
	{"LaurelGreen", "Laurel green", 324, Color3uint8{168, 189, 153}},
	{"QuillGrey", "Quill grey", 325, Color3uint8{223, 223, 222}},
	{"Crimson", "Crimson", 327, Color3uint8{151, 0, 0}},
	{"Mint", "Mint", 328, Color3uint8{177, 229, 166}},
	{"BabyBlue", "Baby blue", 329, Color3uint8{152, 194, 219}},
	{"CarnationPink", "Carnation pink", 330, Color3uint8{255, 152, 220}},
	{"Persimmon", "Persimmon", 331, Color3uint8{255, 89, 89}},
	{"Maroon", "Maroon", 332, Color3uint8{117, 0, 0}},
	{"Gold2", "Gold", 333, Color3uint8{239, 184, 56}},
	{"DaisyOrange", "Daisy orange", 334, Color3uint8{248, 217, 109}},
	{"Pearl", "Pearl", 335, Color3uint8{231, 231, 236}},
	{"Fog", "Fog", 336, Color3uint8{199, 212, 228}},
	{"Salmon", "Salmon", 337, Color3uint8{255, 148, 148}},
	{"TerraCotta", "Terra Cotta", 338, Color3uint8{190, 104, 98}},
	{"Cocoa", "Cocoa", 339, Color3uint8{86, 36, 36}},
	{"Wheat", "Wheat", 340, Color3uint8{241, 231, 199}},
	{"Buttermilk", "Buttermilk", 341, Color3uint8{254, 243, 187}},
	{"Mauve", "Mauve", 342, Color3uint8{224, 178, 208}},
	{"Sunrise", "Sunrise", 343, Color3uint8{212, 144, 189}},
	{"Tawny", "Tawny", 344, Color3uint8{150, 85, 85}},
	{"Rust2", "Rust", 345, Color3uint8{143, 76, 42}},
	{"Cashmere", "Cashmere", 346, Color3uint8{211, 190, 150}},
	{"Khaki", "Khaki", 347, Color3uint8{226, 220, 188}},
	{"LilyWhite", "Lily white", 348, Color3uint8{237, 234, 234}},
	{"Seashell", "Seashell", 349, Color3uint8{233, 218, 218}},
	{"Burgundy", "Burgundy", 350, Color3uint8{136, 62, 62}},
	{"Cork", "Cork", 351, Color3uint8{188, 155, 93}},
	{"Burlap", "Burlap", 352, Color3uint8{199, 172, 120}},
	{"Beige", "Beige", 353, Color3uint8{202, 191, 163}},
	{"Oyster", "Oyster", 354, Color3uint8{187, 179, 178}},
	{"PineCone", "Pine Cone", 355, Color3uint8{108, 88, 75}},
	{"FawnBrown", "Fawn brown", 356, Color3uint8{160, 132, 79}},
	{"HurricaneGrey", "Hurricane grey", 357, Color3uint8{149, 137, 136}},
	{"CloudyGrey", "Cloudy grey", 358, Color3uint8{171, 168, 158}},
	{"Linen", "Linen", 359, Color3uint8{175, 148, 131}},
	{"Copper", "Copper", 360, Color3uint8{150, 103, 102}},
	{"DirtBrown", "Dirt brown", 361, Color3uint8{86, 66, 54}},
	{"Bronze", "Bronze", 362, Color3uint8{126, 104, 63}},
	{"Flint", "Flint", 363, Color3uint8{105, 102, 92}},
	{"DarkTaupe", "Dark taupe", 364, Color3uint8{90, 76, 66}},
	{"BurntSienna", "Burnt Sienna", 365, Color3uint8{106, 57, 9}},
	{"InstitutionalWhite", "Institutional white", 1001, Color3uint8{248, 248, 248}},
	{"MidGray", "Mid gray", 1002, Color3uint8{205, 205, 205}},
	{"ReallyBlack", "Really black", 1003, Color3uint8{17, 17, 17}},
	{"ReallyRed", "Really red", 1004, Color3uint8{255, 0, 0}},
	{"DeepOrange", "Deep orange", 1005, Color3uint8{255, 176, 0}},
	{"Alder", "Alder", 1006, Color3uint8{180, 128, 255}},
	{"DustyRose", "Dusty Rose", 1007, Color3uint8{163, 75, 75}},
	{"Olive", "Olive", 1008, Color3uint8{193, 190, 66}},
	{"NewYeller", "New Yeller", 1009, Color3uint8{255, 255, 0}},
	{"ReallyBlue", "Really blue", 1010, Color3uint8{0, 0, 255}},
	{"NavyBlue", "Navy blue", 1011, Color3uint8{0, 32, 96}},
	{"DeepBlue", "Deep blue", 1012, Color3uint8{33, 84, 185}},
	{"Cyan", "Cyan", 1013, Color3uint8{4, 175, 236}},
	{"CGABrown", "CGA brown", 1014, Color3uint8{170, 85, 0}},
	{"Magenta", "Magenta", 1015, Color3uint8{170, 0, 170}},
	{"Pink", "Pink", 1016, Color3uint8{255, 102, 204}},
	{"DeepOrange2", "Deep orange", 1017, Color3uint8{255, 175, 0}},
	{"Teal", "Teal", 1018, Color3uint8{18, 238, 212}},
	{"Toothpaste", "Toothpaste", 1019, Color3uint8{0, 255, 255}},
	{"LimeGreen", "Lime green", 1020, Color3uint8{0, 255, 0}},
	{"Camo", "Camo", 1021, Color3uint8{58, 125, 21}},
	{"Grime", "Grime", 1022, Color3uint8{127, 142, 100}},
	{"Lavender", "Lavender", 1023, Color3uint8{140, 91, 159}},
	{"PastelLightBlue", "Pastel light blue", 1024, Color3uint8{175, 221, 255}},
	{"PastelOrange", "Pastel orange", 1025, Color3uint8{255, 201, 201}},
	{"PastelViolet", "Pastel violet", 1026, Color3uint8{177, 167, 255}},
	{"PastelBlueGreen", "Pastel blue-green", 1027, Color3uint8{159, 243, 233}},
	{"PastelGreen", "Pastel green", 1028, Color3uint8{204, 255, 204}},
	{"PastelYellow", "Pastel yellow", 1029, Color3uint8{255, 255, 204}},
	{"PastelBrown", "Pastel brown", 1030, Color3uint8{255, 204, 153}},
	{"RoyalPurple", "Royal purple", 1031, Color3uint8{98, 37, 209}},
	{"HotPink", "Hot pink", 1032, Color3uint8{255, 0, 191}},
}

var brickColorByNumber map[uint16]*brickColorEntry
var brickColorByName map[string]*brickColorEntry

func init() {
	brickColorByNumber = make(map[uint16]*brickColorEntry, len(brickColorTable))
	brickColorByName = make(map[string]*brickColorEntry, len(brickColorTable))
	for i := range brickColorTable {
		e := &brickColorTable[i]
		brickColorByNumber[e.Number] = e
		brickColorByName[e.Name] = e
	}
}
