package game

// Sprites are XBM: rows of (w+7)/8 bytes, least significant bit leftmost.
// Alien and mothership sprites carry two frames.

var motherShipGfx = [2][]byte{
	{0xfc, 0x3f, 0xb6, 0x6d, 0xff, 0xff, 0x9c, 0x39}, // large
	{0xfc, 0x00, 0x4a, 0x01, 0xff, 0x03, 0xb5, 0x02}, // small
}

var alienGfx = [Rows][2][]byte{
	{
		{0x18, 0x3c, 0x7e, 0xdb, 0xff, 0x24, 0x5a, 0xa5},
		{0x18, 0x3c, 0x7e, 0xdb, 0xff, 0x5a, 0x81, 0x42},
	},
	{
		{0x04, 0x01, 0x88, 0x00, 0xfc, 0x01, 0x76, 0x03, 0xff, 0x07, 0xfd, 0x05, 0x05, 0x05, 0xd8, 0x00},
		{0x04, 0x01, 0x88, 0x00, 0xfd, 0x05, 0x75, 0x05, 0xff, 0x07, 0xfc, 0x01, 0x04, 0x01, 0x02, 0x02},
	},
	{
		{0xf0, 0x00, 0xfe, 0x07, 0xff, 0x0f, 0x67, 0x0e, 0xff, 0x0f, 0x9c, 0x03, 0x06, 0x06, 0x0c, 0x03},
		{0xf0, 0x00, 0xfe, 0x07, 0xff, 0x0f, 0x67, 0x0e, 0xff, 0x0f, 0x9c, 0x03, 0x62, 0x04, 0x01, 0x08},
	},
}

var tankGfx = []byte{
	0x40, 0x00, 0xe0, 0x00, 0xe0, 0x00, 0xfe, 0x0f, 0xff, 0x1f, 0xff, 0x1f, 0xff, 0x1f, 0xff, 0x1f,
}

var missileGfx = []byte{0x01, 0x01, 0x01, 0x01}

var bombGfx = []byte{0x01, 0x02, 0x01, 0x02}

var baseGfx = []byte{
	0xf8, 0x1f, 0xfe, 0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x1f, 0xf8, 0x07, 0xe0, 0x07, 0xe0,
}

// 13x8, also cut into narrow fragments for the tank and mothership
var explosionGfx = []byte{
	0x10, 0x01, 0xa2, 0x08, 0x04, 0x04, 0x08, 0x02, 0x03, 0x18, 0x08, 0x02, 0xa4, 0x04, 0x12, 0x09,
}

// Formation march, one note per step
var marchNotes = [4]uint32{160, 100, 80, 62}

// Reward jingle for a new high score: Hz and milliseconds
var (
	rewardNotes     = [9]uint32{260, 200, 180, 220, 200, 0, 260, 0, 260}
	rewardDurations = [9]uint32{400, 200, 200, 400, 300, 500, 300, 100, 300}
)
