package schirmwerk

// namedColors is the fixed lookup table for color names accepted by
// ParseColor. It covers the 16 ANSI colors plus the common extended web
// color names used by the default stylesheets. The table is immutable
// static data; themes add further names through stylesheet variables.
var namedColors = map[string]Color{
	// ANSI palette
	"black":   {R: 0x00, G: 0x00, B: 0x00, A: 1},
	"maroon":  {R: 0x80, G: 0x00, B: 0x00, A: 1},
	"green":   {R: 0x00, G: 0x80, B: 0x00, A: 1},
	"olive":   {R: 0x80, G: 0x80, B: 0x00, A: 1},
	"navy":    {R: 0x00, G: 0x00, B: 0x80, A: 1},
	"purple":  {R: 0x80, G: 0x00, B: 0x80, A: 1},
	"teal":    {R: 0x00, G: 0x80, B: 0x80, A: 1},
	"silver":  {R: 0xc0, G: 0xc0, B: 0xc0, A: 1},
	"gray":    {R: 0x80, G: 0x80, B: 0x80, A: 1},
	"grey":    {R: 0x80, G: 0x80, B: 0x80, A: 1},
	"red":     {R: 0xff, G: 0x00, B: 0x00, A: 1},
	"lime":    {R: 0x00, G: 0xff, B: 0x00, A: 1},
	"yellow":  {R: 0xff, G: 0xff, B: 0x00, A: 1},
	"blue":    {R: 0x00, G: 0x00, B: 0xff, A: 1},
	"fuchsia": {R: 0xff, G: 0x00, B: 0xff, A: 1},
	"magenta": {R: 0xff, G: 0x00, B: 0xff, A: 1},
	"aqua":    {R: 0x00, G: 0xff, B: 0xff, A: 1},
	"cyan":    {R: 0x00, G: 0xff, B: 0xff, A: 1},
	"white":   {R: 0xff, G: 0xff, B: 0xff, A: 1},

	// Extended names used by the built-in stylesheets
	"orange":         {R: 0xff, G: 0xa5, B: 0x00, A: 1},
	"gold":           {R: 0xff, G: 0xd7, B: 0x00, A: 1},
	"coral":          {R: 0xff, G: 0x7f, B: 0x50, A: 1},
	"tomato":         {R: 0xff, G: 0x63, B: 0x47, A: 1},
	"crimson":        {R: 0xdc, G: 0x14, B: 0x3c, A: 1},
	"salmon":         {R: 0xfa, G: 0x80, B: 0x72, A: 1},
	"pink":           {R: 0xff, G: 0xc0, B: 0xcb, A: 1},
	"hotpink":        {R: 0xff, G: 0x69, B: 0xb4, A: 1},
	"orchid":         {R: 0xda, G: 0x70, B: 0xd6, A: 1},
	"violet":         {R: 0xee, G: 0x82, B: 0xee, A: 1},
	"indigo":         {R: 0x4b, G: 0x00, B: 0x82, A: 1},
	"slateblue":      {R: 0x6a, G: 0x5a, B: 0xcd, A: 1},
	"royalblue":      {R: 0x41, G: 0x69, B: 0xe1, A: 1},
	"dodgerblue":     {R: 0x1e, G: 0x90, B: 0xff, A: 1},
	"deepskyblue":    {R: 0x00, G: 0xbf, B: 0xff, A: 1},
	"skyblue":        {R: 0x87, G: 0xce, B: 0xeb, A: 1},
	"steelblue":      {R: 0x46, G: 0x82, B: 0xb4, A: 1},
	"cornflowerblue": {R: 0x64, G: 0x95, B: 0xed, A: 1},
	"turquoise":      {R: 0x40, G: 0xe0, B: 0xd0, A: 1},
	"seagreen":       {R: 0x2e, G: 0x8b, B: 0x57, A: 1},
	"forestgreen":    {R: 0x22, G: 0x8b, B: 0x22, A: 1},
	"springgreen":    {R: 0x00, G: 0xff, B: 0x7f, A: 1},
	"greenyellow":    {R: 0xad, G: 0xff, B: 0x2f, A: 1},
	"khaki":          {R: 0xf0, G: 0xe6, B: 0x8c, A: 1},
	"tan":            {R: 0xd2, G: 0xb4, B: 0x8c, A: 1},
	"chocolate":      {R: 0xd2, G: 0x69, B: 0x1e, A: 1},
	"sienna":         {R: 0xa0, G: 0x52, B: 0x2d, A: 1},
	"brown":          {R: 0xa5, G: 0x2a, B: 0x2a, A: 1},
	"slategray":      {R: 0x70, G: 0x80, B: 0x90, A: 1},
	"slategrey":      {R: 0x70, G: 0x80, B: 0x90, A: 1},
	"lightgray":      {R: 0xd3, G: 0xd3, B: 0xd3, A: 1},
	"lightgrey":      {R: 0xd3, G: 0xd3, B: 0xd3, A: 1},
	"darkgray":       {R: 0xa9, G: 0xa9, B: 0xa9, A: 1},
	"darkgrey":       {R: 0xa9, G: 0xa9, B: 0xa9, A: 1},
	"dimgray":        {R: 0x69, G: 0x69, B: 0x69, A: 1},
	"dimgrey":        {R: 0x69, G: 0x69, B: 0x69, A: 1},
	"gainsboro":      {R: 0xdc, G: 0xdc, B: 0xdc, A: 1},
	"whitesmoke":     {R: 0xf5, G: 0xf5, B: 0xf5, A: 1},
	"ivory":          {R: 0xff, G: 0xff, B: 0xf0, A: 1},
	"beige":          {R: 0xf5, G: 0xf5, B: 0xdc, A: 1},
	"lavender":       {R: 0xe6, G: 0xe6, B: 0xfa, A: 1},
	"midnightblue":   {R: 0x19, G: 0x19, B: 0x70, A: 1},
	"darkslategray":  {R: 0x2f, G: 0x4f, B: 0x4f, A: 1},
	"darkslategrey":  {R: 0x2f, G: 0x4f, B: 0x4f, A: 1},
}
