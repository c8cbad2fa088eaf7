package quotemark

import "github.com/go-text/typesetting/language"

// builtinMarks is the built-in language to quotation-mark table. Keys are
// canonical lowercase tags. Entries follow the dominant print convention of
// each language; regional variants get their own entry only where the
// convention actually differs from the base language.
//
// The table is never mutated: NewTable copies it before applying overrides.
var builtinMarks = map[language.Language]GlyphSet{
	// Germanic
	"en":    {"“", "”", "‘", "’"}, // “ ” ‘ ’
	"en-gb": {"‘", "’", "“", "”"}, // British print quotes single-first
	"de":    {"„", "“", "‚", "‘"}, // „ “ ‚ ‘
	"de-ch": {"«", "»", "‹", "›"}, // Swiss guillemets
	"nl":    {"“", "”", "‘", "’"},
	"af":    {"“", "”", "‘", "’"},
	"is":    {"„", "“", "‚", "‘"},
	"da":    {"»", "«", "›", "‹"}, // inward-pointing guillemets
	"sv":    {"”", "”", "’", "’"}, // right-hand marks on both sides
	"no":    {"«", "»", "‘", "’"},
	"nn":    {"«", "»", "‘", "’"},

	// Romance
	"fr":    {"«", "»", "‹", "›"}, // « » ‹ ›
	"it":    {"«", "»", "“", "”"},
	"it-ch": {"«", "»", "‹", "›"},
	"es":    {"«", "»", "“", "”"},
	"ca":    {"«", "»", "“", "”"},
	"gl":    {"«", "»", "“", "”"},
	"pt":    {"«", "»", "“", "”"},
	"pt-br": {"“", "”", "‘", "’"},
	"ro":    {"„", "”", "«", "»"},
	"ia":    {"“", "”", "‘", "’"},

	// Slavic
	"ru": {"«", "»", "„", "“"},
	"uk": {"«", "»", "„", "“"},
	"be": {"«", "»", "„", "“"},
	"bg": {"„", "“", "‚", "‘"},
	"cs": {"„", "“", "‚", "‘"},
	"sk": {"„", "“", "‚", "‘"},
	"sl": {"„", "“", "‚", "‘"},
	"pl": {"„", "”", "«", "»"},
	"hr": {"„", "”", "‘", "’"},
	"sr": {"„", "”", "‚", "‘"},
	"mk": {"„", "“", "’", "‘"},

	// Baltic, Uralic
	"lt": {"„", "“", "‚", "‘"},
	"lv": {"„", "“", "‚", "‘"},
	"et": {"„", "“", "‚", "‘"},
	"fi": {"”", "”", "’", "’"},
	"hu": {"„", "”", "»", "«"},

	// Celtic
	"cy": {"‘", "’", "“", "”"},
	"ga": {"“", "”", "‘", "’"},
	"gd": {"‘", "’", "“", "”"},

	// Greek, Caucasus, Central Asia
	"el": {"«", "»", "“", "”"},
	"hy": {"«", "»", "“", "”"},
	"ka": {"„", "“", "‚", "‘"},
	"kk": {"«", "»", "“", "”"},
	"az": {"«", "»", "‹", "›"},
	"mn": {"«", "»", "“", "”"},
	"tr": {"“", "”", "‘", "’"},

	// Middle East, South Asia
	"ar": {"«", "»", "‹", "›"},
	"fa": {"«", "»", "‹", "›"},
	"ps": {"«", "»", "‹", "›"},
	"he": {"“", "”", "‘", "’"},
	"hi": {"“", "”", "‘", "’"},
	"ur": {"“", "”", "‘", "’"},

	// East and Southeast Asia
	"zh":    {"“", "”", "‘", "’"},
	"zh-tw": {"「", "」", "『", "』"}, // 「 」 『 』
	"ja":    {"「", "」", "『", "』"},
	"ko":    {"“", "”", "‘", "’"},
	"vi":    {"“", "”", "‘", "’"},
	"th":    {"“", "”", "‘", "’"},
	"id":    {"“", "”", "‘", "’"},
	"km":    {"«", "»", "‹", "›"},

	// Other
	"sq":  {"«", "»", "‹", "›"},
	"mt":  {"“", "”", "‘", "’"},
	"eo":  {"“", "”", "‘", "’"},
	"eu":  {"«", "»", "“", "”"},
	"jbo": {"lu", "li'u", "lo'u", "le'u"}, // Lojban quotes with words
}
