package morastr

//go:generate go run ./gen/gentable -in gen/gentable/kana_table.yaml -out kana_table_gen.go

// Column values for the gojūon vowel groupings, plus the moraic nasal. Zero
// means "no column" (punctuation, the chōonpu, reserved code points).
const (
	columnNone byte = 0
	columnA    byte = 1
	columnI    byte = 2
	columnU    byte = 3
	columnE    byte = 4
	columnO    byte = 5
	columnN    byte = 8
)

// Notable single code points referenced by name elsewhere in the package.
const (
	kanaChoon  rune = 0x30FC // ー, the prolonged-sound mark
	kanaN      rune = 0x30F3 // ン
	kanaA      rune = 0x30A2
	kanaI      rune = 0x30A4
	kanaU      rune = 0x30A6
	kanaE      rune = 0x30A8
	kanaO      rune = 0x30AA
	kanaSmallA rune = 0x30A1
	kanaSmallI rune = 0x30A3
	kanaSmallU rune = 0x30A5
	kanaSmallE rune = 0x30A7
	kanaSmallO rune = 0x30A9
)

// kanaTableBase is the 96-entry classification window, index = c - 0x30A0.
// Each entry packs the column in the low 5 bits and the small-kana rime
// vowel (0 when the character is not small) in the high 3 bits. The literal
// is hand-written; the named slots listed in gen/gentable/kana_table.yaml
// are overwritten at init from the generated kana_table_gen.go.
var kanaTableBase = [96]byte{
	0,
	33, 1, 66, 2, 99, 3, 132, 4, 165, 5, // 30A1-30AA: small/large A I U E O
	1, 1, 2, 2, 3, 3, 4, 4, 5, 5, // 30AB-30B4: カガキギクグケゲコゴ
	1, 1, 2, 2, 3, 3, 4, 4, 5, 5, // 30B5-30BE: サザシジスズセゼソゾ
	1, 1, 2, 2, 0, 3, 3, 4, 4, 5, 5, // 30BF-30C9: タダチヂッツヅテデトド
	1, 2, 3, 4, 5, // 30CA-30CE: ナニヌネノ
	1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 5, 5, 5, // 30CF-30DD: ハ行(清濁半濁)
	1, 2, 3, 4, 5, // 30DE-30E2: マミムメモ
	65, 1, 67, 3, 69, 5, // 30E3-30E8: ャヤュユョヨ (small rime = I)
	1, 2, 3, 4, 5, // 30E9-30ED: ラリルレロ
	97, 1, 2, 4, 5, 8, 3, // 30EE-30F4: ヮワヰヱヲンヴ (ヮ rime = U)
	1, 4, 1, 2, 4, 5, // 30F5-30FA: ヵヶヷヸヹヺ
	0, 0, 0, 0, 0, // 30FB-30FF: ・ー ヽヾヿ
}

// init applies generatedOverrides on top of the plain gojūon grid baked
// into kanaTableBase above, so kana_table_gen.go's named entries (the small
// kana, the sokuon, the moraic nasal, the chōonpu) are the single source of
// truth for those slots rather than a disconnected cross-check.
func init() {
	for code, packed := range generatedOverrides {
		kanaTableBase[code-0x30A0] = packed
	}
}

func kanaEntry(c rune) byte {
	if c < 0x30A0 || c > 0x30FF {
		return 0
	}
	return kanaTableBase[c-0x30A0]
}

// column returns the base gojūon column of c, or columnNone if c carries no
// column (punctuation, chōonpu, reserved slots, or characters outside the
// 96-entry window).
func column(c rune) byte {
	return kanaEntry(c) & 0x1F
}

// smallVowel returns the rime vowel of c if c is a small kana bound by the
// yōon adjacency rule, or 0 if c is not small (this includes ッ, the
// sokuon, which the glossary defines as having no rime vowel).
func smallVowel(c rune) byte {
	return kanaEntry(c) >> 5
}

// IsFullwidthKatakana reports whether c is in the valid MoraStr alphabet,
// U+30A1..U+30FE.
func IsFullwidthKatakana(c rune) bool {
	return c >= 0x30A1 && c <= 0x30FE
}

// isHiraganaConvertible reports whether c is a hiragana code point that the
// normaliser folds into katakana by adding 0x60.
func isHiraganaConvertible(c rune) bool {
	return (c >= 0x3041 && c <= 0x3096) || (c == 0x309D || c == 0x309E)
}

// IsHiragana reports whether c lies in the hiragana block consulted by the
// normaliser (U+3041..U+3096, U+309D..U+309E).
func IsHiragana(c rune) bool {
	return isHiraganaConvertible(c)
}

// kanaID maps a code point to its index in the 96-entry bitmask tables used
// by the Bitap and Two-Way search algorithms, or -1 if c falls outside the
// window (which cannot happen for validated MoraStr contents, but search
// inputs are defended against it anyway).
func kanaID(c rune) int {
	if c < 0x30A0 || c > 0x30FF {
		return -1
	}
	return int(c - 0x30A0)
}
