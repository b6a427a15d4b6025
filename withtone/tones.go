package withtone

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// toneless maps tone-marked vowels (and the rare marked nasals) to the letter
// typed for them on a keyboard. ü is typed as v.
var toneless = map[rune]rune{
	'ā': 'a', 'á': 'a', 'ǎ': 'a', 'à': 'a',
	'ō': 'o', 'ó': 'o', 'ǒ': 'o', 'ò': 'o',
	'ē': 'e', 'é': 'e', 'ě': 'e', 'è': 'e',
	'ī': 'i', 'í': 'i', 'ǐ': 'i', 'ì': 'i',
	'ū': 'u', 'ú': 'u', 'ǔ': 'u', 'ù': 'u',
	'ü': 'v', 'ǖ': 'v', 'ǘ': 'v', 'ǚ': 'v', 'ǜ': 'v',
	'ń': 'n', 'ň': 'n', 'ǹ': 'n',
	'ḿ': 'm',
}

var stripper = runes.Map(func(r rune) rune {
	if base, ok := toneless[r]; ok {
		return base
	}
	return r
})

// StripTones removes tone marks from pinyin, e.g.
//
//	"xiǎo míng tóng xué" => "xiao ming tong xue"
//	"lǜ"                 => "lv"
//
// Runes not in the tone table are left alone.
func StripTones(pinyin string) string {
	s, _, err := transform.String(stripper, pinyin)
	if err != nil {
		tracer().Errorf("cannot strip tones from %q: %v", pinyin, err)
		return pinyin
	}
	return s
}
