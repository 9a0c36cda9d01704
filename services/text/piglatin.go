// Package text holds the string transformations behind pig_latin and
// string_reverse.
package text

// isVowel recognises ASCII lowercase vowels only. Capitals and non-ASCII
// runes count as consonants.
func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// PigLatin transforms a single token:
//   - a token starting with a vowel gets "-hay" appended ("apple" -> "apple-hay");
//   - otherwise the part from the first vowel on is moved to the front and the
//     first rune plus "ay" is appended ("first" -> "irst-fay").
//
// Empty tokens and tokens without any vowel yield "".
func PigLatin(token string) string {
	runes := []rune(token)
	if len(runes) == 0 {
		return ""
	}
	if isVowel(runes[0]) {
		return token + "-hay"
	}
	for k := 1; k < len(runes); k++ {
		if isVowel(runes[k]) {
			return string(runes[k:]) + "-" + string(runes[0]) + "ay"
		}
	}
	return ""
}
