package ai

// Script is the writing system a text was routed by.
type Script string

const (
	ScriptLatin Script = "latin"
	ScriptThai  Script = "thai"
)

const (
	thaiBlockStart = '\u0E00'
	thaiBlockEnd   = '\u0E7F'
)

// IsThai reports whether any rune of text lies in the Thai Unicode block.
// Mixed-script text counts as Thai.
func IsThai(text string) bool {
	for _, r := range text {
		if r >= thaiBlockStart && r <= thaiBlockEnd {
			return true
		}
	}
	return false
}

// DetectScript is IsThai expressed as a Script value.
func DetectScript(text string) Script {
	if IsThai(text) {
		return ScriptThai
	}
	return ScriptLatin
}
