package buffer

// Observer implementations can register themselves with an Editable so
// they are notified of every mutation made to it. Observers must be
// comparable; pointer receivers are the usual choice.
type Observer interface {
	// TextChanged informs the implementer that the text is now text.
	// The edit replaced before runes at start with after runes.
	TextChanged(text []rune, start, before, after int)
}
