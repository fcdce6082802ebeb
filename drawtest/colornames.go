package drawtest

import (
	"fmt"

	"github.com/polydome/fixedsizeedittext/draw"
)

// NiceColourName returns a readable name for num. Some of the draw
// constants alias each other (Nofill and Notacolor for example) so the
// table is built by assignment and the later name wins.
func NiceColourName(num draw.Color) string {
	lookuptable := make(map[draw.Color]string)

	lookuptable[draw.Black] = "Black"
	lookuptable[draw.Darkyellow] = "Darkyellow"
	lookuptable[draw.Medblue] = "Medblue"
	lookuptable[draw.Nofill] = "Nofill"
	lookuptable[draw.Notacolor] = "Notacolor"
	lookuptable[draw.Palebluegreen] = "Palebluegreen"
	lookuptable[draw.Palegreygreen] = "Palegreygreen"
	lookuptable[draw.Paleyellow] = "Paleyellow"
	lookuptable[draw.Purpleblue] = "Purpleblue"
	lookuptable[draw.Transparent] = "Transparent"
	lookuptable[draw.White] = "White"
	lookuptable[draw.Yellowgreen] = "Yellowgreen"

	if s, ok := lookuptable[num]; ok {
		return s
	}
	return fmt.Sprintf("color(%x)", uint32(num))
}
