package audio

import (
	"fmt"
	"regexp"

	"github.com/btheadset/btheadset/pkg/protocol"
)

/*
FindIndex extracts the index of the entity called name from a pacmd listing. The listing is
expected to contain, per entity, an index line followed by its name line:

	    index: 1
	    name: <bluez_card.11_22_33_44_55_66>

Only whitespace may separate the two lines.
*/
func FindIndex(dump string, name string) (string, error) {
	re, err := regexp.Compile(`(?m)index: (\d+)\s*name: <` + regexp.QuoteMeta(name) + `>`)
	if err != nil {
		return "", err
	}
	m := re.FindStringSubmatch(dump)
	if m == nil {
		return "", fmt.Errorf("%w: '%s'", protocol.ErrEntityNotFound, name)
	}
	return m[1], nil
}
