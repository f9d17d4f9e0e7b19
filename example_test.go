package libpolicy_test

import (
	"fmt"

	"github.com/grahms/libpolicy"
)

func Example() {
	p, _ := libpolicy.Resolve("UseOnly", []string{"def", "abc", "def"})
	fmt.Println(p)

	_, err := libpolicy.Resolve("useall", nil)
	fmt.Println(err)
	// Output:
	// UseOnly[abc, def]
	// Invalid library policy name: 'useall', the available options are: [UseAll, IgnoreAll, UseOnly]
}
