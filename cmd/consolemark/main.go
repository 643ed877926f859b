/*
Command consolemark renders inline HTML markup into a styled console call.

	consolemark '<strong>Hello, <em>Chris</em></strong>'
	consolemark --output raw --method warn '<a href="https://google.com">Google</a>'
	consolemark --file page.html --stylesheet extra.css
	echo '<mark>new</mark>' | consolemark -

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
