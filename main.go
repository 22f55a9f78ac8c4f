// Command flik lays out book text as fixed-capacity reading pages.
package main

import "github.com/1Seob/Flik-v2-sub000/cmd"

func main() {
	cmd.Execute()
}
