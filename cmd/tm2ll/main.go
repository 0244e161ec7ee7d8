/* TWD67 TM2 to Latitude / Longitude conversion */
package main

import (
	taipower "github.com/doismellburning/taipower/src"
)

func main() {
	taipower.TM2LLMain()
}
