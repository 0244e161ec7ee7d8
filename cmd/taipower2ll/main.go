/* Taipower grid to TWD67 Latitude / Longitude conversion */
package main

import (
	taipower "github.com/doismellburning/taipower/src"
)

func main() {
	taipower.Taipower2LLMain()
}
