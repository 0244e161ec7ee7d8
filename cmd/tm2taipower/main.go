/* TWD67 TM2 to Taipower grid code conversion */
package main

import (
	taipower "github.com/doismellburning/taipower/src"
)

func main() {
	taipower.TM2TaipowerMain()
}
