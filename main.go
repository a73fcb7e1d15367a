// Command dabo-sched computes construction schedules with the critical
// path method.
package main

import "github.com/Haston00/DABO/cmd"

func main() {
	cmd.Execute()
}
