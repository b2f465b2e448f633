// Command ggchart renders line and donut charts from CSV, JSON and XLSX
// data into PNG files.
package main

import "github.com/gogpu/ggchart/cmd/ggchart/commands"

func main() {
	commands.Execute()
}
