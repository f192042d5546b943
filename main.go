// Command rast-html turns a spreadsheet sheet into a hierarchical HTML report.
//
// Rows are sorted, grouped level by level into nested headings and rendered
// as tables, with consecutive rows sharing a description merged under one
// description block.
//
// Usage:
//
//	rast-html build -c reports.yaml
//	rast-html build --input table.xlsx --levels B --levels E,F --sort B,A --columns K,L -o result.html
//	rast-html sample -o table.xlsx
package main

func main() {
	Execute()
}
