// Package config loads report definitions from YAML files.
//
// A file lists one or more reports. Each report names the input workbook and
// sheet, the grouping levels, the sort columns, the table columns and the
// output file:
//
//	reports:
//	  - name: politicians
//	    input: data/world-politician-all.xlsx
//	    sheet: All
//	    levels: ["B", "C", "D", "E,F", "G,H", "I,J"]
//	    sort: ["B", "A"]
//	    columns: ["K", "L", "N", "O"]
//	    output: output.html
//
// Relative paths are resolved against the directory of the config file.
package config
