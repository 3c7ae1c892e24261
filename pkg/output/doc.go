// Package output renders edit results for the terminal or for machines.
//
// Three formats are supported:
//
//	text  styled, human readable lines built with lipgloss
//	json  one indented JSON document per call
//	yaml  one YAML document per call
//
// Text styles use semantic names (Changed, Ok, Error, Path, Muted, DiffAdd,
// DiffDel, DiffSkip) defined in the embedded styles.yaml. Colors are
// adaptive so the same definition works on light and dark terminals.
package output
