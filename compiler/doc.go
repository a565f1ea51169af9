/*

Process of compilation

Source Files ->
	split into lines (source) ->
Lines ->
	parse, line by line (asm) ->
Statements ->
	optimize (opt) ->
Statements ->
	format ->
Canonical LC1 Assembly Text

*/
package compiler
