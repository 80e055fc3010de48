// Package vim provides the lexical vocabulary of the modal engine.
//
// The vocabulary is a set of small value types mapping single keys to
// semantic identifiers:
//   - Operators: commands like d, c, y that consume a motion or text object
//   - Motions: cursor movements like w, e, b, j, k
//   - Text objects: structural selections like iw (inner word), a" (around quotes)
//   - Registers: named storage slots like "a, "0, "+
//
// Classification predicates (linewise, inclusive, read-only, ...) are pure
// functions of the value and never stored per instance.
//
// # Vim Grammar
//
// The grammar for normal mode commands is:
//
//	[count]["register][operator][count][motion|text-object]
//	[count]["register][operator][operator]  (line-wise: dd, yy, cc)
//	[count][motion]
//
// Examples:
//   - "5j": count=5, motion=j (move down 5 lines)
//   - "3d2w": count=3, operator=d, count=2, motion=w (delete 6 words)
//   - "diw": operator=d, text-object=iw (delete inner word)
//   - `"ayw`: register=a, operator=y, motion=w (yank word to register a)
//
// The package also holds the RegisterStore, which keeps yanked and deleted
// text with its linewise/blockwise shape.
package vim
