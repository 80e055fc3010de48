// Package key provides the raw key vocabulary fed into the modal engine.
//
// The engine consumes one key at a time: a single byte plus a modifier set.
// This package defines:
//
//   - Event: one key press (byte + modifiers)
//   - Modifier: modifier keys (Shift, Ctrl, Alt, Super)
//   - Notation: parsing and formatting of Vim-style key strings such as
//     "3d2w", "<Esc>", "<C-r>" and "<lt>"
//   - FromTcell: conversion of terminal events delivered by tcell
//
// # Key Specifications
//
// A key sequence is written as plain characters interleaved with
// bracketed specials:
//
//	"ihello<Esc>"   insert "hello" then leave insert mode
//	"\"ayy"         yank the current line into register a
//	"<C-r>"         redo
//	"<lt>"          a literal '<'
package key
