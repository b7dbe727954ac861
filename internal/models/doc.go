// Package models defines the persisted records that surround a tax
// calculation.
//
// The calculation itself lives in the calculator package and has no identity
// or lifecycle. The records here are what collaborators keep:
//   - User: a registered account that owns history
//   - HistoryRecord: one saved calculation, its inputs and a summary
//   - ChatMessage: one turn of an assistant conversation
//
// Relationships use ID strings rather than pointers.
package models
