// Package inspect turns Baton packets and messages into operator-facing text
// and resolves operator input back into wire values.
//
// It never changes codec semantics: Describe reports every field of a
// packet, including unassigned codes, while wire.Decode still rejects them.
package inspect
