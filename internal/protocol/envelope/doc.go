// Package envelope builds and opens the three-layer containers that
// hide who sent a message, who it is for, and when it was sent.
//
// The layers, inside out: a rumor (an unsigned, deniable event), a seal
// (kind 13, signed by the real sender, no tags, content encrypted to
// the recipient), and a gift wrap (kind 1059, signed by a single-use
// random key, carrying only a "p" tag naming the recipient). Relays
// only ever observe the gift wrap.
//
// Seal and gift wrap each draw an independent timestamp from the two
// days before the true send time. Envelope timestamps are noise and
// must not be used for ordering.
package envelope
